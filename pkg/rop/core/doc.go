// Package core carries execution options through a context. Consumers such
// as collect read them with a default, so a context without options keeps
// the default behaviour.
package core
