// Package collect reduces a batch of Results into one Result holding every
// success value in input order, or the failure with the lowest index.
package collect
