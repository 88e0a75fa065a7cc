// Package errkind defines the closed set of common failure kinds: network,
// HTTP status, validation, not found, parse and timeout.
//
// Every kind implements CommonError, which cannot be implemented outside this
// package. Match dispatches a CommonError to exactly one of the handlers built
// by On; On takes every handler positionally, so adding a kind changes its
// signature and breaks every dispatcher at compile time.
//
//	msg := errkind.Match(err, errkind.On(
//	    func(e *errkind.NetworkError) string { return "offline" },
//	    func(e *errkind.HTTPError) string { return e.StatusText },
//	    func(e *errkind.ValidationError) string { return strings.Join(e.Messages, "; ") },
//	    func(e *errkind.NotFoundError) string { return e.Resource + " missing" },
//	    func(e *errkind.ParseError) string { return "bad input" },
//	    func(e *errkind.TimeoutError) string { return "slow " + e.Operation },
//	))
//
// Classify turns plain Go errors into kinds, and GRPCCode, Status and
// HTTPStatus map kinds onto transport status codes.
package errkind
