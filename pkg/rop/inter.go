package rop

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFailure defines an interface for types that hold either a result or a
// failure value
type WithFailure[T, E any] interface {
	ResultProvider[T]
	// Err returns the failure value if the operation failed
	Err() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

var _ WithFailure[int, error] = Result[int, error]{}
