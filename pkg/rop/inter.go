package rop

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for outer outcomes that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
}

// WithFailure is implemented by inner outcomes carrying a typed application failure
type WithFailure[T, E any] interface {
	// Get returns the value, the failure and whether the value is valid
	Get() (T, E, bool)
	// IsOk returns true if the outcome carries a value
	IsOk() bool
}

var (
	_ WithCancel[int]          = Result[int]{}
	_ WithFailure[int, string] = Outcome[int, string]{}
)
