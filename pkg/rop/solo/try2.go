package solo

import "github.com/ib-77/try2/pkg/rop"

// Try2 propagates an inner failure out of a function returning rop.Nested[U, E].
//
// On Ok it returns the value and ok == true. On Err it returns an outer success wrapping
// the same failure, ready to be returned as is:
//
//	func load() rop.Nested[Config, *AppError] {
//		n, early, ok := solo.Try2[Config](parseHeader())
//		if !ok {
//			return early
//		}
//		...
//	}
//
// The outer layer is never touched; apply Unwrap first when in is itself nested.
func Try2[U, T, E any](in rop.Outcome[T, E]) (T, rop.Nested[U, E], bool) {
	v, f, ok := in.Get()
	if ok {
		return v, rop.Nested[U, E]{}, true
	}
	return v, rop.Bare(rop.Err[U](f)), false
}

// Try2Err is Try2 for functions returning (rop.Outcome[U, E], error). The early-return
// value is the lifted inner failure and goes back with a nil error:
//
//	if !ok {
//		return early, nil
//	}
func Try2Err[U, T, E any](in rop.Outcome[T, E]) (T, rop.Outcome[U, E], bool) {
	v, f, ok := in.Get()
	if ok {
		return v, rop.Outcome[U, E]{}, true
	}
	return v, rop.Err[U](f), false
}

// Unwrap is the outer-layer step. On outer success it returns the inner outcome untouched.
// On outer failure or cancellation it returns the same failure, re-typed for the enclosing
// function's return, with ok == false.
func Unwrap[U, T, E any](in rop.Nested[T, E]) (rop.Outcome[T, E], rop.Nested[U, E], bool) {
	if in.IsSuccess() {
		return in.Result(), rop.Nested[U, E]{}, true
	}
	return rop.Outcome[T, E]{}, rop.FailFrom[rop.Outcome[T, E], rop.Outcome[U, E]](in), false
}

// Lift builds the normal exit of a function returning rop.Nested[T, E].
func Lift[T, E any](v T) rop.Nested[T, E] {
	return rop.Success(rop.Ok[T, E](v))
}

// LiftErr builds an inner failure exit of a function returning rop.Nested[T, E].
func LiftErr[T, E any](f E) rop.Nested[T, E] {
	return rop.Success(rop.Err[T](f))
}
