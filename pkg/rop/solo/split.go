package solo

import "github.com/ib-77/try2/pkg/rop"

// Split turns a plain (T, error) result into the two-layer tuple form.
//
// A nil error gives Ok(v). An error claimed by classify becomes an inner failure with the
// payload classify returns. Any other error is returned unchanged as the outer error.
// A nil classify leaves every error in the outer layer.
func Split[T, E any](v T, err error, classify func(err error) (E, bool)) (rop.Outcome[T, E], error) {
	if rop.IsNil(err) {
		return rop.Ok[T, E](v), nil
	}
	if classify != nil {
		if f, isInner := classify(err); isInner {
			return rop.Err[T](f), nil
		}
	}
	return rop.Outcome[T, E]{}, err
}

// SplitResult is Split in value form. Unclaimed cancellation errors become a cancelled
// outer result rather than a failure.
func SplitResult[T, E any](v T, err error, classify func(err error) (E, bool)) rop.Nested[T, E] {
	o, outer := Split(v, err, classify)
	return Nest(o, outer)
}

// Nest converts the tuple form to the value form. A nil err gives an outer success
// carrying o; a cancellation error gives a cancelled result; any other error a failure.
func Nest[T, E any](o rop.Outcome[T, E], err error) rop.Nested[T, E] {
	if rop.IsNil(err) {
		return rop.Success(o)
	}
	if rop.IsCancellationError(err) {
		return rop.Cancel[rop.Outcome[T, E]](err)
	}
	return rop.Fail[rop.Outcome[T, E]](err)
}

// SplitWith returns a Split bound to classify, for use as a ThenTry step.
func SplitWith[T, E any](classify func(err error) (E, bool)) func(v T, err error) (rop.Outcome[T, E], error) {
	return func(v T, err error) (rop.Outcome[T, E], error) {
		return Split(v, err, classify)
	}
}
