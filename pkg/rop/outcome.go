package rop

// Outcome is the inner outcome: either Ok carrying a value of type T or Err carrying an
// application failure of type E. E is not required to implement error.
//
// The zero Outcome is an Err carrying the zero E.
type Outcome[T, E any] struct {
	value   T
	failure E
	ok      bool
}

// Nested is a two-layer outcome: an outer Result whose success carries an inner Outcome.
type Nested[T, E any] = Result[Outcome[T, E]]

func Ok[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{value: v, ok: true}
}

func Err[T, E any](f E) Outcome[T, E] {
	return Outcome[T, E]{failure: f}
}

// Get returns the value, the failure and whether the outcome is Ok.
// Only one of value and failure is meaningful.
func (o Outcome[T, E]) Get() (T, E, bool) {
	return o.value, o.failure, o.ok
}

func (o Outcome[T, E]) Value() T {
	return o.value
}

func (o Outcome[T, E]) Failure() E {
	return o.failure
}

func (o Outcome[T, E]) IsOk() bool {
	return o.ok
}

func (o Outcome[T, E]) IsErr() bool {
	return !o.ok
}
