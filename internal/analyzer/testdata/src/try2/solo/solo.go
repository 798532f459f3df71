// Package solo mirrors the propagation API for analyzer tests.
package solo

type Outcome[T, E any] struct {
	v  T
	f  E
	ok bool
}

type Nested[T, E any] struct {
	o   Outcome[T, E]
	err error
}

func Ok[T, E any](v T) Outcome[T, E] { return Outcome[T, E]{v: v, ok: true} }

func Lift[T, E any](v T) Nested[T, E] { return Nested[T, E]{o: Ok[T, E](v)} }

func Try2[U, T, E any](in Outcome[T, E]) (T, Nested[U, E], bool) {
	if in.ok {
		return in.v, Nested[U, E]{}, true
	}
	return in.v, Nested[U, E]{o: Outcome[U, E]{f: in.f}}, false
}

func Try2Err[U, T, E any](in Outcome[T, E]) (T, Outcome[U, E], bool) {
	if in.ok {
		return in.v, Outcome[U, E]{}, true
	}
	return in.v, Outcome[U, E]{f: in.f}, false
}

func Unwrap[U, T, E any](in Nested[T, E]) (Outcome[T, E], Nested[U, E], bool) {
	if in.err == nil {
		return in.o, Nested[U, E]{}, true
	}
	return Outcome[T, E]{}, Nested[U, E]{err: in.err}, false
}
