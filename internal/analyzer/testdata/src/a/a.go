package a

import "try2/solo"

func good(in solo.Outcome[int, string]) solo.Nested[int, string] {
	v, early, ok := solo.Try2[int](in)
	if !ok {
		return early
	}
	return solo.Lift[int, string](v + 1)
}

func goodTuple(in solo.Outcome[int, string]) (solo.Outcome[string, string], error) {
	_, early, ok := solo.Try2Err[string](in)
	if !ok {
		return early, nil
	}
	return solo.Ok[string, string]("x"), nil
}

func goodIfInit(in solo.Outcome[int, string]) solo.Nested[bool, string] {
	if _, early, ok := solo.Try2[bool](in); !ok {
		return early
	}
	return solo.Lift[bool, string](true)
}

func goodComposed(src solo.Nested[int, string]) solo.Nested[int, string] {
	inner, early, ok := solo.Unwrap[int](src)
	if !ok {
		return early
	}
	v, early, ok := solo.Try2[int](inner)
	if !ok {
		return early
	}
	return solo.Lift[int, string](v)
}

func goodInSwitch(in solo.Outcome[int, string], n int) solo.Nested[int, string] {
	switch n {
	case 1:
		v, early, ok := solo.Try2[int](in)
		if !ok {
			return early
		}
		return solo.Lift[int, string](v)
	}
	return solo.Lift[int, string](n)
}

func goodLabeled(in []solo.Outcome[int, string]) solo.Nested[int, string] {
	sum, i := 0, 0
next:
	v, early, ok := solo.Try2[int](in[i])
	if !ok {
		return early
	}
	sum += v
	if i++; i < len(in) {
		goto next
	}
	return solo.Lift[int, string](sum)
}

func goodNamedResult(in solo.Outcome[int, string]) (early solo.Nested[int, string]) {
	v, early, ok := solo.Try2[int](in)
	if !ok {
		return
	}
	return solo.Lift[int, string](v)
}

func goodNamedTuple(in solo.Outcome[int, string]) (early solo.Outcome[int, string], err error) {
	v, early, ok := solo.Try2Err[int](in)
	if !ok {
		return
	}
	return solo.Ok[int, string](v), nil
}

func discarded(in solo.Outcome[int, string]) solo.Nested[int, string] {
	v, _, _ := solo.Try2[int](in) // want `solo.Try2 early-return value and ok flag must be bound to variables`
	return solo.Lift[int, string](v)
}

func notFollowed(in solo.Outcome[int, string]) solo.Nested[int, string] {
	v, early, ok := solo.Try2[int](in) // want "solo.Try2 must be followed by"
	_, _ = early, ok
	return solo.Lift[int, string](v)
}

func wrongCondition(in solo.Outcome[int, string]) solo.Nested[int, string] {
	v, early, ok := solo.Try2[int](in) // want "solo.Try2 must be followed by"
	if ok {
		return early
	}
	return solo.Lift[int, string](v)
}

func noReturn(in solo.Outcome[int, string]) solo.Nested[int, string] {
	v, early, ok := solo.Try2[int](in) // want "solo.Try2 must be followed by"
	if !ok {
		panic(early)
	}
	return solo.Lift[int, string](v)
}

func otherReturn(in solo.Outcome[int, string]) solo.Nested[int, string] {
	v, early, ok := solo.Try2[int](in) // want "solo.Try2 must be followed by"
	if !ok {
		_ = early
		return solo.Lift[int, string](0)
	}
	return solo.Lift[int, string](v)
}

func freshValue(src solo.Nested[int, string]) solo.Nested[int, string] {
	inner, early, ok := solo.Unwrap[int](src) // want "solo.Unwrap must be followed by"
	if !ok {
		_ = early
		return solo.Lift[int, string](-1)
	}
	_ = inner
	return solo.Lift[int, string](0)
}

func statement(in solo.Outcome[int, string]) {
	solo.Try2[int](in) // want "solo.Try2 result must be assigned and checked with an early return"
}

func declared(in solo.Outcome[int, string]) solo.Nested[int, string] {
	var v, early, ok = solo.Try2[int](in) // want "solo.Try2 result must be assigned and checked with an early return"
	if !ok {
		return early
	}
	return solo.Lift[int, string](v)
}

func bareOtherResult(in solo.Outcome[int, string]) (out solo.Nested[int, string]) {
	v, early, ok := solo.Try2[int](in) // want "solo.Try2 must be followed by"
	if !ok {
		_ = early
		return
	}
	return solo.Lift[int, string](v)
}
