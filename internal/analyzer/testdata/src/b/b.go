package b

import "try2/solo"

// Only Try2Err is configured for this package.

func untracked(in solo.Outcome[int, string]) int {
	v, _, _ := solo.Try2[int](in)
	return v
}

func tracked(in solo.Outcome[int, string]) int {
	v, _, _ := solo.Try2Err[int](in) // want "solo.Try2Err early-return value and ok flag must be bound to variables"
	return v
}
