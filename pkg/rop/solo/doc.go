// Package solo contains the synchronous two-layer propagation primitives.
//
// Highlights:
//   - Try2/Try2Err: take the value out of an inner Outcome or hand back an early return
//     carrying the same inner failure
//   - Unwrap: the outer-layer step, composed before Try2 when the input is Nested
//   - Lift/LiftErr: build Nested values for a function's normal exits
//   - Split/SplitResult: sort a plain (T, error) into inner and outer failures
//   - Switch/Map/Try/Tee: short-circuiting steps over Nested values
//   - Finally: reduce to a concrete value via ok/inner/outer handlers
//
// Call sites always follow Try2 with an immediate return:
//
//	v, early, ok := solo.Try2[Out](in)
//	if !ok {
//		return early
//	}
//
// cmd/try2check reports call sites that do not.
package solo
