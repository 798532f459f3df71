// Package chain provides a fluent wrapper around rop.Nested[T, E]
// for building synchronous two-layer chains using solo primitives.
//
// Every step short-circuits on the first failure of either layer: an outer
// failure travels on with its identity, an inner failure travels on as the
// same payload.
//
// Key operations:
//   - Start/FromValue/FromTry: begin a chain from a Nested, a value or a (T, error)
//   - Then: move on via a function returning an inner Outcome
//   - ThenTry: move on via a function returning (Outcome, error)
//   - Map: transform the value (T -> U)
//   - Ensure: run side effects on success without changing the result
//   - Finally: collapse the chain into a final value via handlers
package chain
