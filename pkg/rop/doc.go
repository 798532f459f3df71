// Package rop defines the outcome types used by the try2 packages.
//
// Result[T] is the outer layer: an environment-level success or failure, typically the
// result of I/O. Outcome[T, E] is the inner layer: a domain-level value or application
// failure. Nested[T, E] stacks the two, and is what functions using solo.Try2 return.
//
// Functions that prefer the plain Go shape return (Outcome[T, E], error) instead, with the
// error playing the outer layer.
package rop
