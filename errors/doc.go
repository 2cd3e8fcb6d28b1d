// Package errors provides structured error types for the randcore library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the engine name, the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseSeed, errors.KindInvalidSeed).
//		Engine("xoshiro256**").
//		Detail("seed words must not be all zero").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidSeed("mwc128", "zero seed")
//	err := errors.Unsupported("splitmix64", "jump")
//
// All errors implement the standard error interface and support errors.Is/As.
// Errors are always synchronous and local to the call that produced them; a
// failed operation never mutates the generator it was invoked on.
package errors
