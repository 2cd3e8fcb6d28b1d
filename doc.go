// Package randcore provides a family of interchangeable pseudo-random
// number engines behind one interface, with a shared bias-free sampling
// layer and exact-bit floating-point construction.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	randcore/            Root package with the construction facade
//	├── engine/          The 21 engine variants, seeding and jump-ahead
//	├── sample/          Numeric extraction, banking, ranged and float draws
//	├── errors/          Structured error types for seed/jump/range failures
//	└── cmd/dump/        CLI for streaming raw draws to a file
//
// # Quick Start
//
// Construct a deterministic source and draw from it:
//
//	src, err := randcore.NewSeeded("xoshiro256**", 1, 2, 3, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	word := src.Uint64()
//	roll, _ := src.Int32Range(1, 6)
//	f := src.Float64()
//
// Every engine produces a bit-exact reference sequence for a fixed seed,
// across platforms. The engine variants, their state widths and their
// jump support are listed by randcore.Engines and documented in package
// engine.
//
// # Determinism
//
// Seeding is the contract: a Source seeded with explicit words replays
// the identical stream on every platform, including narrower-than-word
// draws, which are carved from raw words through per-width banks. Clones
// copy both the engine state and the banks, so a clone and its original
// stay in lockstep under identical call sequences.
//
// # Thread Safety
//
// A Source serializes all operations on one per-instance lock and is safe
// for concurrent use. Engines used directly (package engine) are not
// synchronized. Distinct instances never share state.
//
// None of the engines are cryptographically secure. Reseeding pulls from
// crypto/rand, but the output streams are fully predictable from the
// state and must not be used for secrets.
package randcore
