// Package engine implements the pseudo-random generator state machines.
//
// Every generator family implements the Engine interface: raw 64-bit word
// production, deterministic and entropy seeding, deep cloning, and (where
// the family defines one) large-stride jump-ahead. The recurrences and
// output scramblers reproduce the published reference implementations
// bit for bit; correctness is verified against literal reference sequences,
// not statistical approximation.
//
// Engines are not safe for concurrent use. The sample package wraps an
// Engine with a per-instance lock and the sub-word banking caches; most
// callers want that wrapper rather than a bare Engine.
//
// None of the generators here are cryptographically secure: seeds and
// internal state are recoverable from output for most families, and no
// operation is constant-time.
package engine
