// Package sample wraps an engine.Engine with the numeric extraction layer:
// sub-word draws with per-width banking, bias-free ranged sampling at every
// integer width, alphanumeric sampling, and the three floating-point
// construction policies.
//
// A Source owns its engine. All operations serialize on one per-instance
// lock, so a Source is safe for concurrent use; distinct Sources share
// nothing. The banked sub-word caches are part of the reproducible state:
// Clone copies them, reseeding and jumping discard them.
package sample
