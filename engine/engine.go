package engine

// Engine is one stateful pseudo-random generator implementing one algorithm
// family. Implementations own a fixed-size internal state; a successfully
// seeded Engine always has a well-defined state before any output is
// produced.
type Engine interface {
	// Name returns the canonical family/variant name, e.g. "xoshiro256**".
	Name() string

	// Uint64 produces the next raw 64-bit word and advances the state.
	// It always succeeds.
	Uint64() uint64

	// Seed reinitializes the state from explicit words. All prior state is
	// discarded. All-zero seeds are rejected unless AllowZeroSeed is given;
	// a word count different from the family's native width is rejected
	// unless AllowSeedResize is given, in which case the input is truncated
	// or mix-expanded to the native width.
	Seed(words []uint64, opts ...Option) error

	// SeedBytes reinitializes the state from a byte slice sized exactly to
	// the family's native state width (little-endian words). The same
	// override options apply as for Seed.
	SeedBytes(b []byte, opts ...Option) error

	// Reseed reinitializes the state from the host's entropy source.
	Reseed() error

	// Clone returns an independent Engine whose future output is identical
	// to this one's.
	Clone() Engine

	// Jump advances the state by the family's defined large stride, or
	// fails with an unsupported-operation error.
	Jump() error

	// LongJump advances the state by the family's defined larger stride, or
	// fails with an unsupported-operation error.
	LongJump() error
}

// Options control seeding behavior.
type Options struct {
	AllowZero   bool
	AllowResize bool
}

// Option mutates seeding Options.
type Option func(*Options)

// AllowZeroSeed permits an all-zero seed. Families whose recurrence
// degenerates on a zero state still accept it under this flag; families
// with a canonical zero-seed state (the twisted-feedback registers)
// transition into that state instead.
func AllowZeroSeed() Option {
	return func(o *Options) { o.AllowZero = true }
}

// AllowSeedResize permits a seed whose length differs from the family's
// native width: oversized input is truncated, undersized input is expanded
// through the family's documented mixing expansion.
func AllowSeedResize() Option {
	return func(o *Options) { o.AllowResize = true }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
