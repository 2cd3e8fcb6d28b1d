package engine

import (
	"sort"

	"github.com/wippyai/randcore/errors"
)

// Factory constructs a fresh entropy-seeded Engine.
type Factory func() (Engine, error)

var registry = map[string]Factory{
	"xoroshiro128+":  func() (Engine, error) { return NewXoroshiro128Plus() },
	"xoroshiro128++": func() (Engine, error) { return NewXoroshiro128PlusPlus() },
	"xoroshiro128**": func() (Engine, error) { return NewXoroshiro128StarStar() },
	"xoshiro256+":    func() (Engine, error) { return NewXoshiro256Plus() },
	"xoshiro256++":   func() (Engine, error) { return NewXoshiro256PlusPlus() },
	"xoshiro256**":   func() (Engine, error) { return NewXoshiro256StarStar() },
	"xoshiro512+":    func() (Engine, error) { return NewXoshiro512Plus() },
	"xoshiro512++":   func() (Engine, error) { return NewXoshiro512PlusPlus() },
	"xoshiro512**":   func() (Engine, error) { return NewXoshiro512StarStar() },
	"xorshift1024*":  func() (Engine, error) { return NewXorShift1024Star() },
	"mwc128":         func() (Engine, error) { return NewMWC128() },
	"mwc192":         func() (Engine, error) { return NewMWC192() },
	"mwc256":         func() (Engine, error) { return NewMWC256() },
	"gmwc128":        func() (Engine, error) { return NewGMWC128() },
	"pcg32":          func() (Engine, error) { return NewPCG32() },
	"pcg64":          func() (Engine, error) { return NewPCG64() },
	"mt19937":        func() (Engine, error) { return NewMT19937() },
	"mt19937-64":     func() (Engine, error) { return NewMT19937_64() },
	"isaac":          func() (Engine, error) { return NewISAAC() },
	"isaac64":        func() (Engine, error) { return NewISAAC64() },
	"splitmix64":     func() (Engine, error) { return NewSplitMix64() },
}

// New constructs an entropy-seeded Engine by variant name. Names lists
// the valid set.
func New(name string) (Engine, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, errors.InvalidArgument("unknown engine %q", name)
	}
	return factory()
}

// NewSeeded constructs an Engine by name and seeds it deterministically.
func NewSeeded(name string, words []uint64, opts ...Option) (Engine, error) {
	e, err := New(name)
	if err != nil {
		return nil, err
	}
	if err := e.Seed(words, opts...); err != nil {
		return nil, err
	}
	return e, nil
}

// Names returns every registered variant name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
