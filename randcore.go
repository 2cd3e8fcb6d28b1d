package randcore

import (
	"github.com/wippyai/randcore/engine"
	"github.com/wippyai/randcore/sample"
)

// Seeding overrides, re-exported so callers of the facade do not need to
// import package engine.
var (
	AllowZeroSeed   = engine.AllowZeroSeed
	AllowSeedResize = engine.AllowSeedResize
)

// New returns an entropy-seeded sampling source backed by the named
// engine variant.
func New(name string) (*sample.Source, error) {
	return sample.NewNamed(name)
}

// NewSeeded returns a deterministically seeded sampling source backed by
// the named engine variant.
func NewSeeded(name string, seed ...uint64) (*sample.Source, error) {
	return sample.NewSeeded(name, seed)
}

// NewEngine returns an entropy-seeded bare engine for callers that want
// raw words without the sampling layer.
func NewEngine(name string) (engine.Engine, error) {
	return engine.New(name)
}

// Engines lists the registered engine variant names, sorted.
func Engines() []string {
	return engine.Names()
}
