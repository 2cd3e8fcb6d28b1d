package engine

import (
	"math/bits"

	"github.com/wippyai/randcore/engine/internal/wideint"
)

// Generalized multiply-with-carry constants. One step computes
// t = A1*x + c in 128 bits, then solves A0*x' = t (mod 2^64) and carries
// the rest. A0 is 2^64 - gmwcMinusA0 and gmwcA0Inv is its inverse mod 2^64.
const (
	gmwcMinusA0 = 0x7d084a4d80885f
	gmwcA0      = ^uint64(gmwcMinusA0) + 1
	gmwcA0Inv   = 0x9b1eea3792a42c61
	gmwcA1      = 0xff002aae7d81a646
)

// Modulus A1*2^64 + gmwcMinusA0 and the 2^-64-power jump residue, both as
// three limbs so packing has headroom before reduction. The long-jump
// residue for this family is not wired; LongJump reports unsupported.
var (
	gmwcM    = []uint64{gmwcMinusA0, gmwcA1, 0}
	gmwcJump = []uint64{0x1f03b9690dc51b2f, 0xeff1cf6268db2dd6, 0}
)

// GMWC128 is the generalized multiply-with-carry generator. Unlike plain
// MWC it emits the freshly computed word, already scrambled by the
// modular inversion in the step.
type GMWC128 struct {
	x uint64
	c uint64
}

// NewGMWC128 returns an entropy-seeded gmwc128.
func NewGMWC128() (*GMWC128, error) {
	e := &GMWC128{c: 1}
	if err := e.Reseed(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *GMWC128) Name() string { return "gmwc128" }

func (e *GMWC128) Uint64() uint64 {
	hi, lo := bits.Mul64(gmwcA1, e.x)
	lo, carry := bits.Add64(lo, e.c, 0)
	hi += carry
	e.x = gmwcA0Inv * lo
	h2, l2 := bits.Mul64(gmwcMinusA0, e.x)
	_, carry = bits.Add64(lo, l2, 0)
	e.c = hi + h2 + carry
	return e.x
}

func (e *GMWC128) Seed(words []uint64, opts ...Option) error {
	o := buildOptions(opts)
	seed, err := prepareSeed(e.Name(), words, 1, o)
	if err != nil {
		return err
	}
	e.x = seed[0]
	e.c = 1
	return nil
}

func (e *GMWC128) SeedBytes(b []byte, opts ...Option) error {
	o := buildOptions(opts)
	seed, err := prepareSeedBytes(e.Name(), b, 1, o)
	if err != nil {
		return err
	}
	e.x = seed[0]
	e.c = 1
	return nil
}

func (e *GMWC128) Reseed() error {
	return reseedEntropy(e, e.Name(), 1)
}

func (e *GMWC128) Clone() Engine {
	c := *e
	return &c
}

// pack folds (x, c) into the residue A0*x + 2^64*(c - x) mod M.
func (e *GMWC128) pack() []uint64 {
	hi, lo := bits.Mul64(gmwcA0, e.x)
	t := []uint64{lo, hi, 0}
	bc := []uint64{0, e.c, 0}
	wideint.Add(t, bc)
	wideint.Reduce(t, gmwcM)
	bx := []uint64{0, e.x, 0}
	wideint.Reduce(bx, gmwcM)
	wideint.SubMod(t, bx, gmwcM)
	return t
}

func (e *GMWC128) unpack(t []uint64) {
	x := gmwcA0Inv * t[0]
	hi, lo := bits.Mul64(gmwcA0, x)
	ax := []uint64{lo, hi, 0}
	// t - ax is an exact multiple of 2^64; limb 1 of the two's
	// complement difference is the quotient mod 2^64.
	wideint.Sub(t, ax)
	e.x = x
	e.c = x + t[1]
}

func (e *GMWC128) Jump() error {
	e.unpack(wideint.MulMod(e.pack(), gmwcJump, gmwcM))
	return nil
}

func (e *GMWC128) LongJump() error {
	return unsupported(e.Name(), "long-jump")
}
