package engine

import "math/bits"

// Scrambler selects the output transform applied by the shift-register
// families on top of the shared state advance. The three transforms trade
// statistical quality for speed:
//
//   - Plus: sum of two state words. Fastest; weak low bits.
//   - PlusPlus: sum, rotate, add. Strong and nearly as fast.
//   - StarStar: multiply, rotate, multiply. Strongest scrambling.
type Scrambler int

const (
	Plus Scrambler = iota
	PlusPlus
	StarStar
)

func (s Scrambler) suffix() string {
	switch s {
	case PlusPlus:
		return "++"
	case StarStar:
		return "**"
	default:
		return "+"
	}
}

// Xoroshiro128 is the 2-word shift-register generator. The ++ variant uses
// the 49/21/28 rotation wiring from its reference implementation; + and **
// share the 24/16/37 wiring. Jump strides are 2^64 (Jump) and 2^96
// (LongJump).
type Xoroshiro128 struct {
	s   [2]uint64
	out Scrambler
}

// Reference jump polynomials. The +/** wiring and the ++ wiring have
// distinct characteristic polynomials and therefore distinct tables.
var (
	xoroshiro128Jump     = []uint64{0xdf900294d8f554a5, 0x170865df4b3201fc}
	xoroshiro128LongJump = []uint64{0xd2a98b26625eee7b, 0xdddf9b1090aa7ac1}

	xoroshiro128ppJump     = []uint64{0x2bd7a6a6e99c2ddc, 0x0992ccaf6a6fca05}
	xoroshiro128ppLongJump = []uint64{0x360fd5f2cf8d5d99, 0x9c6e6877736c46e3}
)

// NewXoroshiro128Plus returns an entropy-seeded xoroshiro128+.
func NewXoroshiro128Plus() (*Xoroshiro128, error) { return newXoroshiro128(Plus) }

// NewXoroshiro128PlusPlus returns an entropy-seeded xoroshiro128++.
func NewXoroshiro128PlusPlus() (*Xoroshiro128, error) { return newXoroshiro128(PlusPlus) }

// NewXoroshiro128StarStar returns an entropy-seeded xoroshiro128**.
func NewXoroshiro128StarStar() (*Xoroshiro128, error) { return newXoroshiro128(StarStar) }

func newXoroshiro128(out Scrambler) (*Xoroshiro128, error) {
	e := &Xoroshiro128{out: out}
	if err := e.Reseed(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Xoroshiro128) Name() string { return "xoroshiro128" + e.out.suffix() }

func (e *Xoroshiro128) Uint64() uint64 {
	s0, s1 := e.s[0], e.s[1]

	var result uint64
	switch e.out {
	case PlusPlus:
		result = bits.RotateLeft64(s0+s1, 17) + s0
	case StarStar:
		result = bits.RotateLeft64(s0*5, 7) * 9
	default:
		result = s0 + s1
	}

	s1 ^= s0
	if e.out == PlusPlus {
		e.s[0] = bits.RotateLeft64(s0, 49) ^ s1 ^ (s1 << 21)
		e.s[1] = bits.RotateLeft64(s1, 28)
	} else {
		e.s[0] = bits.RotateLeft64(s0, 24) ^ s1 ^ (s1 << 16)
		e.s[1] = bits.RotateLeft64(s1, 37)
	}
	return result
}

func (e *Xoroshiro128) Seed(words []uint64, opts ...Option) error {
	o := buildOptions(opts)
	seed, err := prepareSeed(e.Name(), words, 2, o)
	if err != nil {
		return err
	}
	copy(e.s[:], seed)
	return nil
}

func (e *Xoroshiro128) SeedBytes(b []byte, opts ...Option) error {
	o := buildOptions(opts)
	seed, err := prepareSeedBytes(e.Name(), b, 2, o)
	if err != nil {
		return err
	}
	copy(e.s[:], seed)
	return nil
}

func (e *Xoroshiro128) Reseed() error {
	return reseedEntropy(e, e.Name(), 2)
}

func (e *Xoroshiro128) Clone() Engine {
	c := *e
	return &c
}

func (e *Xoroshiro128) Jump() error {
	if e.out == PlusPlus {
		polyJump(xoroshiro128ppJump, e.s[:], func() { e.Uint64() })
	} else {
		polyJump(xoroshiro128Jump, e.s[:], func() { e.Uint64() })
	}
	return nil
}

func (e *Xoroshiro128) LongJump() error {
	if e.out == PlusPlus {
		polyJump(xoroshiro128ppLongJump, e.s[:], func() { e.Uint64() })
	} else {
		polyJump(xoroshiro128LongJump, e.s[:], func() { e.Uint64() })
	}
	return nil
}
