package engine

import "math/bits"

// Xoshiro256 is the 4-word shift-register generator (period 2^256-1).
// All three scramblers share the same linear engine, so one jump table
// serves every variant. Jump strides are 2^128 and 2^192.
type Xoshiro256 struct {
	s   [4]uint64
	out Scrambler
}

var (
	xoshiro256Jump = []uint64{
		0x180ec6d33cfd0aba, 0xd5a61266f0c9392c,
		0xa9582618e03fc9aa, 0x39abdc4529b1661c,
	}
	xoshiro256LongJump = []uint64{
		0x76e15d3efefdcbbf, 0xc5004e441c522fb3,
		0x77710069854ee241, 0x39109bb02acbe635,
	}
)

// NewXoshiro256Plus returns an entropy-seeded xoshiro256+.
func NewXoshiro256Plus() (*Xoshiro256, error) { return newXoshiro256(Plus) }

// NewXoshiro256PlusPlus returns an entropy-seeded xoshiro256++.
func NewXoshiro256PlusPlus() (*Xoshiro256, error) { return newXoshiro256(PlusPlus) }

// NewXoshiro256StarStar returns an entropy-seeded xoshiro256**.
func NewXoshiro256StarStar() (*Xoshiro256, error) { return newXoshiro256(StarStar) }

func newXoshiro256(out Scrambler) (*Xoshiro256, error) {
	e := &Xoshiro256{out: out}
	if err := e.Reseed(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Xoshiro256) Name() string { return "xoshiro256" + e.out.suffix() }

func (e *Xoshiro256) Uint64() uint64 {
	var result uint64
	switch e.out {
	case PlusPlus:
		result = bits.RotateLeft64(e.s[0]+e.s[3], 23) + e.s[0]
	case StarStar:
		result = bits.RotateLeft64(e.s[1]*5, 7) * 9
	default:
		result = e.s[0] + e.s[3]
	}

	t := e.s[1] << 17
	e.s[2] ^= e.s[0]
	e.s[3] ^= e.s[1]
	e.s[1] ^= e.s[2]
	e.s[0] ^= e.s[3]
	e.s[2] ^= t
	e.s[3] = bits.RotateLeft64(e.s[3], 45)
	return result
}

func (e *Xoshiro256) Seed(words []uint64, opts ...Option) error {
	o := buildOptions(opts)
	seed, err := prepareSeed(e.Name(), words, 4, o)
	if err != nil {
		return err
	}
	copy(e.s[:], seed)
	return nil
}

func (e *Xoshiro256) SeedBytes(b []byte, opts ...Option) error {
	o := buildOptions(opts)
	seed, err := prepareSeedBytes(e.Name(), b, 4, o)
	if err != nil {
		return err
	}
	copy(e.s[:], seed)
	return nil
}

func (e *Xoshiro256) Reseed() error {
	return reseedEntropy(e, e.Name(), 4)
}

func (e *Xoshiro256) Clone() Engine {
	c := *e
	return &c
}

func (e *Xoshiro256) Jump() error {
	polyJump(xoshiro256Jump, e.s[:], func() { e.Uint64() })
	return nil
}

func (e *Xoshiro256) LongJump() error {
	polyJump(xoshiro256LongJump, e.s[:], func() { e.Uint64() })
	return nil
}
