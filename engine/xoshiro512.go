package engine

import "math/bits"

// Xoshiro512 is the 8-word shift-register generator (period 2^512-1).
// Jump stride is 2^256, long-jump stride is 2^384.
type Xoshiro512 struct {
	s   [8]uint64
	out Scrambler
}

var xoshiro512Jump = []uint64{
	0x33ed89b6e7a353f9, 0x760083d7955323be,
	0x2837f2fbb5f22fae, 0x4b8c5674d309511c,
	0xb11ac47a7ba28c25, 0xf1be7667092bcc1c,
	0x53851efdb6df0aaf, 0x1ebbc8b23eaf25db,
}

var xoshiro512LongJump = []uint64{
	0x11467fef8f921d28, 0xa2a819f2e79c8ea8,
	0xa8299fc284b3959a, 0xb4d347340ca63ee1,
	0x1cb0940bedbff6ce, 0xd956c5c4fa1f8e17,
	0x915e38fd4eda93bc, 0x5b3ccdfa5d7daca5,
}

// NewXoshiro512Plus returns an entropy-seeded xoshiro512+.
func NewXoshiro512Plus() (*Xoshiro512, error) { return newXoshiro512(Plus) }

// NewXoshiro512PlusPlus returns an entropy-seeded xoshiro512++.
func NewXoshiro512PlusPlus() (*Xoshiro512, error) { return newXoshiro512(PlusPlus) }

// NewXoshiro512StarStar returns an entropy-seeded xoshiro512**.
func NewXoshiro512StarStar() (*Xoshiro512, error) { return newXoshiro512(StarStar) }

func newXoshiro512(out Scrambler) (*Xoshiro512, error) {
	e := &Xoshiro512{out: out}
	if err := e.Reseed(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Xoshiro512) Name() string { return "xoshiro512" + e.out.suffix() }

func (e *Xoshiro512) Uint64() uint64 {
	var result uint64
	switch e.out {
	case PlusPlus:
		result = bits.RotateLeft64(e.s[0]+e.s[2], 17) + e.s[2]
	case StarStar:
		result = bits.RotateLeft64(e.s[1]*5, 7) * 9
	default:
		result = e.s[0] + e.s[2]
	}

	t := e.s[1] << 11
	e.s[2] ^= e.s[0]
	e.s[5] ^= e.s[1]
	e.s[1] ^= e.s[2]
	e.s[7] ^= e.s[3]
	e.s[3] ^= e.s[4]
	e.s[4] ^= e.s[5]
	e.s[0] ^= e.s[6]
	e.s[6] ^= e.s[7]
	e.s[6] ^= t
	e.s[7] = bits.RotateLeft64(e.s[7], 21)
	return result
}

func (e *Xoshiro512) Seed(words []uint64, opts ...Option) error {
	o := buildOptions(opts)
	seed, err := prepareSeed(e.Name(), words, 8, o)
	if err != nil {
		return err
	}
	copy(e.s[:], seed)
	return nil
}

func (e *Xoshiro512) SeedBytes(b []byte, opts ...Option) error {
	o := buildOptions(opts)
	seed, err := prepareSeedBytes(e.Name(), b, 8, o)
	if err != nil {
		return err
	}
	copy(e.s[:], seed)
	return nil
}

func (e *Xoshiro512) Reseed() error {
	return reseedEntropy(e, e.Name(), 8)
}

func (e *Xoshiro512) Clone() Engine {
	c := *e
	return &c
}

func (e *Xoshiro512) Jump() error {
	polyJump(xoshiro512Jump, e.s[:], func() { e.Uint64() })
	return nil
}

func (e *Xoshiro512) LongJump() error {
	polyJump(xoshiro512LongJump, e.s[:], func() { e.Uint64() })
	return nil
}
