package engine

import "math/bits"

const pcg32Mult = 6364136223846793005

// PCG32 is the XSH-RR 64/32 permuted congruential generator. The native
// output is 32 bits; Uint64 composes two native draws with the first in
// the high half. Seed words are the initial state followed by the stream
// selector. Jump and LongJump advance the native stream by 2^32 and 2^48.
type PCG32 struct {
	state uint64
	inc   uint64
}

// NewPCG32 returns an entropy-seeded pcg32.
func NewPCG32() (*PCG32, error) {
	e := &PCG32{}
	if err := e.Reseed(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *PCG32) Name() string { return "pcg32" }

func (e *PCG32) step() {
	e.state = e.state*pcg32Mult + e.inc
}

// next32 emits one native word, permuting the pre-step state.
func (e *PCG32) next32() uint32 {
	old := e.state
	e.step()
	xs := uint32(((old >> 18) ^ old) >> 27)
	return bits.RotateLeft32(xs, -int(old>>59))
}

func (e *PCG32) Uint64() uint64 {
	hi := uint64(e.next32())
	return hi<<32 | uint64(e.next32())
}

func (e *PCG32) seedState(state, seq uint64) {
	e.inc = (seq << 1) | 1
	e.state = 0
	e.step()
	e.state += state
	e.step()
}

func (e *PCG32) Seed(words []uint64, opts ...Option) error {
	o := buildOptions(opts)
	seed, err := prepareSeed(e.Name(), words, 2, o)
	if err != nil {
		return err
	}
	e.seedState(seed[0], seed[1])
	return nil
}

func (e *PCG32) SeedBytes(b []byte, opts ...Option) error {
	o := buildOptions(opts)
	seed, err := prepareSeedBytes(e.Name(), b, 2, o)
	if err != nil {
		return err
	}
	e.seedState(seed[0], seed[1])
	return nil
}

func (e *PCG32) Reseed() error {
	return reseedEntropy(e, e.Name(), 2)
}

func (e *PCG32) Clone() Engine {
	c := *e
	return &c
}

// Advance moves the native stream delta steps in logarithmic time by
// squaring the affine map state -> mult*state + inc.
func (e *PCG32) Advance(delta uint64) {
	accMult, accPlus := uint64(1), uint64(0)
	curMult, curPlus := uint64(pcg32Mult), e.inc
	for delta > 0 {
		if delta&1 != 0 {
			accMult *= curMult
			accPlus = accPlus*curMult + curPlus
		}
		curPlus = (curMult + 1) * curPlus
		curMult *= curMult
		delta >>= 1
	}
	e.state = accMult*e.state + accPlus
}

func (e *PCG32) Jump() error {
	e.Advance(1 << 32)
	return nil
}

func (e *PCG32) LongJump() error {
	e.Advance(1 << 48)
	return nil
}
