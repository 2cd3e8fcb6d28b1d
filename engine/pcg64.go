package engine

import "math/bits"

// 128-bit LCG multiplier from the reference implementation.
var pcg64Mult = u128{2549297995355413924, 4865540595714422341}

// u128 is an unsigned 128-bit value used by the pcg64 state arithmetic.
// All operations are mod 2^128.
type u128 struct {
	hi, lo uint64
}

func (a u128) add(b u128) u128 {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	return u128{a.hi + b.hi + carry, lo}
}

func (a u128) mul(b u128) u128 {
	hi, lo := bits.Mul64(a.lo, b.lo)
	hi += a.lo*b.hi + a.hi*b.lo
	return u128{hi, lo}
}

func (a u128) shl1() u128 {
	return u128{a.hi<<1 | a.lo>>63, a.lo << 1}
}

// PCG64 is the XSL-RR 128/64 permuted congruential generator. The output
// permutation folds the post-step state, so unlike pcg32 the emitted word
// reflects the state after the advance. Seed words are state low, state
// high, stream low, stream high. Jump and LongJump advance by 2^64 and
// 2^96.
type PCG64 struct {
	state u128
	inc   u128
}

// NewPCG64 returns an entropy-seeded pcg64.
func NewPCG64() (*PCG64, error) {
	e := &PCG64{}
	if err := e.Reseed(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *PCG64) Name() string { return "pcg64" }

func (e *PCG64) step() {
	e.state = e.state.mul(pcg64Mult).add(e.inc)
}

func (e *PCG64) Uint64() uint64 {
	e.step()
	return bits.RotateLeft64(e.state.hi^e.state.lo, -int(e.state.hi>>58))
}

func (e *PCG64) seedState(state, seq u128) {
	e.inc = seq.shl1()
	e.inc.lo |= 1
	e.state = u128{}
	e.step()
	e.state = e.state.add(state)
	e.step()
}

func (e *PCG64) Seed(words []uint64, opts ...Option) error {
	o := buildOptions(opts)
	seed, err := prepareSeed(e.Name(), words, 4, o)
	if err != nil {
		return err
	}
	e.seedState(u128{seed[1], seed[0]}, u128{seed[3], seed[2]})
	return nil
}

func (e *PCG64) SeedBytes(b []byte, opts ...Option) error {
	o := buildOptions(opts)
	seed, err := prepareSeedBytes(e.Name(), b, 4, o)
	if err != nil {
		return err
	}
	e.seedState(u128{seed[1], seed[0]}, u128{seed[3], seed[2]})
	return nil
}

func (e *PCG64) Reseed() error {
	return reseedEntropy(e, e.Name(), 4)
}

func (e *PCG64) Clone() Engine {
	c := *e
	return &c
}

// Advance moves the stream delta steps (128-bit delta, high and low
// halves) in logarithmic time by squaring the affine map.
func (e *PCG64) Advance(deltaHi, deltaLo uint64) {
	accMult := u128{0, 1}
	var accPlus u128
	curMult, curPlus := pcg64Mult, e.inc
	one := u128{0, 1}
	for deltaHi != 0 || deltaLo != 0 {
		if deltaLo&1 != 0 {
			accMult = accMult.mul(curMult)
			accPlus = accPlus.mul(curMult).add(curPlus)
		}
		curPlus = curMult.add(one).mul(curPlus)
		curMult = curMult.mul(curMult)
		deltaLo = deltaLo>>1 | deltaHi<<63
		deltaHi >>= 1
	}
	e.state = accMult.mul(e.state).add(accPlus)
}

func (e *PCG64) Jump() error {
	e.Advance(1, 0)
	return nil
}

func (e *PCG64) LongJump() error {
	e.Advance(1<<32, 0)
	return nil
}
