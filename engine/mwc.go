package engine

import (
	"math/bits"

	"github.com/wippyai/randcore/engine/internal/wideint"
)

// mwcParams describes one member of the multiply-with-carry family. The
// generator state is lags words plus a carry; one step computes
// t = mult*lag[0] + c and shifts the low word of t into the lag window.
// The whole state packs into a single residue below m, so jumping is a
// modular multiplication by a precomputed power of 2^-64.
type mwcParams struct {
	name     string
	mult     uint64
	lags     int
	m        []uint64 // modulus mult*2^(64*lags) - 1, little-endian limbs
	jump     []uint64 // 2^-64^k mod m for the short stride
	longJump []uint64
}

func newMWCParams(name string, mult uint64, lags int, jump, longJump []uint64) *mwcParams {
	m := make([]uint64, lags+1)
	for i := 0; i < lags; i++ {
		m[i] = ^uint64(0)
	}
	m[lags] = mult - 1
	return &mwcParams{name: name, mult: mult, lags: lags, m: m, jump: jump, longJump: longJump}
}

var (
	mwc128Params = newMWCParams("mwc128", 0xffebb71d94fcdaf9, 1,
		[]uint64{0xa72f9a3547208003, 0x2f65fed2e8400983},
		[]uint64{0xe6f7814467f3fcdd, 0x394649cfd6769c91})

	mwc192Params = newMWCParams("mwc192", 0xffa04e67b3c95d86, 2,
		[]uint64{0xd94fb8d87c7c6437, 0xafc217e3b9edf985, 0x0dc2be36e4bd21a2},
		[]uint64{0xd0e7cedd16a0758e, 0xec956c3909137b2d, 0x3c6528aaead6bbdd})

	mwc256Params = newMWCParams("mwc256", 0xfff62cf2ccc0cdaf, 3,
		[]uint64{0x28c3ff11313847eb, 0xfe88c291203b2254, 0xf6f8c3fd02ec98fb, 0x4b89aa2cd51c37b9},
		[]uint64{0x64c6e39cf92f77a4, 0xf95382f758ac9877, 0x06c40ce860e0d702, 0x0af5ca22408cdc83})
)

// MWC is a Marsaglia multiply-with-carry generator. The single-lag
// variant folds the word as x^(x<<32) to mask the weak high bits; the
// wider variants emit the oldest lag word directly.
type MWC struct {
	params *mwcParams
	lag    []uint64
	c      uint64
}

// NewMWC128 returns an entropy-seeded mwc128.
func NewMWC128() (*MWC, error) { return newMWC(mwc128Params) }

// NewMWC192 returns an entropy-seeded mwc192.
func NewMWC192() (*MWC, error) { return newMWC(mwc192Params) }

// NewMWC256 returns an entropy-seeded mwc256.
func NewMWC256() (*MWC, error) { return newMWC(mwc256Params) }

func newMWC(p *mwcParams) (*MWC, error) {
	e := &MWC{params: p, lag: make([]uint64, p.lags), c: 1}
	if err := e.Reseed(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *MWC) Name() string { return e.params.name }

func (e *MWC) Uint64() uint64 {
	x := e.lag[0]
	out := x
	if len(e.lag) == 1 {
		out = x ^ (x << 32)
	}
	hi, lo := bits.Mul64(e.params.mult, x)
	lo, carry := bits.Add64(lo, e.c, 0)
	copy(e.lag, e.lag[1:])
	e.lag[len(e.lag)-1] = lo
	e.c = hi + carry
	return out
}

func (e *MWC) Seed(words []uint64, opts ...Option) error {
	o := buildOptions(opts)
	seed, err := prepareSeed(e.Name(), words, e.params.lags, o)
	if err != nil {
		return err
	}
	copy(e.lag, seed)
	e.c = 1
	return nil
}

func (e *MWC) SeedBytes(b []byte, opts ...Option) error {
	o := buildOptions(opts)
	seed, err := prepareSeedBytes(e.Name(), b, e.params.lags, o)
	if err != nil {
		return err
	}
	copy(e.lag, seed)
	e.c = 1
	return nil
}

func (e *MWC) Reseed() error {
	return reseedEntropy(e, e.Name(), e.params.lags)
}

func (e *MWC) Clone() Engine {
	c := &MWC{params: e.params, lag: make([]uint64, len(e.lag)), c: e.c}
	copy(c.lag, e.lag)
	return c
}

// pack folds the lag window and carry into a single residue below m:
// limb i is lag[i] and the top limb is the carry.
func (e *MWC) pack() []uint64 {
	t := make([]uint64, e.params.lags+1)
	copy(t, e.lag)
	t[e.params.lags] = e.c
	return t
}

func (e *MWC) unpack(t []uint64) {
	copy(e.lag, t[:e.params.lags])
	e.c = t[e.params.lags]
}

func (e *MWC) mulJump(j []uint64) {
	e.unpack(wideint.MulMod(e.pack(), j, e.params.m))
}

func (e *MWC) Jump() error {
	e.mulJump(e.params.jump)
	return nil
}

func (e *MWC) LongJump() error {
	e.mulJump(e.params.longJump)
	return nil
}
