package engine

const isaac64Gold = 0x9e3779b97f4a7c13

// ISAAC64 is Jenkins' 64-bit indirection generator. 256 results are
// produced per shuffle pass and served newest-first from the buffer.
// Seed words key the first 256 slots of the mixing array; the all-zero
// key (with the zero override) reproduces the published reference
// stream. The indirection step has no algebraic jump; Jump and LongJump
// report unsupported.
type ISAAC64 struct {
	mm  [256]uint64
	r   [256]uint64
	aa  uint64
	bb  uint64
	cc  uint64
	cnt int
}

// NewISAAC64 returns an entropy-seeded isaac64.
func NewISAAC64() (*ISAAC64, error) {
	e := &ISAAC64{}
	if err := e.Reseed(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *ISAAC64) Name() string { return "isaac64" }

func isaac64Mix(s *[8]uint64) {
	s[0] -= s[4]
	s[5] ^= s[7] >> 9
	s[7] += s[0]
	s[1] -= s[5]
	s[6] ^= s[0] << 9
	s[0] += s[1]
	s[2] -= s[6]
	s[7] ^= s[1] >> 23
	s[1] += s[2]
	s[3] -= s[7]
	s[0] ^= s[2] << 15
	s[2] += s[3]
	s[4] -= s[0]
	s[1] ^= s[3] >> 14
	s[3] += s[4]
	s[5] -= s[1]
	s[2] ^= s[4] << 20
	s[4] += s[5]
	s[6] -= s[2]
	s[3] ^= s[5] >> 17
	s[5] += s[6]
	s[7] -= s[3]
	s[4] ^= s[6] << 14
	s[6] += s[7]
}

func (e *ISAAC64) seedWords(words []uint64) {
	var key [256]uint64
	n := len(words)
	if n > 256 {
		n = 256
	}
	copy(key[:n], words)

	e.aa, e.bb, e.cc = 0, 0, 0
	var s [8]uint64
	for i := range s {
		s[i] = isaac64Gold
	}
	for i := 0; i < 4; i++ {
		isaac64Mix(&s)
	}
	for pass := 0; pass < 2; pass++ {
		src := key[:]
		if pass == 1 {
			src = e.mm[:]
		}
		for i := 0; i < 256; i += 8 {
			for j := 0; j < 8; j++ {
				s[j] += src[i+j]
			}
			isaac64Mix(&s)
			copy(e.mm[i:i+8], s[:])
		}
	}
	e.shuffle()
}

// shuffle regenerates all 256 buffered results.
func (e *ISAAC64) shuffle() {
	e.cc++
	e.bb += e.cc
	for i := 0; i < 256; i++ {
		x := e.mm[i]
		switch i & 3 {
		case 0:
			e.aa = ^(e.aa ^ (e.aa << 21))
		case 1:
			e.aa ^= e.aa >> 5
		case 2:
			e.aa ^= e.aa << 12
		case 3:
			e.aa ^= e.aa >> 33
		}
		e.aa += e.mm[(i+128)&255]
		y := e.mm[(x>>3)&255] + e.aa + e.bb
		e.mm[i] = y
		e.bb = e.mm[(y>>11)&255] + x
		e.r[i] = e.bb
	}
	e.cnt = 256
}

func (e *ISAAC64) Uint64() uint64 {
	if e.cnt == 0 {
		e.shuffle()
	}
	e.cnt--
	return e.r[e.cnt]
}

func (e *ISAAC64) Seed(words []uint64, opts ...Option) error {
	o := buildOptions(opts)
	if err := prepareSeedVar(e.Name(), words, o); err != nil {
		return err
	}
	e.seedWords(words)
	return nil
}

func (e *ISAAC64) SeedBytes(b []byte, opts ...Option) error {
	o := buildOptions(opts)
	words, err := prepareSeedVarBytes(e.Name(), b, o)
	if err != nil {
		return err
	}
	e.seedWords(words)
	return nil
}

func (e *ISAAC64) Reseed() error {
	return reseedEntropy(e, e.Name(), 8)
}

func (e *ISAAC64) Clone() Engine {
	c := *e
	return &c
}

func (e *ISAAC64) Jump() error {
	return unsupported(e.Name(), "jump")
}

func (e *ISAAC64) LongJump() error {
	return unsupported(e.Name(), "long-jump")
}
