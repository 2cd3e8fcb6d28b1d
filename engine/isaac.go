package engine

const isaacGold = 0x9e3779b9

// ISAAC is Jenkins' original 32-bit indirection generator. The native
// output is 32 bits; Uint64 composes two native draws with the first in
// the high half. Seed words key the mixing array one 32-bit slot per
// word, matching the reference tool's word-per-slot convention. No jump
// support.
type ISAAC struct {
	mm  [256]uint32
	r   [256]uint32
	aa  uint32
	bb  uint32
	cc  uint32
	cnt int
}

// NewISAAC returns an entropy-seeded isaac.
func NewISAAC() (*ISAAC, error) {
	e := &ISAAC{}
	if err := e.Reseed(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *ISAAC) Name() string { return "isaac" }

func isaacMix(s *[8]uint32) {
	s[0] ^= s[1] << 11
	s[3] += s[0]
	s[1] += s[2]
	s[1] ^= s[2] >> 2
	s[4] += s[1]
	s[2] += s[3]
	s[2] ^= s[3] << 8
	s[5] += s[2]
	s[3] += s[4]
	s[3] ^= s[4] >> 16
	s[6] += s[3]
	s[4] += s[5]
	s[4] ^= s[5] << 10
	s[7] += s[4]
	s[5] += s[6]
	s[5] ^= s[6] >> 4
	s[0] += s[5]
	s[6] += s[7]
	s[6] ^= s[7] << 8
	s[1] += s[6]
	s[7] += s[0]
	s[7] ^= s[0] >> 9
	s[2] += s[7]
	s[0] += s[1]
}

func (e *ISAAC) seedWords(words []uint64) {
	var key [256]uint32
	n := len(words)
	if n > 256 {
		n = 256
	}
	for i := 0; i < n; i++ {
		key[i] = uint32(words[i])
	}

	e.aa, e.bb, e.cc = 0, 0, 0
	var s [8]uint32
	for i := range s {
		s[i] = isaacGold
	}
	for i := 0; i < 4; i++ {
		isaacMix(&s)
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
			isaacMix(&s)
			copy(e.mm[i:i+8], s[:])
		}
	}
	e.shuffle()
}

func (e *ISAAC) shuffle() {
	e.cc++
	e.bb += e.cc
	for i := 0; i < 256; i++ {
		x := e.mm[i]
		switch i & 3 {
		case 0:
			e.aa ^= e.aa << 13
		case 1:
			e.aa ^= e.aa >> 6
		case 2:
			e.aa ^= e.aa << 2
		case 3:
			e.aa ^= e.aa >> 16
		}
		e.aa += e.mm[(i+128)&255]
		y := e.mm[(x>>2)&255] + e.aa + e.bb
		e.mm[i] = y
		e.bb = e.mm[(y>>10)&255] + x
		e.r[i] = e.bb
	}
	e.cnt = 256
}

// next32 serves one native word from the result buffer.
func (e *ISAAC) next32() uint32 {
	if e.cnt == 0 {
		e.shuffle()
	}
	e.cnt--
	return e.r[e.cnt]
}

func (e *ISAAC) Uint64() uint64 {
	hi := uint64(e.next32())
	return hi<<32 | uint64(e.next32())
}

func (e *ISAAC) Seed(words []uint64, opts ...Option) error {
	o := buildOptions(opts)
	if err := prepareSeedVar(e.Name(), words, o); err != nil {
		return err
	}
	e.seedWords(words)
	return nil
}

func (e *ISAAC) SeedBytes(b []byte, opts ...Option) error {
	o := buildOptions(opts)
	words, err := prepareSeedVarBytes(e.Name(), b, o)
	if err != nil {
		return err
	}
	e.seedWords(words)
	return nil
}

func (e *ISAAC) Reseed() error {
	return reseedEntropy(e, e.Name(), 8)
}

func (e *ISAAC) Clone() Engine {
	c := *e
	return &c
}

func (e *ISAAC) Jump() error {
	return unsupported(e.Name(), "jump")
}

func (e *ISAAC) LongJump() error {
	return unsupported(e.Name(), "long-jump")
}
