package engine

// XorShift1024Star is the 16-word xorshift generator with a multiplicative
// scrambler (period 2^1024-1). State carries a rotating pointer, so the
// jump accumulator indexes relative to it. Jump stride is 2^512; the
// reference defines no long jump.
type XorShift1024Star struct {
	s [16]uint64
	p int
}

const xorshift1024Mult = 1181783497276652981

var xorshift1024Jump = []uint64{
	0x84242f96eca9c41d, 0xa3c65b8776f96855,
	0x5b34a39f070b5837, 0x4489affce4f31a1e,
	0x2ffeeb0a48316f40, 0xdc2d9891fe68c022,
	0x3659132bb12fea70, 0xaac17d8efa43cab8,
	0xc4cb815590989b13, 0x5ee975283d71c93b,
	0x691548c86c1bd540, 0x7910c41d10a1e6a5,
	0x0b5fc64563b3e2a8, 0x047f7684e9fc949d,
	0xb99181f2d8f685ca, 0x284600e3f30e38c3,
}

// NewXorShift1024Star returns an entropy-seeded xorshift1024*.
func NewXorShift1024Star() (*XorShift1024Star, error) {
	e := &XorShift1024Star{}
	if err := e.Reseed(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *XorShift1024Star) Name() string { return "xorshift1024*" }

func (e *XorShift1024Star) Uint64() uint64 {
	s0 := e.s[e.p]
	e.p = (e.p + 1) & 15
	s1 := e.s[e.p]
	s1 ^= s1 << 31
	e.s[e.p] = s1 ^ s0 ^ (s1 >> 11) ^ (s0 >> 30)
	return e.s[e.p] * xorshift1024Mult
}

func (e *XorShift1024Star) Seed(words []uint64, opts ...Option) error {
	o := buildOptions(opts)
	seed, err := prepareSeed(e.Name(), words, 16, o)
	if err != nil {
		return err
	}
	copy(e.s[:], seed)
	e.p = 0
	return nil
}

func (e *XorShift1024Star) SeedBytes(b []byte, opts ...Option) error {
	o := buildOptions(opts)
	seed, err := prepareSeedBytes(e.Name(), b, 16, o)
	if err != nil {
		return err
	}
	copy(e.s[:], seed)
	e.p = 0
	return nil
}

func (e *XorShift1024Star) Reseed() error {
	return reseedEntropy(e, e.Name(), 16)
}

func (e *XorShift1024Star) Clone() Engine {
	c := *e
	return &c
}

func (e *XorShift1024Star) Jump() error {
	var acc [16]uint64
	for _, mask := range xorshift1024Jump {
		for bit := 0; bit < 64; bit++ {
			if mask&(1<<uint(bit)) != 0 {
				for j := 0; j < 16; j++ {
					acc[j] ^= e.s[(j+e.p)&15]
				}
			}
			e.Uint64()
		}
	}
	for j := 0; j < 16; j++ {
		e.s[(j+e.p)&15] = acc[j]
	}
	return nil
}

func (e *XorShift1024Star) LongJump() error {
	return unsupported(e.Name(), "long-jump")
}
