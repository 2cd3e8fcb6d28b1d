package engine

const (
	mt64N         = 312
	mt64M         = 156
	mt64Matrix    = 0xb5026f5aa96619e9
	mt64UpperMask = 0xffffffff80000000
	mt64LowerMask = 0x000000007fffffff
)

// MT19937_64 is the 64-bit Mersenne Twister. Seeding mirrors MT19937:
// one word runs the scalar initializer, several words run the array
// initializer with the words as the key directly. No jump support.
type MT19937_64 struct {
	mt  [mt64N]uint64
	mti int
}

// NewMT19937_64 returns an entropy-seeded mt19937-64.
func NewMT19937_64() (*MT19937_64, error) {
	e := &MT19937_64{}
	if err := e.Reseed(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *MT19937_64) Name() string { return "mt19937-64" }

func (e *MT19937_64) init(seed uint64) {
	e.mt[0] = seed
	for i := 1; i < mt64N; i++ {
		e.mt[i] = 6364136223846793005*(e.mt[i-1]^(e.mt[i-1]>>62)) + uint64(i)
	}
	e.mti = mt64N
}

func (e *MT19937_64) initByArray(key []uint64) {
	e.init(19650218)
	i, j := 1, 0
	n := mt64N
	if len(key) > n {
		n = len(key)
	}
	for ; n > 0; n-- {
		e.mt[i] = (e.mt[i] ^ ((e.mt[i-1] ^ (e.mt[i-1] >> 62)) * 3935559000370003845)) + key[j] + uint64(j)
		i++
		j++
		if i >= mt64N {
			e.mt[0] = e.mt[mt64N-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for n = mt64N - 1; n > 0; n-- {
		e.mt[i] = (e.mt[i] ^ ((e.mt[i-1] ^ (e.mt[i-1] >> 62)) * 2862933555777941757)) - uint64(i)
		i++
		if i >= mt64N {
			e.mt[0] = e.mt[mt64N-1]
			i = 1
		}
	}
	e.mt[0] = 1 << 63
	e.mti = mt64N
}

func (e *MT19937_64) twist() {
	for k := 0; k < mt64N; k++ {
		y := (e.mt[k] & mt64UpperMask) | (e.mt[(k+1)%mt64N] & mt64LowerMask)
		next := e.mt[(k+mt64M)%mt64N] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mt64Matrix
		}
		e.mt[k] = next
	}
	e.mti = 0
}

func (e *MT19937_64) Uint64() uint64 {
	if e.mti >= mt64N {
		e.twist()
	}
	y := e.mt[e.mti]
	e.mti++
	y ^= (y >> 29) & 0x5555555555555555
	y ^= (y << 17) & 0x71d67fffeda60000
	y ^= (y << 37) & 0xfff7eee000000000
	y ^= y >> 43
	return y
}

func (e *MT19937_64) seedWords(words []uint64) {
	if len(words) == 1 {
		e.init(words[0])
		return
	}
	e.initByArray(words)
}

func (e *MT19937_64) Seed(words []uint64, opts ...Option) error {
	o := buildOptions(opts)
	if err := prepareSeedVar(e.Name(), words, o); err != nil {
		return err
	}
	e.seedWords(words)
	return nil
}

func (e *MT19937_64) SeedBytes(b []byte, opts ...Option) error {
	o := buildOptions(opts)
	words, err := prepareSeedVarBytes(e.Name(), b, o)
	if err != nil {
		return err
	}
	e.seedWords(words)
	return nil
}

func (e *MT19937_64) Reseed() error {
	return reseedEntropy(e, e.Name(), 1)
}

func (e *MT19937_64) Clone() Engine {
	c := *e
	return &c
}

func (e *MT19937_64) Jump() error {
	return unsupported(e.Name(), "jump")
}

func (e *MT19937_64) LongJump() error {
	return unsupported(e.Name(), "long-jump")
}
