package engine

const (
	mt32N         = 624
	mt32M         = 397
	mt32Matrix    = 0x9908b0df
	mt32UpperMask = 0x80000000
	mt32LowerMask = 0x7fffffff
)

// MT19937 is the classic 32-bit packed Mersenne Twister. A single seed
// word runs the original knuth-style initializer; multiple words run the
// published two-pass array initializer, each 64-bit word contributing its
// low then high half to the key. The native output is 32 bits; Uint64
// composes two native draws with the first in the high half. The 2^19937
// period has no practical jump polynomial, so Jump and LongJump report
// unsupported.
type MT19937 struct {
	mt  [mt32N]uint32
	mti int
}

// NewMT19937 returns an entropy-seeded mt19937.
func NewMT19937() (*MT19937, error) {
	e := &MT19937{}
	if err := e.Reseed(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *MT19937) Name() string { return "mt19937" }

func (e *MT19937) init(seed uint32) {
	e.mt[0] = seed
	for i := 1; i < mt32N; i++ {
		e.mt[i] = 1812433253*(e.mt[i-1]^(e.mt[i-1]>>30)) + uint32(i)
	}
	e.mti = mt32N
}

func (e *MT19937) initByArray(key []uint32) {
	e.init(19650218)
	i, j := 1, 0
	n := mt32N
	if len(key) > n {
		n = len(key)
	}
	for ; n > 0; n-- {
		e.mt[i] = (e.mt[i] ^ ((e.mt[i-1] ^ (e.mt[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= mt32N {
			e.mt[0] = e.mt[mt32N-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for n = mt32N - 1; n > 0; n-- {
		e.mt[i] = (e.mt[i] ^ ((e.mt[i-1] ^ (e.mt[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= mt32N {
			e.mt[0] = e.mt[mt32N-1]
			i = 1
		}
	}
	e.mt[0] = 0x80000000
	e.mti = mt32N
}

func (e *MT19937) twist() {
	for k := 0; k < mt32N; k++ {
		y := (e.mt[k] & mt32UpperMask) | (e.mt[(k+1)%mt32N] & mt32LowerMask)
		next := e.mt[(k+mt32M)%mt32N] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mt32Matrix
		}
		e.mt[k] = next
	}
	e.mti = 0
}

// next32 emits one tempered native word.
func (e *MT19937) next32() uint32 {
	if e.mti >= mt32N {
		e.twist()
	}
	y := e.mt[e.mti]
	e.mti++
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

func (e *MT19937) Uint64() uint64 {
	hi := uint64(e.next32())
	return hi<<32 | uint64(e.next32())
}

func (e *MT19937) seedWords(words []uint64) {
	if len(words) == 1 {
		e.init(uint32(words[0]))
		return
	}
	key := make([]uint32, 0, 2*len(words))
	for _, w := range words {
		key = append(key, uint32(w), uint32(w>>32))
	}
	e.initByArray(key)
}

func (e *MT19937) Seed(words []uint64, opts ...Option) error {
	o := buildOptions(opts)
	if err := prepareSeedVar(e.Name(), words, o); err != nil {
		return err
	}
	e.seedWords(words)
	return nil
}

func (e *MT19937) SeedBytes(b []byte, opts ...Option) error {
	o := buildOptions(opts)
	words, err := prepareSeedVarBytes(e.Name(), b, o)
	if err != nil {
		return err
	}
	e.seedWords(words)
	return nil
}

func (e *MT19937) Reseed() error {
	return reseedEntropy(e, e.Name(), 1)
}

func (e *MT19937) Clone() Engine {
	c := *e
	return &c
}

func (e *MT19937) Jump() error {
	return unsupported(e.Name(), "jump")
}

func (e *MT19937) LongJump() error {
	return unsupported(e.Name(), "long-jump")
}
