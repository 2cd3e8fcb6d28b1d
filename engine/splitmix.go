package engine

// splitmixState is the 1-word splitting-generator state, shared between the
// SplitMix64 engine and the seed expansion used by wider families.
type splitmixState uint64

// next advances the state by the fixed odd increment and applies the
// three-round multiply/xor-shift finalizer.
func (s *splitmixState) next() uint64 {
	*s += 0x9e3779b97f4a7c15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// SplitMix64 is the splitting generator: one word of state advanced by a
// fixed odd increment, finalized with an avalanche round per output. It
// defines no jump operation; the increment scheme is inherently serial.
type SplitMix64 struct {
	state splitmixState
}

// NewSplitMix64 returns an entropy-seeded SplitMix64.
func NewSplitMix64() (*SplitMix64, error) {
	e := &SplitMix64{}
	if err := e.Reseed(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *SplitMix64) Name() string { return "splitmix64" }

func (e *SplitMix64) Uint64() uint64 {
	return e.state.next()
}

func (e *SplitMix64) Seed(words []uint64, opts ...Option) error {
	o := buildOptions(opts)
	seed, err := prepareSeed(e.Name(), words, 1, o)
	if err != nil {
		return err
	}
	e.state = splitmixState(seed[0])
	return nil
}

func (e *SplitMix64) SeedBytes(b []byte, opts ...Option) error {
	o := buildOptions(opts)
	seed, err := prepareSeedBytes(e.Name(), b, 1, o)
	if err != nil {
		return err
	}
	e.state = splitmixState(seed[0])
	return nil
}

func (e *SplitMix64) Reseed() error {
	return reseedEntropy(e, e.Name(), 1)
}

func (e *SplitMix64) Clone() Engine {
	c := *e
	return &c
}

func (e *SplitMix64) Jump() error {
	return unsupported(e.Name(), "jump")
}

func (e *SplitMix64) LongJump() error {
	return unsupported(e.Name(), "long-jump")
}
