package sample

import (
	"sync"

	"github.com/wippyai/randcore/engine"
)

// Source is a sampling façade over one Engine. Narrow draws carve the
// most-significant chunk of a fresh raw word and bank the remainder per
// width, so a run of same-width requests replays the raw stream high
// chunk to low chunk regardless of interleaving with other widths.
type Source struct {
	mu     sync.Mutex
	eng    engine.Engine
	bank8  []uint8
	bank16 []uint16
	bank32 []uint32
}

// New wraps an already-constructed engine. The Source takes ownership;
// the caller must not keep using the engine directly.
func New(eng engine.Engine) *Source {
	return &Source{eng: eng}
}

// NewNamed constructs an entropy-seeded Source by engine variant name.
func NewNamed(name string) (*Source, error) {
	eng, err := engine.New(name)
	if err != nil {
		return nil, err
	}
	return New(eng), nil
}

// NewSeeded constructs a deterministically seeded Source by variant name.
func NewSeeded(name string, words []uint64, opts ...engine.Option) (*Source, error) {
	eng, err := engine.NewSeeded(name, words, opts...)
	if err != nil {
		return nil, err
	}
	return New(eng), nil
}

// Name reports the wrapped engine's variant name.
func (s *Source) Name() string {
	return s.eng.Name()
}

// dropBanks discards all cached sub-words. Called whenever the underlying
// stream position changes by anything other than sequential draws.
func (s *Source) dropBanks() {
	s.bank8 = s.bank8[:0]
	s.bank16 = s.bank16[:0]
	s.bank32 = s.bank32[:0]
}

// Seed reseeds the engine deterministically and discards the banks.
func (s *Source) Seed(words []uint64, opts ...engine.Option) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.eng.Seed(words, opts...); err != nil {
		return err
	}
	s.dropBanks()
	return nil
}

// SeedBytes reseeds the engine from bytes and discards the banks.
func (s *Source) SeedBytes(b []byte, opts ...engine.Option) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.eng.SeedBytes(b, opts...); err != nil {
		return err
	}
	s.dropBanks()
	return nil
}

// Reseed draws fresh entropy into the engine and discards the banks.
func (s *Source) Reseed() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.eng.Reseed(); err != nil {
		return err
	}
	s.dropBanks()
	return nil
}

// Jump advances the engine by its family stride and discards the banks.
func (s *Source) Jump() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.eng.Jump(); err != nil {
		return err
	}
	s.dropBanks()
	return nil
}

// LongJump advances the engine by its larger family stride and discards
// the banks.
func (s *Source) LongJump() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.eng.LongJump(); err != nil {
		return err
	}
	s.dropBanks()
	return nil
}

// Clone returns an independent Source with a copied engine and copied
// banks; both then produce identical output for identical call sequences.
func (s *Source) Clone() *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := &Source{eng: s.eng.Clone()}
	c.bank8 = append(c.bank8, s.bank8...)
	c.bank16 = append(c.bank16, s.bank16...)
	c.bank32 = append(c.bank32, s.bank32...)
	return c
}

// raw64 pulls one raw word. Caller holds the lock.
func (s *Source) raw64() uint64 {
	return s.eng.Uint64()
}

// draw8 serves one byte, banking the rest of a fresh word low chunk
// first so the stack pops high to low. Caller holds the lock.
func (s *Source) draw8() uint8 {
	if n := len(s.bank8); n > 0 {
		v := s.bank8[n-1]
		s.bank8 = s.bank8[:n-1]
		return v
	}
	raw := s.raw64()
	for i := 0; i < 7; i++ {
		s.bank8 = append(s.bank8, uint8(raw>>(8*i)))
	}
	return uint8(raw >> 56)
}

func (s *Source) draw16() uint16 {
	if n := len(s.bank16); n > 0 {
		v := s.bank16[n-1]
		s.bank16 = s.bank16[:n-1]
		return v
	}
	raw := s.raw64()
	for i := 0; i < 3; i++ {
		s.bank16 = append(s.bank16, uint16(raw>>(16*i)))
	}
	return uint16(raw >> 48)
}

func (s *Source) draw32() uint32 {
	if n := len(s.bank32); n > 0 {
		v := s.bank32[n-1]
		s.bank32 = s.bank32[:n-1]
		return v
	}
	raw := s.raw64()
	s.bank32 = append(s.bank32, uint32(raw))
	return uint32(raw >> 32)
}

// Uint64 draws one full raw word.
func (s *Source) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw64()
}

// Uint32 draws 32 bits through the width-32 bank.
func (s *Source) Uint32() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draw32()
}

// Uint16 draws 16 bits through the width-16 bank.
func (s *Source) Uint16() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draw16()
}

// Uint8 draws 8 bits through the width-8 bank.
func (s *Source) Uint8() uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draw8()
}

// Int64 draws a full word reinterpreted as signed.
func (s *Source) Int64() int64 { return int64(s.Uint64()) }

// Int32 draws 32 bits reinterpreted as signed.
func (s *Source) Int32() int32 { return int32(s.Uint32()) }

// Int16 draws 16 bits reinterpreted as signed.
func (s *Source) Int16() int16 { return int16(s.Uint16()) }

// Int8 draws 8 bits reinterpreted as signed.
func (s *Source) Int8() int8 { return int8(s.Uint8()) }

// Coin is an unbiased boolean flip from the byte stream.
func (s *Source) Coin() bool {
	return s.Uint8()&1 == 1
}

// Bytes fills p from the byte stream. Each byte goes through the
// width-8 bank, so the fill is reproducible byte for byte.
func (s *Source) Bytes(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range p {
		p[i] = s.draw8()
	}
}
