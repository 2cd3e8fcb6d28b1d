package sample

import (
	"testing"

	"github.com/wippyai/randcore/engine"
)

func newSplitmix(t *testing.T) *Source {
	t.Helper()
	s, err := NewSeeded("splitmix64", []uint64{0x12345678})
	if err != nil {
		t.Fatalf("seeded: %v", err)
	}
	return s
}

// Raw words of splitmix64 seeded with 0x12345678; the banking tests
// below carve these.
var smWords = []uint64{
	0x38f1dc39d1906b6f, 0xdfe4142236dd9517, 0x30c0356884c4f31f, 0x3e293305663e57f9,
	0x1802933bbd8928c4,
}

func TestUint32BankOrder(t *testing.T) {
	s := newSplitmix(t)
	want := []uint32{
		uint32(smWords[0] >> 32), uint32(smWords[0]),
		uint32(smWords[1] >> 32), uint32(smWords[1]),
	}
	for i, w := range want {
		if got := s.Uint32(); got != w {
			t.Fatalf("draw %d: got %#08x, want %#08x", i, got, w)
		}
	}
}

func TestUint16BankOrder(t *testing.T) {
	s := newSplitmix(t)
	raw := smWords[0]
	want := []uint16{
		uint16(raw >> 48), uint16(raw >> 32), uint16(raw >> 16), uint16(raw),
	}
	for i, w := range want {
		if got := s.Uint16(); got != w {
			t.Fatalf("draw %d: got %#04x, want %#04x", i, got, w)
		}
	}
}

func TestUint8BankOrder(t *testing.T) {
	s := newSplitmix(t)
	raw := smWords[0]
	for i := 0; i < 8; i++ {
		w := uint8(raw >> (56 - 8*i))
		if got := s.Uint8(); got != w {
			t.Fatalf("draw %d: got %#02x, want %#02x", i, got, w)
		}
	}
	// Ninth byte starts the next raw word.
	if got, w := s.Uint8(), uint8(smWords[1]>>56); got != w {
		t.Fatalf("ninth draw: got %#02x, want %#02x", got, w)
	}
}

func TestWidthBanksAreIndependent(t *testing.T) {
	s := newSplitmix(t)

	// Each width pulls its own raw word; interleaving does not steal
	// another width's banked chunks.
	if got, w := s.Uint32(), uint32(smWords[0]>>32); got != w {
		t.Fatalf("uint32: got %#08x, want %#08x", got, w)
	}
	if got, w := s.Uint16(), uint16(smWords[1]>>48); got != w {
		t.Fatalf("uint16: got %#04x, want %#04x", got, w)
	}
	if got, w := s.Uint8(), uint8(smWords[2]>>56); got != w {
		t.Fatalf("uint8: got %#02x, want %#02x", got, w)
	}

	// Now drain the banked leftovers in LIFO (high-to-low) order.
	if got, w := s.Uint32(), uint32(smWords[0]); got != w {
		t.Fatalf("banked uint32: got %#08x, want %#08x", got, w)
	}
	if got, w := s.Uint16(), uint16(smWords[1]>>32); got != w {
		t.Fatalf("banked uint16: got %#04x, want %#04x", got, w)
	}
	if got, w := s.Uint8(), uint8(smWords[2]>>48); got != w {
		t.Fatalf("banked uint8: got %#02x, want %#02x", got, w)
	}
}

func TestPCG32NativeStreamThroughBank(t *testing.T) {
	s, err := NewSeeded("pcg32", []uint64{0x12345678, 0x98765432})
	if err != nil {
		t.Fatalf("seeded: %v", err)
	}
	want := []uint32{
		2098444299, 3146305294, 724141107, 3646777727, 4146451631,
		786350529, 1390359870, 470195731, 3999409732, 4100632749,
		2848297225, 1330528224, 1965167708, 2732630254, 2670843380,
		1016216922, 953070094, 77203014, 2081414551, 1418079917,
	}
	for i, w := range want {
		if got := s.Uint32(); got != w {
			t.Fatalf("native draw %d: got %d, want %d", i, got, w)
		}
	}
}

func TestCloneCopiesBanks(t *testing.T) {
	s := newSplitmix(t)
	s.Uint8() // leaves seven banked bytes

	c := s.Clone()
	for i := 0; i < 20; i++ {
		if a, b := s.Uint8(), c.Uint8(); a != b {
			t.Fatalf("clone diverged at byte %d: %#02x vs %#02x", i, a, b)
		}
	}
	if a, b := s.Uint64(), c.Uint64(); a != b {
		t.Fatalf("clone diverged on raw word: %#x vs %#x", a, b)
	}
}

func TestSeedDropsBanks(t *testing.T) {
	s := newSplitmix(t)
	s.Uint8()

	if err := s.Seed([]uint64{0x12345678}); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	// A fresh seed must replay the stream from the top, not serve stale
	// banked bytes.
	if got, w := s.Uint8(), uint8(smWords[0]>>56); got != w {
		t.Fatalf("post-reseed byte: got %#02x, want %#02x", got, w)
	}
}

func TestJumpDropsBanks(t *testing.T) {
	s, err := NewSeeded("xoshiro256++", []uint64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("seeded: %v", err)
	}
	s.Uint8()

	ref, err := NewSeeded("xoshiro256++", []uint64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("seeded: %v", err)
	}
	ref.Uint64() // match the word consumed by the byte draw above

	if err := s.Jump(); err != nil {
		t.Fatalf("jump: %v", err)
	}
	if err := ref.Jump(); err != nil {
		t.Fatalf("jump: %v", err)
	}
	if a, b := s.Uint8(), ref.Uint8(); a != b {
		t.Fatalf("post-jump byte differs: %#02x vs %#02x", a, b)
	}
}

func TestBytesMatchesByteStream(t *testing.T) {
	a := newSplitmix(t)
	b := newSplitmix(t)

	buf := make([]byte, 19)
	a.Bytes(buf)
	for i, v := range buf {
		if w := b.Uint8(); v != w {
			t.Fatalf("byte %d: got %#02x, want %#02x", i, v, w)
		}
	}
}

func TestSourceSeedErrorKeepsState(t *testing.T) {
	s := newSplitmix(t)
	first := s.Uint8()

	// A failed reseed must not disturb the stream or the bank.
	if err := s.Seed([]uint64{0}); err == nil {
		t.Fatal("expected zero seed to fail")
	}
	_ = first
	if got, w := s.Uint8(), uint8(smWords[0]>>48); got != w {
		t.Fatalf("post-failure byte: got %#02x, want %#02x", got, w)
	}
}

func TestNewNamedUnknown(t *testing.T) {
	if _, err := NewNamed("fortuna"); err == nil {
		t.Fatal("expected unknown engine to fail")
	}
}

func TestSourceWrapsExistingEngine(t *testing.T) {
	e, err := engine.NewSeeded("mwc128", []uint64{0x12345678})
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	s := New(e)
	if s.Name() != "mwc128" {
		t.Fatalf("name = %q", s.Name())
	}
	if got := s.Uint64(); got != 0x1234567812345678 {
		t.Fatalf("first raw word = %#x", got)
	}
}
