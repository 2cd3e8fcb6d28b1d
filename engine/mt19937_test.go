package engine

import "testing"

func TestMT19937SingleSeed(t *testing.T) {
	e, err := NewMT19937()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	mustSeed(t, e, 5489)

	checkSequence(t, e, []uint64{
		0xd091bb5c22ae9ef6, 0xe7e1faeed5c31f79, 0x2082352cf807b7df, 0xe9d300053895afe1,
		0xa1e24bba4ee4092b, 0x18f868638c16a625, 0x474ba8c43039cd1a, 0x8c006d5ffe2d7810,
		0xf51f2ae7ff1816e4, 0xf702ef59f7badafa,
	})
}

func TestMT19937_64SingleSeed(t *testing.T) {
	e, err := NewMT19937_64()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	mustSeed(t, e, 5489)

	checkSequence(t, e, []uint64{
		0xc96d191cf6f6aea6, 0x401f7ac78bc80f1c, 0xb5ee8cb6abe457f8, 0xf258d22d4db91392,
		0x04eef2b4b5d860cc, 0x67a7aabe10d172d6, 0x40565d50e72b4021, 0x05d07b7d1e8de386,
		0x8548dea130821acc, 0x583c502c832e0a3a,
	})
}

func TestMT19937_64ArraySeed(t *testing.T) {
	e, err := NewMT19937_64()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	mustSeed(t, e, 0x12345, 0x23456, 0x34567, 0x45678)

	checkSequence(t, e, []uint64{
		0x64d79b552a559d7f, 0x44a572665a6ee240, 0xeb2bf6dc3d72135c, 0xe3836981f9f82ea0,
		0x43a38212350ee392, 0xce77502bffcacf8b, 0x5d8a82d90126f0e7, 0xc0510c6f402c1e3c,
		0x48d895bf8b69f77b, 0x8d9fbb371f1de07f,
	})
}

func TestMTJumpUnsupported(t *testing.T) {
	for _, e := range []Engine{&MT19937{}, &MT19937_64{}} {
		if err := e.Jump(); err == nil {
			t.Fatalf("%s: expected jump to be unsupported", e.Name())
		}
		if err := e.LongJump(); err == nil {
			t.Fatalf("%s: expected long-jump to be unsupported", e.Name())
		}
	}
}

func TestMTCloneMidBlock(t *testing.T) {
	e, err := NewMT19937_64()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	mustSeed(t, e, 5489)

	// Clone in the middle of a tempered block and across a twist boundary.
	for i := 0; i < 300; i++ {
		e.Uint64()
	}
	c := e.Clone()
	for i := 0; i < 30; i++ {
		if a, b := e.Uint64(), c.Uint64(); a != b {
			t.Fatalf("clone diverged at %d: %#x vs %#x", i, a, b)
		}
	}
}
