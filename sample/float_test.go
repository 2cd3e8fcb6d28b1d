package sample

import (
	"math"
	"testing"
)

func TestFloat64HalfOpen(t *testing.T) {
	s := newSplitmix(t)
	for i := 0; i < 10000; i++ {
		f := s.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("draw %d outside [0, 1): %g", i, f)
		}
	}
}

func TestFloat64MantissaGrid(t *testing.T) {
	s := newSplitmix(t)
	// The first word is known; the float must be its top 53 bits.
	want := float64(smWords[0]>>11) * 0x1p-53
	if got := s.Float64(); got != want {
		t.Fatalf("got %g, want %g", got, want)
	}
}

func TestOpenFloat64(t *testing.T) {
	s := newSplitmix(t)
	for i := 0; i < 10000; i++ {
		f := s.OpenFloat64()
		if f <= 0 || f >= 1 {
			t.Fatalf("draw %d outside (0, 1): %g", i, f)
		}
	}
}

func TestOpenFloat64Min(t *testing.T) {
	s := newSplitmix(t)
	const floor = 0.25
	for i := 0; i < 5000; i++ {
		f, err := s.OpenFloat64Min(floor)
		if err != nil {
			t.Fatalf("draw: %v", err)
		}
		if f < floor || f >= 1 {
			t.Fatalf("draw %d outside [%g, 1): %g", i, floor, f)
		}
	}
	if _, err := s.OpenFloat64Min(0); err == nil {
		t.Fatal("expected zero effective-zero to fail")
	}
	if _, err := s.OpenFloat64Min(1.5); err == nil {
		t.Fatal("expected effective zero above one to fail")
	}
}

func TestRawFloat64Validation(t *testing.T) {
	s := newSplitmix(t)
	tests := []struct {
		name          string
		min, max      float64
		minZero       float64
	}{
		{"nan min", math.NaN(), 1, 0x1p-1022},
		{"nan max", 0.5, math.NaN(), 0x1p-1022},
		{"inf min", math.Inf(-1), 1, 0x1p-1022},
		{"inf max", 0.5, math.Inf(1), 0x1p-1022},
		{"nan effective zero", 0.5, 1, math.NaN()},
		{"mixed normal subnormal", 0x1p-1040, 0.5, 0x1p-1022},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.RawFloat64(tt.min, tt.max, tt.minZero); err == nil {
				t.Fatal("expected validation failure")
			}
		})
	}
}

func TestRawFloat64WithinBounds(t *testing.T) {
	s := newSplitmix(t)
	tests := []struct {
		name     string
		min, max float64
	}{
		{"positive", 1.5, 1000.25},
		{"negative", -80.0, -0.125},
		{"straddle", -4.0, 64.0},
		{"one exponent", 2.5, 3.75},
		{"equal bounds", 6.25, 6.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 5000; i++ {
				f, err := s.RawFloat64(tt.min, tt.max, 0x1p-1022)
				if err != nil {
					t.Fatalf("draw: %v", err)
				}
				if f < tt.min || f > tt.max {
					t.Fatalf("draw %d out of bounds [%g, %g]: %g", i, tt.min, tt.max, f)
				}
			}
		})
	}
}

func TestRawFloat64ReordersBounds(t *testing.T) {
	s := newSplitmix(t)
	f, err := s.RawFloat64(10.0, 2.0, 0x1p-1022)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if f < 2.0 || f > 10.0 {
		t.Fatalf("draw out of reordered bounds: %g", f)
	}
}

func TestRawFloat64Subnormal(t *testing.T) {
	s := newSplitmix(t)
	min, max := 0x1p-1070, 0x1p-1060
	for i := 0; i < 5000; i++ {
		f, err := s.RawFloat64(min, max, 0x1p-1022)
		if err != nil {
			t.Fatalf("draw: %v", err)
		}
		if f < min || f > max {
			t.Fatalf("draw %d out of bounds: %g", i, f)
		}
		if !Subnormal(f) {
			t.Fatalf("draw %d is not subnormal: %g", i, f)
		}
	}
}

func TestRawFloat64PowerOfTwoBoundary(t *testing.T) {
	s := newSplitmix(t)
	// Upper bound with zero fraction: the exponent compensation must keep
	// every draw strictly within bounds.
	for i := 0; i < 5000; i++ {
		f, err := s.RawFloat64(1.0, 8.0, 0x1p-1022)
		if err != nil {
			t.Fatalf("draw: %v", err)
		}
		if f < 1.0 || f > 8.0 {
			t.Fatalf("draw %d out of bounds: %g", i, f)
		}
	}
}

func TestBitFieldRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.5, 1.75, -3.25e10, 0x1p-1022, 0x1p-1070, -0x1p-1060}
	for _, v := range values {
		b := Decompose(v)
		if got := Assemble(b); got != v {
			t.Errorf("round trip of %g produced %g (fields %+v)", v, got, b)
		}
	}
	if !Subnormal(0x1p-1070) || Subnormal(1.0) {
		t.Error("subnormal classification wrong")
	}
	if !Subnormal(0) {
		t.Error("zero must classify as subnormal-side")
	}
}
