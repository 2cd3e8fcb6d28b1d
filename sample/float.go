package sample

import (
	"math"

	"github.com/wippyai/randcore/errors"
)

// Float64 draws from the half-open interval [0, 1) using the full 53-bit
// mantissa grid.
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(s.raw64()>>11) * 0x1p-53
}

// OpenFloat64 draws from the open interval (0, 1): the half-open draw is
// repeated until it clears zero.
func (s *Source) OpenFloat64() float64 {
	f, _ := s.OpenFloat64Min(math.SmallestNonzeroFloat64)
	return f
}

// OpenFloat64Min draws from (0, 1) treating minZero as the effective
// zero: draws below it are discarded, so the result is uniform on
// [minZero, 1). minZero must be a finite value inside (0, 1).
func (s *Source) OpenFloat64Min(minZero float64) (float64, error) {
	if math.IsNaN(minZero) || minZero <= 0 || minZero >= 1 {
		return 0, errors.InvalidRange("effective zero %g outside (0, 1)", minZero)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		f := float64(s.raw64()>>11) * 0x1p-53
		if f >= minZero {
			return f, nil
		}
	}
}

// u64between draws uniformly from [min, max] with the lock held. The
// range never spans the full word here.
func (s *Source) u64between(min, max uint64) uint64 {
	if min == max {
		return min
	}
	return min + reject64(max-min+1, s.raw64)
}

// RawFloat64 constructs one double with explicit control of the sign,
// exponent and fraction fields, uniformly choosing an exponent from the
// range the bounds allow and then a fraction from the range the chosen
// exponent allows. Bounds must be finite, are reordered if needed, and
// must both be normal or both subnormal. When the bounds straddle zero,
// minZero stands in as the smallest magnitude on either side; outside
// the normal range or non-positive it defaults to the smallest normal
// double. A failed validation leaves the stream untouched.
func (s *Source) RawFloat64(min, max, minZero float64) (float64, error) {
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		return 0, errors.InvalidRange("bounds must be finite, got [%g, %g]", min, max)
	}
	if math.IsNaN(minZero) || math.IsInf(minZero, 0) {
		return 0, errors.InvalidRange("effective zero %g is not finite", minZero)
	}
	if min > max {
		min, max = max, min
	}
	if Subnormal(min) != Subnormal(max) {
		return 0, errors.InvalidRange("bounds [%g, %g] mix normal and subnormal values", min, max)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Sign is forced unless the bounds straddle zero.
	var sign uint64
	switch {
	case min >= 0:
		sign = 0
	case max <= 0:
		sign = 1
	default:
		sign = uint64(s.draw8() & 1)
	}

	if Subnormal(min) {
		return s.rawSubnormal(sign, min, max), nil
	}
	return s.rawNormal(sign, min, max, minZero), nil
}

// rawSubnormal draws the fraction of a zero-exponent double between the
// bounds that apply to the chosen sign. Caller holds the lock.
func (s *Source) rawSubnormal(sign uint64, min, max float64) float64 {
	var loF, hiF uint64
	switch {
	case min >= 0:
		loF, hiF = Decompose(min).Frac, Decompose(max).Frac
	case max <= 0:
		loF, hiF = Decompose(max).Frac, Decompose(min).Frac
	case sign == 0:
		loF, hiF = 0, Decompose(max).Frac
	default:
		loF, hiF = 0, Decompose(min).Frac
	}
	return Assemble(BitField{Sign: sign, Exp: 0, Frac: s.u64between(loF, hiF)})
}

// rawNormal draws exponent and fraction for a normal-range double.
// Caller holds the lock.
func (s *Source) rawNormal(sign uint64, min, max, minZero float64) float64 {
	if minZero <= 0 || Subnormal(minZero) {
		minZero = 0x1p-1022 // smallest normal
	}

	// Magnitude window for the chosen sign.
	var magLo, magHi float64
	switch {
	case min >= 0:
		magLo, magHi = min, max
	case max <= 0:
		magLo, magHi = -max, -min
	case sign == 0:
		magLo, magHi = minZero, max
	default:
		magLo, magHi = minZero, -min
	}
	if magLo > magHi {
		magLo = magHi
	}

	lo := Decompose(magLo)
	hi := Decompose(magHi)

	exp := s.u64between(lo.Exp, hi.Exp)
	loF, hiF := uint64(0), fracMask
	if exp == hi.Exp {
		hiF = hi.Frac
	}
	if exp == lo.Exp {
		loF = lo.Frac
	}
	// An exact power-of-two upper bound pins the fraction to zero; step
	// one exponent down and reopen the full fraction range instead.
	if exp == hi.Exp && hiF == 0 && exp > lo.Exp {
		exp--
		loF, hiF = 0, fracMask
		if exp == lo.Exp {
			loF = lo.Frac
		}
	}
	return Assemble(BitField{Sign: sign, Exp: exp, Frac: s.u64between(loF, hiF)})
}
