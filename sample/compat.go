package sample

import "github.com/wippyai/randcore/errors"

// System.Random-style surface, expressed entirely through the sampling
// layer so it shares the bank and rejection discipline.

// Next returns a non-negative value below 2^31-1.
func (s *Source) Next() int {
	v, _ := s.Int32Range(0, 1<<31-2)
	return int(v)
}

// NextMax returns a non-negative value below max. max must be positive;
// NextMax(0) is defined as 0 to match the conventional contract.
func (s *Source) NextMax(max int) (int, error) {
	if max < 0 {
		return 0, errors.InvalidBounds("maximum %d is negative", max)
	}
	if max == 0 {
		return 0, nil
	}
	v, err := s.Int64Range(0, int64(max)-1)
	return int(v), err
}

// NextRange returns a value in the half-open range [min, max). min == max
// returns min.
func (s *Source) NextRange(min, max int) (int, error) {
	if min > max {
		return 0, errors.InvalidBounds("range [%d, %d) has min above max", min, max)
	}
	if min == max {
		return min, nil
	}
	v, err := s.Int64Range(int64(min), int64(max)-1)
	return int(v), err
}

// NextFloat64 returns a half-open [0, 1) double.
func (s *Source) NextFloat64() float64 {
	return s.Float64()
}
