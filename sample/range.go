package sample

import "github.com/wippyai/randcore/errors"

// rejectNarrow draws width-bit values until one falls below the bias
// threshold, then maps it into [0, r). Caller holds the lock. r must be
// at least 1 and at most 1<<width.
func rejectNarrow(width uint, r uint64, draw func() uint64) uint64 {
	span := uint64(1) << width
	if r == span {
		return draw()
	}
	threshold := span - span%r
	for {
		if v := draw(); v < threshold {
			return v % r
		}
	}
}

// reject64 is the full-width case: the threshold 2^64 - (2^64 mod r) is
// evaluated without leaving uint64.
func reject64(r uint64, draw func() uint64) uint64 {
	m := -r % r // 2^64 mod r
	limit := ^uint64(0) - m
	for {
		if v := draw(); v <= limit {
			return v % r
		}
	}
}

// Uint64Range draws uniformly from the closed range [min, max].
func (s *Source) Uint64Range(min, max uint64) (uint64, error) {
	if min > max {
		return 0, errors.InvalidBounds("range [%d, %d] has min above max", min, max)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if min == 0 && max == ^uint64(0) {
		return s.raw64(), nil
	}
	r := max - min + 1
	return min + reject64(r, s.raw64), nil
}

// Uint32Range draws uniformly from the closed range [min, max] using the
// banked 32-bit stream.
func (s *Source) Uint32Range(min, max uint32) (uint32, error) {
	if min > max {
		return 0, errors.InvalidBounds("range [%d, %d] has min above max", min, max)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := uint64(max) - uint64(min) + 1
	draw := func() uint64 { return uint64(s.draw32()) }
	return min + uint32(rejectNarrow(32, r, draw)), nil
}

// Uint16Range draws uniformly from the closed range [min, max] using the
// banked 16-bit stream.
func (s *Source) Uint16Range(min, max uint16) (uint16, error) {
	if min > max {
		return 0, errors.InvalidBounds("range [%d, %d] has min above max", min, max)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := uint64(max) - uint64(min) + 1
	draw := func() uint64 { return uint64(s.draw16()) }
	return min + uint16(rejectNarrow(16, r, draw)), nil
}

// Uint8Range draws uniformly from the closed range [min, max] using the
// banked byte stream.
func (s *Source) Uint8Range(min, max uint8) (uint8, error) {
	if min > max {
		return 0, errors.InvalidBounds("range [%d, %d] has min above max", min, max)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := uint64(max) - uint64(min) + 1
	draw := func() uint64 { return uint64(s.draw8()) }
	return min + uint8(rejectNarrow(8, r, draw)), nil
}

// Int64Range draws uniformly from the closed signed range [min, max].
func (s *Source) Int64Range(min, max int64) (int64, error) {
	if min > max {
		return 0, errors.InvalidBounds("range [%d, %d] has min above max", min, max)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := uint64(max) - uint64(min) + 1
	if r == 0 {
		return int64(s.raw64()), nil
	}
	return int64(uint64(min) + reject64(r, s.raw64)), nil
}

// Int32Range draws uniformly from the closed signed range [min, max]
// using the banked 32-bit stream.
func (s *Source) Int32Range(min, max int32) (int32, error) {
	if min > max {
		return 0, errors.InvalidBounds("range [%d, %d] has min above max", min, max)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := uint64(int64(max)-int64(min)) + 1
	draw := func() uint64 { return uint64(s.draw32()) }
	return int32(uint32(min) + uint32(rejectNarrow(32, r, draw))), nil
}

// Int16Range draws uniformly from the closed signed range [min, max]
// using the banked 16-bit stream.
func (s *Source) Int16Range(min, max int16) (int16, error) {
	if min > max {
		return 0, errors.InvalidBounds("range [%d, %d] has min above max", min, max)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := uint64(int64(max)-int64(min)) + 1
	draw := func() uint64 { return uint64(s.draw16()) }
	return int16(uint16(min) + uint16(rejectNarrow(16, r, draw))), nil
}

// Int8Range draws uniformly from the closed signed range [min, max]
// using the banked byte stream.
func (s *Source) Int8Range(min, max int8) (int8, error) {
	if min > max {
		return 0, errors.InvalidBounds("range [%d, %d] has min above max", min, max)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := uint64(int64(max)-int64(min)) + 1
	draw := func() uint64 { return uint64(s.draw8()) }
	return int8(uint8(min) + uint8(rejectNarrow(8, r, draw))), nil
}
