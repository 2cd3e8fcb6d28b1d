package sample

import "github.com/wippyai/randcore/errors"

const (
	alnumDigits = "0123456789"
	alnumUpper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alnumLower  = "abcdefghijklmnopqrstuvwxyz"
)

func alnumSet(digits, upper, lower bool, extra []rune) ([]rune, error) {
	set := make([]rune, 0, 62+len(extra))
	if digits {
		set = append(set, []rune(alnumDigits)...)
	}
	if upper {
		set = append(set, []rune(alnumUpper)...)
	}
	if lower {
		set = append(set, []rune(alnumLower)...)
	}
	set = append(set, extra...)
	if len(set) == 0 {
		return nil, errors.InvalidArgument("empty character set")
	}
	return set, nil
}

// pick indexes the set with the rejection discipline at the narrowest
// width that covers its cardinality. Caller holds the lock.
func (s *Source) pick(set []rune) rune {
	r := uint64(len(set))
	if r <= 1<<8 {
		draw := func() uint64 { return uint64(s.draw8()) }
		return set[rejectNarrow(8, r, draw)]
	}
	draw := func() uint64 { return uint64(s.draw16()) }
	return set[rejectNarrow(16, r, draw)]
}

// Alnum draws one character from the union of the selected subsets and
// the extra symbols. An empty union is rejected.
func (s *Source) Alnum(digits, upper, lower bool, extra []rune) (rune, error) {
	set, err := alnumSet(digits, upper, lower, extra)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pick(set), nil
}

// AlnumString draws n characters with the same set rules as Alnum.
func (s *Source) AlnumString(n int, digits, upper, lower bool, extra []rune) (string, error) {
	if n < 0 {
		return "", errors.InvalidArgument("negative length %d", n)
	}
	set, err := alnumSet(digits, upper, lower, extra)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]rune, n)
	for i := range out {
		out[i] = s.pick(set)
	}
	return string(out), nil
}
