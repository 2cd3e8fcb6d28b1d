package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseSeed,
				Kind:   KindInvalidSeed,
				Engine: "xoshiro256**",
				Detail: "seed must not be all zero",
			},
			contains: []string{"[seed]", "invalid_seed", "xoshiro256**", "seed must not be all zero"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseJump,
				Kind:  KindUnsupported,
			},
			contains: []string{"[jump]", "unsupported"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseSeed,
				Kind:   KindEntropy,
				Detail: "read system entropy",
				Cause:  errors.New("short read"),
			},
			contains: []string{"[seed]", "entropy", "read system entropy", "caused by", "short read"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseSeed,
		Kind:  KindEntropy,
		Cause: cause,
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestError_Is(t *testing.T) {
	err := InvalidSeed("mwc128", "zero seed")
	if !errors.Is(err, ErrInvalidSeed) {
		t.Error("InvalidSeed should match ErrInvalidSeed")
	}
	if errors.Is(err, ErrUnsupported) {
		t.Error("InvalidSeed should not match ErrUnsupported")
	}

	if !errors.Is(Unsupported("splitmix64", "jump"), ErrUnsupported) {
		t.Error("Unsupported should match ErrUnsupported")
	}
	if !errors.Is(InvalidRange("NaN bound"), ErrInvalidRange) {
		t.Error("InvalidRange should match ErrInvalidRange")
	}
	if !errors.Is(InvalidBounds("min above max"), ErrInvalidBounds) {
		t.Error("InvalidBounds should match ErrInvalidBounds")
	}
	if errors.Is(InvalidBounds("min above max"), ErrInvalidRange) {
		t.Error("InvalidBounds should not match the float-phase sentinel")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("inner")
	err := New(PhaseSample, KindInvalidArgument).
		Engine("pcg64").
		Value(42).
		Detail("bad width %d", 42).
		Cause(cause).
		Build()

	if err.Phase != PhaseSample || err.Kind != KindInvalidArgument {
		t.Errorf("builder lost phase/kind: %v/%v", err.Phase, err.Kind)
	}
	if err.Engine != "pcg64" {
		t.Errorf("builder lost engine: %q", err.Engine)
	}
	if err.Detail != "bad width 42" {
		t.Errorf("builder detail = %q", err.Detail)
	}
	if err.Value != 42 || err.Cause != cause {
		t.Error("builder lost value or cause")
	}
}

func TestSeedLength(t *testing.T) {
	err := SeedLength("xoshiro256+", 3, 4)
	if !strings.Contains(err.Error(), "seed length 3") {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, ErrInvalidSeed) {
		t.Error("SeedLength should match ErrInvalidSeed")
	}
}
