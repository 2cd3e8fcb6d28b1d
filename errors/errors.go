package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseSeed   Phase = "seed"   // seeding and reseeding
	PhaseSample Phase = "sample" // ranged/alphanumeric sampling
	PhaseJump   Phase = "jump"   // jump-ahead operations
	PhaseFloat  Phase = "float"  // floating-point construction
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidSeed     Kind = "invalid_seed"
	KindUnsupported     Kind = "unsupported"
	KindInvalidRange    Kind = "invalid_range"
	KindInvalidArgument Kind = "invalid_argument"
	KindEntropy         Kind = "entropy"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Engine string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Engine != "" {
		b.WriteString(" (")
		b.WriteString(e.Engine)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Engine sets the engine name
func (b *Builder) Engine(name string) *Builder {
	b.err.Engine = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Sentinels for errors.Is matching on Phase+Kind alone.
var (
	ErrInvalidSeed   = &Error{Phase: PhaseSeed, Kind: KindInvalidSeed}
	ErrUnsupported   = &Error{Phase: PhaseJump, Kind: KindUnsupported}
	ErrInvalidRange  = &Error{Phase: PhaseFloat, Kind: KindInvalidRange}
	ErrInvalidBounds = &Error{Phase: PhaseSample, Kind: KindInvalidRange}
)

// Convenience constructors for common error patterns

// InvalidSeed creates a seed rejection error
func InvalidSeed(engine, detail string) *Error {
	return &Error{
		Phase:  PhaseSeed,
		Kind:   KindInvalidSeed,
		Engine: engine,
		Detail: detail,
	}
}

// SeedLength creates a wrong-length seed error
func SeedLength(engine string, got, want int) *Error {
	return &Error{
		Phase:  PhaseSeed,
		Kind:   KindInvalidSeed,
		Engine: engine,
		Detail: fmt.Sprintf("seed length %d, engine requires %d", got, want),
		Value:  got,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(engine, op string) *Error {
	return &Error{
		Phase:  PhaseJump,
		Kind:   KindUnsupported,
		Engine: engine,
		Detail: fmt.Sprintf("%s is not defined for this generator", op),
	}
}

// InvalidRange creates an invalid bounds error for float construction
func InvalidRange(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseFloat,
		Kind:   KindInvalidRange,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// InvalidBounds creates an invalid bounds error for ranged sampling
func InvalidBounds(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseSample,
		Kind:   KindInvalidRange,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// InvalidArgument creates an invalid sampling argument error
func InvalidArgument(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseSample,
		Kind:   KindInvalidArgument,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// Entropy wraps a host entropy source failure
func Entropy(engine string, cause error) *Error {
	return &Error{
		Phase:  PhaseSeed,
		Kind:   KindEntropy,
		Engine: engine,
		Detail: "read system entropy",
		Cause:  cause,
	}
}
