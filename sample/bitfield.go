package sample

import "math"

// IEEE-754 double layout.
const (
	fracBits = 52
	fracMask = (uint64(1) << fracBits) - 1
	expBits  = 11
	expMask  = (uint64(1) << expBits) - 1
	maxExp   = expMask // all-ones field, NaN/Inf
)

// BitField is a double decomposed into its sign, biased exponent and
// fraction fields.
type BitField struct {
	Sign uint64 // 0 or 1
	Exp  uint64 // biased, 11 bits
	Frac uint64 // 52 bits
}

// Decompose splits f into its bit fields.
func Decompose(f float64) BitField {
	bits := math.Float64bits(f)
	return BitField{
		Sign: bits >> 63,
		Exp:  (bits >> fracBits) & expMask,
		Frac: bits & fracMask,
	}
}

// Assemble builds the double with the given fields.
func Assemble(b BitField) float64 {
	bits := b.Sign<<63 | (b.Exp&expMask)<<fracBits | b.Frac&fracMask
	return math.Float64frombits(bits)
}

// Subnormal reports whether f has a zero exponent field. Zero itself
// counts: for bound checking it lives on the subnormal side of the
// normal/subnormal boundary.
func Subnormal(f float64) bool {
	return Decompose(f).Exp == 0
}
