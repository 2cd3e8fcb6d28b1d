// Package wideint implements the little fixed-width unsigned arithmetic
// needed by the multiply-with-carry jump computations. Values are slices
// of 64-bit limbs in little-endian order; every function requires its
// operands to share one length. Nothing here is constant-time and nothing
// here needs to be.
package wideint

import "math/bits"

// Cmp compares a and b, returning -1, 0 or 1.
func Cmp(a, b []uint64) int {
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Add sets dst += x and returns the outgoing carry.
func Add(dst, x []uint64) uint64 {
	var carry uint64
	for i := range dst {
		dst[i], carry = bits.Add64(dst[i], x[i], carry)
	}
	return carry
}

// Sub sets dst -= x and returns the outgoing borrow.
func Sub(dst, x []uint64) uint64 {
	var borrow uint64
	for i := range dst {
		dst[i], borrow = bits.Sub64(dst[i], x[i], borrow)
	}
	return borrow
}

// AddMod sets dst = (dst + x) mod m. Both inputs must already be below m.
func AddMod(dst, x, m []uint64) {
	carry := Add(dst, x)
	if carry != 0 || Cmp(dst, m) >= 0 {
		Sub(dst, m)
	}
}

// SubMod sets dst = (dst - x) mod m. Both inputs must already be below m.
func SubMod(dst, x, m []uint64) {
	if Sub(dst, x) != 0 {
		Add(dst, m)
	}
}

// Reduce brings dst below m by repeated subtraction. The caller keeps the
// excess small; the jump code never exceeds a couple of multiples of m.
func Reduce(dst, m []uint64) {
	for Cmp(dst, m) >= 0 {
		Sub(dst, m)
	}
}

// MulMod returns a*b mod m by binary double-and-add, walking the bits of b
// from the top. Both inputs must already be below m.
func MulMod(a, b, m []uint64) []uint64 {
	r := make([]uint64, len(a))
	for i := len(b) - 1; i >= 0; i-- {
		w := b[i]
		for bit := 63; bit >= 0; bit-- {
			AddMod(r, r, m)
			if w&(1<<uint(bit)) != 0 {
				AddMod(r, a, m)
			}
		}
	}
	return r
}
