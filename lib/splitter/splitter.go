// Package splitter decomposes a float32 into the sign/integer/fraction
// triple the fixed-point codec packs.
//
// This is the one place the codec's single precision-divider rule lives
// (see the per-package documentation for lib/bitpack): Divider is called
// from both the bulk and random-access paths, so there is one scale factor
// for the fractional part, not two.
package splitter

import "math"

// Digits returns the number of decimal digits needed to represent a
// k-bit non-negative integer, i.e. floor(log10(2^k)) + 1. Digits(0) is 1
// by definition (a single bit of zero width still needs one digit of
// headroom for the fractional scale factor).
func Digits(k uint8) int {
	if k == 0 {
		return 1
	}
	return int(math.Floor(math.Log10(math.Ldexp(1, int(k))))) + 1
}

// Divider returns the decimal scale factor D = 10^Digits(p) applied to a
// value's fractional part so it fits in p bits. Used identically by every
// encode and decode path in lib/bitpack.
func Divider(p uint8) uint32 {
	d := uint32(1)
	for i := 0; i < Digits(p); i++ {
		d *= 10
	}
	return d
}

// Split decomposes x into its sign, integer magnitude and scaled fraction.
// divider is the value returned by Divider for the caller's chosen
// precision width. The caller is responsible for checking that m and f fit
// within their allotted bit widths (Split itself never fails); it is a
// precondition violation, not a Split error, if the caller's M/P are too
// small for the input.
func Split(x float32, divider uint32) (m, f uint32, negative bool) {
	negative = x < 0
	ax := math.Abs(float64(x))
	whole := math.Floor(ax)
	frac := ax - whole
	m = uint32(whole)
	f = uint32(math.Round(frac * float64(divider)))
	return m, f, negative
}

// Join reconstructs a float32 from the sign/integer/fraction triple using
// the same divider Split used to produce f.
func Join(m, f uint32, negative bool, divider uint32) float32 {
	v := float64(m) + float64(f)/float64(divider)
	if negative {
		v = -v
	}
	return float32(v)
}
