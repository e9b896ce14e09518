// Package bits provides range-reduction primitives for bucket placement.
package bits

import "math/bits"

// Mod returns h mod n in [0, n), also for negative h.
// Returns 0 when n <= 0.
func Mod(h int64, n int64) int64 {
	if n <= 0 {
		return 0
	}
	r := h % n
	if r < 0 {
		r += n
	}
	return r
}

// ScaleRange maps h in [0, m) onto [0, n) by computing floor(h*n/m) with a
// 128-bit intermediate. It is the "fastrange" multiply-shift generalised to a
// source range that is not a power of two: order is preserved and every
// output bucket covers an equal slice of the input range. Values of h at or
// above m are clamped to n-1. Returns 0 when m or n is 0.
func ScaleRange(h, m, n uint64) uint64 {
	if m == 0 || n == 0 {
		return 0
	}
	if h >= m {
		return n - 1
	}
	hi, lo := bits.Mul64(h, n)
	q, _ := bits.Div64(hi, lo, m)
	return q
}
