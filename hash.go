package hashsearch

import intbits "github.com/tamirms/hashsearch/internal/bits"

// Modulus bounds the output of the simple hash family. It is prime, so keys
// that follow an arithmetic progression do not collapse onto a small set of
// residues unless the step is a multiple of Modulus itself.
const Modulus int64 = 1_000_000_007

// mulFactor is the multiplier of the polynomial (multiplicative) hash.
const mulFactor = 31

// Every function below consumes the key one Unicode code point at a time
// (range over string). Invalid UTF-8 bytes decode to U+FFFD. The additive
// and multiplicative accumulators are reduced mod Modulus after each step,
// which keeps them below 2^32 and yields the same result as a single final
// reduction. The rotating accumulator is not: shift and XOR do not commute
// with mod, so it runs in wrapping int64 and is reduced once at the end.

// AddHash sums the code points of key mod Modulus.
//
// The sum is commutative: every permutation of the same characters hashes to
// the same value.
func AddHash(key string) int64 {
	var acc int64
	for _, r := range key {
		acc = (acc + int64(r)) % Modulus
	}
	return acc
}

// MulHash is the polynomial hash acc = 31*acc + c, mod Modulus.
func MulHash(key string) int64 {
	var acc int64
	for _, r := range key {
		acc = (mulFactor*acc + int64(r)) % Modulus
	}
	return acc
}

// XORHash folds the code points together with XOR and masks the result with
// a bitwise AND against Modulus.
//
// The AND (not a modulo) is intentional and kept as is: the output is a
// subset of Modulus's set bits, so it is bounded by Modulus but many values
// in [0, Modulus) are unreachable. Like AddHash it ignores character order.
func XORHash(key string) int64 {
	var acc int64
	for _, r := range key {
		acc ^= int64(r)
	}
	return acc & Modulus
}

// RotHash mixes each code point into a rotated accumulator:
// acc = (acc << 4) ^ (acc >> 28) ^ c, then acc mod Modulus.
//
// The accumulator wraps at 64 bits and can go negative on long keys; the
// final reduction still lands in [0, Modulus).
func RotHash(key string) int64 {
	var acc int64
	for _, r := range key {
		acc = (acc << 4) ^ (acc >> 28) ^ int64(r)
	}
	return intbits.Mod(acc, Modulus)
}
