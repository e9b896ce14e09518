// Package hashsearch implements a family of simple string hash functions and
// binary search over sorted sequences with two interval conventions.
//
// All functions are pure: they read their arguments, keep only call-local
// state and are safe for concurrent use.
//
// # Hashing
//
// A hash function used for bucket placement must be deterministic, cheap
// (one pass, O(1) extra space) and spread keys evenly. The four simple
// hashes accumulate one Unicode code point at a time and reduce by the
// prime Modulus (1_000_000_007):
//
//   - AddHash: sum of code points
//   - MulHash: polynomial, acc = 31*acc + c
//   - XORHash: XOR of code points, masked with Modulus
//   - RotHash: acc = (acc<<4) ^ (acc>>28) ^ c, reduced once at the end
//
// For example:
//
//	h := hashsearch.MulHash("abc") // ((97*31)+98)*31 + 99 = 96354
//
// AddHash and XORHash ignore character order, so anagrams always collide.
// Reference hashes (xxHash64, xxh3, MurmurHash3) are available through
// Algorithm for comparison, and Spread measures how any of them distribute a
// key set over buckets.
//
// # Searching
//
// SearchClosed keeps the interval [lo, hi] and SearchHalfOpen keeps
// [lo, hi). Both return the index of the target or NotFound (-1), and agree
// on input without duplicates:
//
//	s := []int{1, 3, 5, 7, 9, 11}
//	hashsearch.SearchClosed(s, 7)   // 3
//	hashsearch.SearchHalfOpen(s, 4) // NotFound
//
// The input must be sorted ascending; this is not checked. The Func variants
// search any random-access sequence through a comparison callback; the
// corpus subpackage uses them to search sorted key files in place.
//
// # Package Structure
//
//   - Hashing: hash.go (AddHash, MulHash, XORHash, RotHash), algorithm.go (Algorithm, Hasher)
//   - Searching: search.go (SearchClosed, SearchHalfOpen, Convention)
//   - Bucket analysis: spread.go, spread_options.go (Spread, Occupancy)
//   - Errors: errors/ (exported sentinels)
//   - Sorted key files: corpus/
//   - Command-line tool: cmd/hashsearch
package hashsearch
