package hashsearch

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	hserrors "github.com/tamirms/hashsearch/errors"
)

// Algorithm identifies a string hash function.
type Algorithm uint8

const (
	// AlgoAdditive sums code points (AddHash).
	AlgoAdditive Algorithm = iota

	// AlgoMultiplicative is the base-31 polynomial hash (MulHash).
	AlgoMultiplicative

	// AlgoXOR folds code points with XOR (XORHash).
	AlgoXOR

	// AlgoRotating is the shift-and-XOR hash (RotHash).
	AlgoRotating

	// AlgoXXHash64 is xxHash64 of the UTF-8 bytes, reduced mod Modulus.
	AlgoXXHash64

	// AlgoXXH3 is the low half of xxHash3-128 of the UTF-8 bytes, reduced mod Modulus.
	AlgoXXH3

	// AlgoMurmur3 is MurmurHash3 x64 (64-bit) of the UTF-8 bytes, reduced mod Modulus.
	AlgoMurmur3

	numAlgorithms
)

// HashFunc maps a key to an integer in [0, Modulus].
type HashFunc func(key string) int64

var algorithmNames = [numAlgorithms]string{
	AlgoAdditive:       "additive",
	AlgoMultiplicative: "multiplicative",
	AlgoXOR:            "xor",
	AlgoRotating:       "rotating",
	AlgoXXHash64:       "xxhash64",
	AlgoXXH3:           "xxh3",
	AlgoMurmur3:        "murmur3",
}

// String returns the algorithm name.
func (a Algorithm) String() string {
	if a < numAlgorithms {
		return algorithmNames[a]
	}
	return "unknown"
}

// ParseAlgorithm is the inverse of Algorithm.String.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if n == name {
			return Algorithm(a), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", hserrors.ErrUnknownAlgorithm, name)
}

// Algorithms returns every known algorithm in ID order.
func Algorithms() []Algorithm {
	algos := make([]Algorithm, numAlgorithms)
	for i := range algos {
		algos[i] = Algorithm(i)
	}
	return algos
}

// SimpleAlgorithms returns the four code-point hashes.
func SimpleAlgorithms() []Algorithm {
	return []Algorithm{AlgoAdditive, AlgoMultiplicative, AlgoXOR, AlgoRotating}
}

// IsOrderSensitive reports whether permuting a key's characters can change
// its hash. Additive and XOR accumulation commute, so they cannot tell
// anagrams apart.
func (a Algorithm) IsOrderSensitive() bool {
	return a != AlgoAdditive && a != AlgoXOR
}

// Hasher returns the hash function for a.
func Hasher(a Algorithm) (HashFunc, error) {
	switch a {
	case AlgoAdditive:
		return AddHash, nil
	case AlgoMultiplicative:
		return MulHash, nil
	case AlgoXOR:
		return XORHash, nil
	case AlgoRotating:
		return RotHash, nil
	case AlgoXXHash64:
		return xxhash64Hash, nil
	case AlgoXXH3:
		return xxh3Hash, nil
	case AlgoMurmur3:
		return murmur3Hash, nil
	}
	return nil, fmt.Errorf("%w: algorithm ID %d", hserrors.ErrUnknownAlgorithm, a)
}

// Hash hashes key with algorithm a.
func Hash(a Algorithm, key string) (int64, error) {
	fn, err := Hasher(a)
	if err != nil {
		return 0, err
	}
	return fn(key), nil
}

// reduce maps a 64-bit digest into [0, Modulus).
func reduce(h uint64) int64 {
	return int64(h % uint64(Modulus))
}

func xxhash64Hash(key string) int64 {
	return reduce(xxhash.Sum64String(key))
}

func xxh3Hash(key string) int64 {
	return reduce(xxh3.HashString128(key).Lo)
}

func murmur3Hash(key string) int64 {
	return reduce(murmur3.Sum64([]byte(key)))
}
