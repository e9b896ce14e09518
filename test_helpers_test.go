package hashsearch

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

// newTestRNG returns a generator seeded from the test name, so every test
// gets its own reproducible stream.
func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// keyAlphabet mixes ASCII, Latin-1, CJK and astral-plane code points.
var keyAlphabet = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 _-éüß中文字🙂")

// randomKey returns a key of up to maxLen code points drawn from keyAlphabet.
func randomKey(rng *rand.Rand, maxLen int) string {
	n := rng.IntN(maxLen + 1)
	var sb strings.Builder
	for range n {
		sb.WriteRune(keyAlphabet[rng.IntN(len(keyAlphabet))])
	}
	return sb.String()
}

// generateRandomKeys creates n deterministic pseudo-random keys.
func generateRandomKeys(rng *rand.Rand, n, maxLen int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = randomKey(rng, maxLen)
	}
	return keys
}

// shuffleKey returns a random permutation of key's code points.
func shuffleKey(rng *rand.Rand, key string) string {
	runes := []rune(key)
	rng.Shuffle(len(runes), func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})
	return string(runes)
}

// permutations returns every ordering of key's code points.
func permutations(key string) []string {
	runes := []rune(key)
	var out []string
	var permute func(k int)
	permute = func(k int) {
		if k == len(runes) {
			out = append(out, string(runes))
			return
		}
		for i := k; i < len(runes); i++ {
			runes[k], runes[i] = runes[i], runes[k]
			permute(k + 1)
			runes[k], runes[i] = runes[i], runes[k]
		}
	}
	permute(0)
	return out
}

// sortedUniqueInts returns n distinct ascending ints spaced by random gaps
// of at least 2, so odd offsets between neighbours are guaranteed absent.
func sortedUniqueInts(rng *rand.Rand, n int) []int {
	s := make([]int, n)
	v := rng.IntN(100) - 50
	for i := range s {
		v += 2 + 2*rng.IntN(5)
		s[i] = v
	}
	return s
}

// sortedWithDuplicates returns n ascending ints drawn from a small range.
func sortedWithDuplicates(rng *rand.Rand, n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = rng.IntN(n/4 + 1)
	}
	slices.Sort(s)
	return s
}
