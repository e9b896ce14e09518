package hashsearch

import (
	"errors"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	hserrors "github.com/tamirms/hashsearch/errors"
)

func TestAlgorithmString(t *testing.T) {
	want := map[Algorithm]string{
		AlgoAdditive:       "additive",
		AlgoMultiplicative: "multiplicative",
		AlgoXOR:            "xor",
		AlgoRotating:       "rotating",
		AlgoXXHash64:       "xxhash64",
		AlgoXXH3:           "xxh3",
		AlgoMurmur3:        "murmur3",
		Algorithm(200):     "unknown",
	}
	for a, name := range want {
		if got := a.String(); got != name {
			t.Errorf("Algorithm(%d).String() = %q, want %q", uint8(a), got, name)
		}
	}
}

func TestParseAlgorithmRoundTrip(t *testing.T) {
	for _, a := range Algorithms() {
		got, err := ParseAlgorithm(a.String())
		if err != nil {
			t.Fatalf("ParseAlgorithm(%q): %v", a.String(), err)
		}
		if got != a {
			t.Errorf("ParseAlgorithm(%q) = %v, want %v", a.String(), got, a)
		}
	}

	for _, name := range []string{"", "sha256", "XOR", "unknown"} {
		if _, err := ParseAlgorithm(name); !errors.Is(err, hserrors.ErrUnknownAlgorithm) {
			t.Errorf("ParseAlgorithm(%q) error = %v, want ErrUnknownAlgorithm", name, err)
		}
	}
}

func TestHasherUnknown(t *testing.T) {
	if _, err := Hasher(numAlgorithms); !errors.Is(err, hserrors.ErrUnknownAlgorithm) {
		t.Errorf("Hasher(numAlgorithms) error = %v, want ErrUnknownAlgorithm", err)
	}
	if _, err := Hash(Algorithm(99), "abc"); !errors.Is(err, hserrors.ErrUnknownAlgorithm) {
		t.Errorf("Hash(99) error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestHashDispatch(t *testing.T) {
	const key = "hello, 世界"
	want := map[Algorithm]int64{
		AlgoAdditive:       AddHash(key),
		AlgoMultiplicative: MulHash(key),
		AlgoXOR:            XORHash(key),
		AlgoRotating:       RotHash(key),
		AlgoXXHash64:       int64(xxhash.Sum64String(key) % uint64(Modulus)),
		AlgoXXH3:           int64(xxh3.HashString128(key).Lo % uint64(Modulus)),
		AlgoMurmur3:        int64(murmur3.Sum64([]byte(key)) % uint64(Modulus)),
	}
	for a, w := range want {
		got, err := Hash(a, key)
		if err != nil {
			t.Fatalf("Hash(%s): %v", a, err)
		}
		if got != w {
			t.Errorf("Hash(%s, %q) = %d, want %d", a, key, got, w)
		}
	}
}

func TestAlgorithmSets(t *testing.T) {
	all := Algorithms()
	if len(all) != int(numAlgorithms) {
		t.Fatalf("Algorithms() has %d entries, want %d", len(all), numAlgorithms)
	}
	for i, a := range all {
		if int(a) != i {
			t.Errorf("Algorithms()[%d] = %v, want ID order", i, a)
		}
	}

	simple := SimpleAlgorithms()
	if len(simple) != 4 {
		t.Fatalf("SimpleAlgorithms() has %d entries, want 4", len(simple))
	}
	for _, a := range simple {
		if a >= AlgoXXHash64 {
			t.Errorf("SimpleAlgorithms() contains reference algorithm %s", a)
		}
	}

	// Returned slices are fresh copies.
	all[0] = AlgoMurmur3
	if Algorithms()[0] != AlgoAdditive {
		t.Error("Algorithms() shares its backing array")
	}
}
