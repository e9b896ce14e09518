package bits

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

func TestModNonNegative(t *testing.T) {
	tests := []struct {
		h, n, want int64
	}{
		{0, 7, 0},
		{13, 7, 6},
		{-1, 7, 6},
		{-14, 7, 0},
		{math.MinInt64, 7, 6},
		{math.MaxInt64, 1_000_000_007, math.MaxInt64 % 1_000_000_007},
		{42, 0, 0},
		{42, -3, 0},
	}
	for _, tt := range tests {
		if got := Mod(tt.h, tt.n); got != tt.want {
			t.Errorf("Mod(%d, %d) = %d, want %d", tt.h, tt.n, got, tt.want)
		}
	}
}

// TestScaleRangeMonotonicity verifies that for fixed m and n,
// h1 < h2 implies ScaleRange(h1) <= ScaleRange(h2).
func TestScaleRangeMonotonicity(t *testing.T) {
	rng := newTestRNG(t)
	const iterations = 10000

	for i := 0; i < iterations; i++ {
		m := rng.Uint64N(math.MaxUint64) + 1
		n := rng.Uint64N(math.MaxUint32) + 1
		h1 := rng.Uint64N(m)
		h2 := rng.Uint64N(m)
		if h1 > h2 {
			h1, h2 = h2, h1
		}

		r1 := ScaleRange(h1, m, n)
		r2 := ScaleRange(h2, m, n)
		if r1 > r2 {
			t.Fatalf("iter %d: monotonicity violated: ScaleRange(%d, %d, %d)=%d > ScaleRange(%d, %d, %d)=%d",
				i, h1, m, n, r1, h2, m, n, r2)
		}
	}
}

// TestScaleRangeRange verifies that the result is always in [0, n).
func TestScaleRangeRange(t *testing.T) {
	rng := newTestRNG(t)
	const iterations = 10000

	for i := 0; i < iterations; i++ {
		m := rng.Uint64N(math.MaxUint64) + 1
		n := rng.Uint64() | 1
		h := rng.Uint64N(m)

		if got := ScaleRange(h, m, n); got >= n {
			t.Fatalf("iter %d: ScaleRange(%d, %d, %d)=%d >= %d", i, h, m, n, got, n)
		}
	}
}

// TestScaleRangeEvenSlices checks that scaling [0, m) onto n buckets where n
// divides m puts exactly m/n inputs in every bucket.
func TestScaleRangeEvenSlices(t *testing.T) {
	const m, n = 1000, 8
	counts := make([]int, n)
	for h := uint64(0); h < m; h++ {
		counts[ScaleRange(h, m, n)]++
	}
	for b, c := range counts {
		if c != m/n {
			t.Errorf("bucket %d: got %d inputs, want %d", b, c, m/n)
		}
	}
}

func TestScaleRangeEdgeCases(t *testing.T) {
	if got := ScaleRange(5, 0, 10); got != 0 {
		t.Errorf("ScaleRange(5, 0, 10) = %d, want 0", got)
	}
	if got := ScaleRange(5, 10, 0); got != 0 {
		t.Errorf("ScaleRange(5, 10, 0) = %d, want 0", got)
	}
	if got := ScaleRange(10, 10, 4); got != 3 {
		t.Errorf("ScaleRange(10, 10, 4) = %d, want 3 (clamped)", got)
	}
	if got := ScaleRange(math.MaxUint64-1, math.MaxUint64, math.MaxUint64); got != math.MaxUint64-1 {
		t.Errorf("ScaleRange(MaxUint64-1, MaxUint64, MaxUint64) = %d, want %d", got, uint64(math.MaxUint64-1))
	}
	for n := uint64(1); n <= 100; n++ {
		if got := ScaleRange(0, 1_000_000_008, n); got != 0 {
			t.Errorf("ScaleRange(0, m, %d) = %d, want 0", n, got)
		}
		if got := ScaleRange(1_000_000_007, 1_000_000_008, n); got != n-1 {
			t.Errorf("ScaleRange(m-1, m, %d) = %d, want %d", n, got, n-1)
		}
	}
}
