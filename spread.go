package hashsearch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	hserrors "github.com/tamirms/hashsearch/errors"
	intbits "github.com/tamirms/hashsearch/internal/bits"
)

// contextCheckInterval is how many keys are hashed between context checks.
const contextCheckInterval = 1024

// Report describes how one algorithm places a key set into buckets.
type Report struct {
	Algorithm Algorithm
	Reduction Reduction
	Buckets   int
	Keys      int

	// Distinct is the number of different hash values produced.
	Distinct int

	// Collisions counts keys whose hash value equals that of an earlier,
	// different key. Repeated identical keys are not collisions.
	Collisions int

	// Used is the number of non-empty buckets; MaxLoad the largest bucket.
	Used    int
	MaxLoad int

	// ChiSquare is Pearson's statistic of the bucket counts against a
	// uniform expectation of Keys/Buckets per bucket. Lower is more uniform;
	// for a good hash it stays close to Buckets-1.
	ChiSquare float64
}

// Placement returns the bucket for hash value h out of buckets, using
// h mod buckets. Returns 0 when buckets <= 0.
func Placement(h int64, buckets int) int {
	return int(intbits.Mod(h, int64(buckets)))
}

// Occupancy counts how many values land in each of buckets buckets under
// Placement. Returns nil when buckets <= 0.
func Occupancy(values []int64, buckets int) []int {
	if buckets <= 0 {
		return nil
	}
	counts := make([]int, buckets)
	for _, v := range values {
		counts[Placement(v, buckets)]++
	}
	return counts
}

// Spread hashes keys with each selected algorithm and reports the bucket
// distribution. Reports are returned in the order the algorithms were given.
//
// Spread does not store keys or resolve collisions; it only measures them.
func Spread(ctx context.Context, keys []string, opts ...SpreadOption) ([]Report, error) {
	cfg := defaultSpreadConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.buckets <= 0 {
		return nil, fmt.Errorf("%w: got %d", hserrors.ErrInvalidBuckets, cfg.buckets)
	}
	if cfg.reduction != ReduceModulo && cfg.reduction != ReduceFastRange {
		return nil, fmt.Errorf("%w: unknown reduction %d", hserrors.ErrInvalidConfig, cfg.reduction)
	}

	hashers := make([]HashFunc, len(cfg.algorithms))
	for i, a := range cfg.algorithms {
		fn, err := Hasher(a)
		if err != nil {
			return nil, err
		}
		hashers[i] = fn
	}

	workers := max(cfg.workers, 1)
	reports := make([]Report, len(cfg.algorithms))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range cfg.algorithms {
		g.Go(func() error {
			r, err := spreadOne(gctx, keys, cfg.algorithms[i], hashers[i], cfg)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// spreadOne builds the report for a single algorithm.
func spreadOne(ctx context.Context, keys []string, algo Algorithm, fn HashFunc, cfg *spreadConfig) (Report, error) {
	r := Report{
		Algorithm: algo,
		Reduction: cfg.reduction,
		Buckets:   cfg.buckets,
		Keys:      len(keys),
	}

	counts := make([]int, cfg.buckets)
	firstKey := make(map[int64]string, len(keys))
	for i, key := range keys {
		if i%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Report{}, err
			}
		}

		h := fn(key)
		if prev, ok := firstKey[h]; !ok {
			firstKey[h] = key
		} else if prev != key {
			r.Collisions++
		}
		counts[bucketFor(h, cfg)]++
	}
	r.Distinct = len(firstKey)

	expected := float64(len(keys)) / float64(cfg.buckets)
	for _, c := range counts {
		if c > 0 {
			r.Used++
		}
		r.MaxLoad = max(r.MaxLoad, c)
		if expected > 0 {
			d := float64(c) - expected
			r.ChiSquare += d * d / expected
		}
	}
	return r, nil
}

func bucketFor(h int64, cfg *spreadConfig) int {
	if cfg.reduction == ReduceFastRange {
		// Hash values lie in [0, Modulus]; XORHash can reach Modulus itself.
		return int(intbits.ScaleRange(uint64(h), uint64(Modulus)+1, uint64(cfg.buckets)))
	}
	return Placement(h, cfg.buckets)
}
