package hashsearch

// defaultBuckets is prime so the default report does not itself introduce
// periodic clustering.
const defaultBuckets = 97

// Reduction selects how a hash value is mapped onto a bucket.
type Reduction uint8

const (
	// ReduceModulo places h into bucket h mod buckets.
	ReduceModulo Reduction = iota

	// ReduceFastRange scales [0, Modulus] linearly onto the buckets
	// (multiply-shift style). Ordered inputs stay ordered, so keys with
	// nearby hash values share a bucket.
	ReduceFastRange
)

// String returns the reduction name.
func (r Reduction) String() string {
	switch r {
	case ReduceModulo:
		return "modulo"
	case ReduceFastRange:
		return "fastrange"
	default:
		return "unknown"
	}
}

// SpreadOption is a functional option for configuring Spread.
type SpreadOption func(*spreadConfig)

type spreadConfig struct {
	buckets    int
	workers    int
	algorithms []Algorithm
	reduction  Reduction
}

func defaultSpreadConfig() *spreadConfig {
	return &spreadConfig{
		buckets:    defaultBuckets,
		workers:    1,
		algorithms: Algorithms(),
	}
}

// WithBuckets sets the number of buckets keys are placed into.
func WithBuckets(n int) SpreadOption {
	return func(c *spreadConfig) {
		c.buckets = n
	}
}

// WithWorkers sets how many algorithms are evaluated concurrently.
// Values below 1 mean a single worker.
func WithWorkers(n int) SpreadOption {
	return func(c *spreadConfig) {
		c.workers = n
	}
}

// WithAlgorithms restricts the report to the given algorithms.
// The slice is copied, so the caller can reuse it after this call.
func WithAlgorithms(algos ...Algorithm) SpreadOption {
	return func(c *spreadConfig) {
		c.algorithms = append([]Algorithm(nil), algos...)
	}
}

// WithReduction sets how hash values are mapped to buckets.
// Default is ReduceModulo.
func WithReduction(r Reduction) SpreadOption {
	return func(c *spreadConfig) {
		c.reduction = r
	}
}
