package sampler

import (
	"errors"
	"math/rand"
)

// Sentinel errors for sampler.Sample.
var (
	// ErrInvalidRadius indicates a non-positive minimum-distance radius.
	ErrInvalidRadius = errors.New("sampler: radius must be positive")
	// ErrInvalidBounds indicates a non-positive length or width.
	ErrInvalidBounds = errors.New("sampler: length and width must be positive")
)

// defaultResampleLimit is Bridson's k: the number of candidate points
// tried around each active point before it is retired.
const defaultResampleLimit = 30

// Options configures a single Sample call.
type Options struct {
	resampleLimit int
	rng           *rand.Rand
}

// Option mutates Options before a Sample call.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		resampleLimit: defaultResampleLimit,
		rng:           rand.New(rand.NewSource(1)),
	}
}

// WithResampleLimit overrides Bridson's k (candidate draws per active
// point before it is retired). Panics if k <= 0.
func WithResampleLimit(k int) Option {
	if k <= 0 {
		panic("sampler: WithResampleLimit(k<=0)")
	}
	return func(o *Options) { o.resampleLimit = k }
}

// WithRand provides an explicit RNG source, letting a caller compose
// sampler with its own seeding policy. Panics on nil, matching the
// fail-fast convention for option constructors that take required
// pointers.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}
	return func(o *Options) { o.rng = r }
}

// WithSeed creates a new deterministic *rand.Rand from seed. Use in
// tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}
