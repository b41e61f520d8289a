package taskgen

import "math/rand/v2"

// Generator yields an unbounded sequence of tasks. Implementations own their
// random source and are not safe for concurrent use.
type Generator[T Number] interface {
	// Next returns a new task. It never blocks and never fails.
	Next() Task[T]
}

// DefaultMaxAttempts is the rejection-sampling cap used unless overridden.
const DefaultMaxAttempts = 10000

type options struct {
	src         rand.Source
	maxAttempts int
}

// Option configures a generator.
type Option func(*options)

// WithSource sets the random source. The generator takes exclusive use of it.
func WithSource(src rand.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithSeed uses a PCG source seeded with seed, for reproducible sequences.
func WithSeed(seed uint64) Option {
	return WithSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// WithMaxAttempts caps rejection sampling before the fallback sampler runs.
// Values below 1 keep the default.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return o
}
