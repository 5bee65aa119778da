package hat

import "math/rand"

// Option configures a Hat or an Experiment.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// newConfig applies opts in order; fallback is used when no option set a
// generator, and a default-seeded one when fallback is nil too.
func newConfig(opts []Option, fallback *rand.Rand) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = fallback
	}
	if c.rng == nil {
		c.rng = rngFromSeed(0)
	}
	return c
}

// WithSeed draws from a new generator seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand draws from r. r is not safe for concurrent use, so do not share
// it between goroutines. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("hat: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}
