package treap

import (
	randv2 "math/rand/v2"
)

// Config holds construction options for a Tree.
type Config struct {
	// seed feeds the default PCG priority source when seeded is set.
	seed   uint64
	seeded bool

	// source overrides the priority source entirely.
	source randv2.Source

	// capacity pre-sizes the node arena.
	capacity int

	// checkInvariants asserts the merge precondition and validates the whole
	// tree after every mutation. Expensive; meant for tests and debugging.
	checkInvariants bool
}

// Option mutates a Config.
type Option func(*Config)

// NewConfig creates a Config with default values and applies opts.
func NewConfig(opts ...Option) Config {
	var cfg Config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.capacity < 0 {
		cfg.capacity = 0
	}
	return cfg
}

// WithSeed makes priorities deterministic by seeding the default PCG source.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithRandSource supplies the source priorities are drawn from. It takes
// precedence over WithSeed. The tree takes ownership of the source.
func WithRandSource(src randv2.Source) Option {
	return func(c *Config) { c.source = src }
}

// WithCapacity pre-allocates room for n nodes.
func WithCapacity(n int) Option {
	return func(c *Config) { c.capacity = n }
}

// WithInvariantChecks enables debug assertions. A violated invariant panics
// with an error wrapping ErrInvariantViolation.
func WithInvariantChecks(enabled bool) Option {
	return func(c *Config) { c.checkInvariants = enabled }
}
