package list

import (
	"errors"
	"math/rand"
)

// Sentinel errors returned by the list package.
var (
	// ErrCycle indicates that a chain loops back on itself.
	ErrCycle = errors.New("list: cycle detected")
)

// Node is one element of a singly linked list.
type Node struct {
	Val  int   // payload
	Next *Node // successor; nil terminates the chain
}

// Defaults for the random generators.
const (
	defaultSeed = 1
	defaultLo   = 0
	defaultHi   = 100
)

// Option customizes RandomSorted and RandomLists.
type Option func(*genConfig)

// genConfig collects generator settings. Values are drawn from [lo, hi].
type genConfig struct {
	rng *rand.Rand
	lo  int
	hi  int
}

func newGenConfig(opts []Option) genConfig {
	cfg := genConfig{lo: defaultLo, hi: defaultHi}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// WithSeed draws values from a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an explicit RNG between calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("list: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithRange bounds generated values to [lo, hi]. Panics if lo > hi.
func WithRange(lo, hi int) Option {
	if lo > hi {
		panic("list: WithRange requires lo <= hi")
	}
	return func(c *genConfig) {
		c.lo, c.hi = lo, hi
	}
}
