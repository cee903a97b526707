// SPDX-License-Identifier: MIT
// Package: lvnn/nn
//
// options.go — functional options and deterministic defaults for New.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Network methods themselves MUST NOT panic.
//   • Determinism is explicit: seed via WithSeed or WithRand. Without either,
//     New draws a time-seeded source.
//
// Defaults:
//   • rng       = time-seeded *rand.Rand
//   • optimizer = GradientDescent{}
//   • reluBias  = DefaultReLUBias (0.001)
//   • logger    = stderr, prefix "nn: "

package nn

import (
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"time"
)

// DefaultReLUBias is the constant every bias of a ReLU layer starts at.
// A small positive value keeps units active on the first pass.
const DefaultReLUBias = 0.001

// Option customizes a Network during New.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	optimizer Optimizer
	reluBias  float64
	logger    *log.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		optimizer: GradientDescent{},
		reluBias:  DefaultReLUBias,
		logger:    log.New(os.Stderr, "nn: ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// WithRand supplies the random source used for weight initialization.
// The Network keeps drawing from r on every AddLayer. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("nn: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed makes weight initialization reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOptimizer replaces the default GradientDescent step rule.
// Panics on nil.
func WithOptimizer(o Optimizer) Option {
	if o == nil {
		panic("nn: WithOptimizer(nil)")
	}
	return func(c *config) {
		c.optimizer = o
	}
}

// WithMomentum is shorthand for WithOptimizer(Momentum{Beta: beta}).
// Panics unless 0 <= beta < 1.
func WithMomentum(beta float64) Option {
	if math.IsNaN(beta) || beta < 0 || beta >= 1 {
		panic("nn: WithMomentum(beta outside [0,1))")
	}
	return func(c *config) {
		c.optimizer = Momentum{Beta: beta}
	}
}

// WithReLUBias overrides DefaultReLUBias. Panics on NaN or ±Inf.
func WithReLUBias(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("nn: WithReLUBias(non-finite)")
	}
	return func(c *config) {
		c.reluBias = v
	}
}

// WithLogger routes training diagnostics to l. A nil logger silences them.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		c.logger = l
	}
}
