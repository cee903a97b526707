// SPDX-License-Identifier: MIT
// Package: lvnn/train
//
// options.go — functional options for Fit.
//
// Defaults:
//   • epochs      = DefaultEpochs (20000)
//   • reportEvery = DefaultReportEvery (1000); 0 reports only the last epoch
//   • logger      = stderr, standard flags
//   • onEpoch     = nil
//   • shuffle     = nil (samples visited in the given order)

package train

import (
	"io"
	"log"
	"math/rand"
	"os"
)

const (
	DefaultEpochs      = 20000
	DefaultReportEvery = 1000
)

// Option customizes Fit.
type Option func(*config)

type config struct {
	epochs      int
	reportEvery int
	logger      *log.Logger
	onEpoch     func(epoch int, loss float64) bool
	shuffle     *rand.Rand
}

func newConfig(opts ...Option) config {
	cfg := config{
		epochs:      DefaultEpochs,
		reportEvery: DefaultReportEvery,
		logger:      log.New(os.Stderr, "", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithEpochs sets the number of passes over the samples.
// Fit rejects values ≤ 0 with ErrBadEpochs.
func WithEpochs(n int) Option {
	return func(c *config) {
		c.epochs = n
	}
}

// WithReportEvery logs the epoch loss every n epochs; 0 keeps only the
// final report. Panics if n < 0.
func WithReportEvery(n int) Option {
	if n < 0 {
		panic("train: WithReportEvery(n<0)")
	}
	return func(c *config) {
		c.reportEvery = n
	}
}

// WithLogger routes progress lines to l. A nil logger silences them.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		c.logger = l
	}
}

// OnEpoch installs a hook called after every epoch with its mean loss.
// Returning false stops training after that epoch. Panics on nil.
func OnEpoch(fn func(epoch int, loss float64) bool) Option {
	if fn == nil {
		panic("train: OnEpoch(nil)")
	}
	return func(c *config) {
		c.onEpoch = fn
	}
}

// WithShuffle visits samples in a fresh random order every epoch, drawn
// from r. Panics on nil.
func WithShuffle(r *rand.Rand) Option {
	if r == nil {
		panic("train: WithShuffle(nil)")
	}
	return func(c *config) {
		c.shuffle = r
	}
}
