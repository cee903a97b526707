// SPDX-License-Identifier: MIT

package train

import (
	"fmt"

	"github.com/katalvlaran/lvnn/matrix"
	"gonum.org/v1/gonum/stat"
)

// historyPrealloc caps the up-front capacity of History.Losses; longer runs
// grow the slice by append.
const historyPrealloc = 1 << 14

// Model is anything trained one sample at a time: Forward caches what the
// following Update needs. *nn.Network satisfies it.
type Model interface {
	Forward(input matrix.Matrix) (*matrix.Dense, error)
	Update(target matrix.Matrix) (float64, error)
}

// Fit trains m with per-sample updates over samples for the configured
// number of epochs and returns the mean loss of every completed epoch.
//
// Implementation:
//   - Stage 1: validate samples and epochs.
//   - Stage 2: per epoch, Forward then Update every sample (optionally in a
//     shuffled order) and record the mean loss.
//   - Stage 3: log "EPOCH e, avg_loss = x" every reportEvery epochs and on the
//     last one; stop early if the OnEpoch hook returns false.
//
// On a model error the history so far is returned together with the error.
//
// Errors: ErrNoSamples, ErrBadEpochs, or a wrapped model error.
// Complexity: O(epochs · len(samples) · cost(step)).
func Fit(m Model, samples []Sample, opts ...Option) (*History, error) {
	cfg := newConfig(opts...)
	if len(samples) == 0 {
		return nil, fmt.Errorf("Fit: %w", ErrNoSamples)
	}
	if cfg.epochs <= 0 {
		return nil, fmt.Errorf("Fit: epochs=%d: %w", cfg.epochs, ErrBadEpochs)
	}

	h := &History{Losses: make([]float64, 0, min(cfg.epochs, historyPrealloc))}
	order := make([]int, len(samples))
	for i := range order {
		order[i] = i
	}
	losses := make([]float64, len(samples))

	for ep := 0; ep < cfg.epochs; ep++ {
		if cfg.shuffle != nil {
			cfg.shuffle.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		}
		for k, idx := range order {
			s := samples[idx]
			if _, err := m.Forward(s.Input); err != nil {
				return h, fmt.Errorf("Fit: epoch %d sample %d: %w", ep, idx, err)
			}
			loss, err := m.Update(s.Target)
			if err != nil {
				return h, fmt.Errorf("Fit: epoch %d sample %d: %w", ep, idx, err)
			}
			losses[k] = loss
		}

		mean := stat.Mean(losses, nil)
		h.Losses = append(h.Losses, mean)

		last := ep == cfg.epochs-1
		if last || (cfg.reportEvery > 0 && ep%cfg.reportEvery == 0) {
			cfg.logger.Printf("EPOCH %5d, avg_loss = %.10f", ep, mean)
		}
		if cfg.onEpoch != nil && !cfg.onEpoch(ep, mean) {
			if !last {
				cfg.logger.Printf("stopped after epoch %d, avg_loss = %.10f", ep, mean)
			}
			break
		}
	}

	return h, nil
}

// History records the mean loss of every completed epoch.
type History struct {
	Losses []float64
}

// Epochs returns the number of completed epochs.
func (h *History) Epochs() int { return len(h.Losses) }

// Last returns the final epoch loss, or false if no epoch completed.
func (h *History) Last() (float64, bool) {
	if len(h.Losses) == 0 {
		return 0, false
	}

	return h.Losses[len(h.Losses)-1], true
}

// EMA returns the exponential moving average of Losses:
//
//	ema[0] = L[0]
//	ema[i] = α·L[i] + (1−α)·ema[i−1]
//
// Errors: ErrBadAlpha unless 0 < α ≤ 1.
func (h *History) EMA(alpha float64) ([]float64, error) {
	if !(alpha > 0 && alpha <= 1) {
		return nil, fmt.Errorf("History.EMA(%v): %w", alpha, ErrBadAlpha)
	}
	out := make([]float64, len(h.Losses))
	for i, l := range h.Losses {
		if i == 0 {
			out[i] = l
			continue
		}
		out[i] = alpha*l + (1-alpha)*out[i-1]
	}

	return out, nil
}
