// SPDX-License-Identifier: MIT
// Package: lvnn/train
//
// errors.go — sentinel errors for datasets, the training loop and evaluation.
//
// Errors from the model itself (nn.ErrNoForwardPass, shape mismatches) are
// wrapped with epoch/sample context and passed through unchanged.

package train

import "errors"

// ErrBadBits indicates a decoder width outside [1, MaxBits].
var ErrBadBits = errors.New("train: bits out of range")

// ErrNoSamples indicates an empty sample set.
var ErrNoSamples = errors.New("train: no samples")

// ErrBadEpochs indicates an epoch count ≤ 0.
var ErrBadEpochs = errors.New("train: epochs must be > 0")

// ErrBadAlpha indicates an EMA smoothing factor outside (0, 1].
var ErrBadAlpha = errors.New("train: alpha must be in (0, 1]")
