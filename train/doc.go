// SPDX-License-Identifier: MIT

// Package train drives per-sample training of an nn.Network (or any Model)
// and evaluates the result.
//
// It provides the n-bit decoder dataset, the epoch loop Fit with its loss
// History, and arg-max based evaluation (ArgMax, Predict, Accuracy).
package train
