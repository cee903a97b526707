// SPDX-License-Identifier: MIT
// Package: lvnn/nn
//
// errors.go — sentinel errors for the nn package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Every specific sentinel wraps one of two classes, ErrConfiguration or
//     ErrStructural, so callers may branch on the class alone.
//   • Shape violations surface as matrix.ErrDimensionMismatch (wrapped), never
//     as a new sentinel.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package nn

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the class of errors caused by invalid construction
// parameters (learning rate, node count, activation tag).
var ErrConfiguration = errors.New("nn: invalid configuration")

// ErrStructural is the class of errors caused by calling an operation while
// the network is in the wrong phase (too few layers, no forward pass,
// assembly after use).
var ErrStructural = errors.New("nn: invalid network state")

// ErrBadLearningRate indicates a learning rate that is not a finite value > 0.
var ErrBadLearningRate = fmt.Errorf("%w: learning rate must be finite and > 0", ErrConfiguration)

// ErrBadNodeCount indicates AddLayer was called with nodeCount <= 0.
var ErrBadNodeCount = fmt.Errorf("%w: node count must be > 0", ErrConfiguration)

// ErrUnknownActivation indicates an Activation tag outside the closed set,
// or a name ParseActivation does not recognize.
var ErrUnknownActivation = fmt.Errorf("%w: unknown activation", ErrConfiguration)

// ErrTooFewLayers indicates Forward was called before an input layer and at
// least one connected layer were added.
var ErrTooFewLayers = fmt.Errorf("%w: network needs at least %d layers", ErrStructural, MinLayers)

// ErrNoForwardPass indicates Update was called without a Forward since the
// network was built or since the previous Update consumed the cache.
var ErrNoForwardPass = fmt.Errorf("%w: update requires a preceding forward pass", ErrStructural)

// ErrSealed indicates AddLayer was called after the network ran a forward pass.
var ErrSealed = fmt.Errorf("%w: layers cannot be added after the first forward pass", ErrStructural)

// ErrLayerIndex indicates a debug accessor received a layer index out of range.
var ErrLayerIndex = errors.New("nn: layer index out of range")

// Method tags used in error wrappers.
const (
	opNew          = "New"
	opAddLayer     = "AddLayer"
	opForward      = "Forward"
	opUpdate       = "Update"
	opActivationAt = "ActivationAt"
	opWeights      = "Weights"
	opBiases       = "Biases"
)

// networkErrorf wraps err with a "Network.<method>" prefix, preserving it via %w.
func networkErrorf(method string, err error) error {
	return fmt.Errorf("Network.%s: %w", method, err)
}
