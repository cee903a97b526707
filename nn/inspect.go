// SPDX-License-Identifier: MIT

package nn

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvnn/matrix"
)

// LearningRate returns the step size fixed at New.
func (n *Network) LearningRate() float64 { return n.lr }

// Layers returns a copy of the layer descriptors in order.
func (n *Network) Layers() []Layer {
	out := make([]Layer, len(n.layers))
	copy(out, n.layers)

	return out
}

// ActivationAt returns a copy of the cached activation of layer (0 is the
// last input). Before any Forward the cache holds zeros.
func (n *Network) ActivationAt(layer int) (*matrix.Dense, error) {
	if layer < 0 || layer >= len(n.activations) {
		return nil, networkErrorf(opActivationAt, fmt.Errorf("layer %d of %d: %w", layer, len(n.activations), ErrLayerIndex))
	}

	return n.activations[layer].Copy(), nil
}

// Weights returns a copy of the weight matrix connecting layer i to i+1.
func (n *Network) Weights(i int) (*matrix.Dense, error) {
	if i < 0 || i >= len(n.weights) {
		return nil, networkErrorf(opWeights, fmt.Errorf("index %d of %d: %w", i, len(n.weights), ErrLayerIndex))
	}

	return n.weights[i].Copy(), nil
}

// Biases returns a copy of the bias vector of layer i+1.
func (n *Network) Biases(i int) (*matrix.Dense, error) {
	if i < 0 || i >= len(n.biases) {
		return nil, networkErrorf(opBiases, fmt.Errorf("index %d of %d: %w", i, len(n.biases), ErrLayerIndex))
	}

	return n.biases[i].Copy(), nil
}

// String dumps the topology and parameter shapes:
//
//	--- Network Topology ---
//	Layer 0: 4 nodes (input)
//	Layer 1: 8 nodes (sigmoid)
//	------------------------
//	Weights (Layer 0 to 1): 8x4
//	Biases (for Layer 1): 8x1
func (n *Network) String() string {
	var b strings.Builder
	b.WriteString("--- Network Topology ---\n")
	for i, l := range n.layers {
		kind := l.Activation.String()
		if i == 0 {
			kind = "input"
		}
		fmt.Fprintf(&b, "Layer %d: %d nodes (%s)\n", i, l.Nodes, kind)
	}
	b.WriteString("------------------------\n")
	for i := range n.weights {
		fmt.Fprintf(&b, "Weights (Layer %d to %d): %dx%d\n", i, i+1, n.weights[i].Rows(), n.weights[i].Cols())
		fmt.Fprintf(&b, "Biases (for Layer %d): %dx%d\n", i+1, n.biases[i].Rows(), n.biases[i].Cols())
	}

	return b.String()
}
