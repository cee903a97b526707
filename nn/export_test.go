// SPDX-License-Identifier: MIT

package nn

// Test bridge (white-box): lets nn_test pin parameters to hand-computed
// values without widening the production API.

import "github.com/katalvlaran/lvnn/matrix"

// SetParams overwrites W[i] and b[i] in place.
func (n *Network) SetParams(i int, w, b matrix.Matrix) error {
	if err := n.weights[i].CopyFrom(w); err != nil {
		return err
	}

	return n.biases[i].CopyFrom(b)
}
