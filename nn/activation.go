// SPDX-License-Identifier: MIT

package nn

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvnn/matrix"
)

// Activation tags the nonlinearity applied to a layer's pre-activation.
// The set is closed: Identity, Sigmoid and ReLU.
type Activation uint8

const (
	// Identity leaves the pre-activation unchanged; its derivative is 1.
	Identity Activation = iota
	// Sigmoid applies 1/(1+e^-x); derivative from output y is y·(1−y).
	Sigmoid
	// ReLU applies max(0,x); derivative from output y is 1 if y>0 else 0.
	ReLU
)

// String returns the lower-case name used by ParseActivation.
func (a Activation) String() string {
	switch a {
	case Identity:
		return "identity"
	case Sigmoid:
		return "sigmoid"
	case ReLU:
		return "relu"
	default:
		return fmt.Sprintf("Activation(%d)", uint8(a))
	}
}

// Valid reports whether a is one of the defined activations.
func (a Activation) Valid() bool {
	return a <= ReLU
}

// ParseActivation maps a case-insensitive name to its Activation.
// "linear" is accepted as an alias of "identity".
func ParseActivation(name string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "identity", "linear":
		return Identity, nil
	case "sigmoid":
		return Sigmoid, nil
	case "relu":
		return ReLU, nil
	default:
		return 0, fmt.Errorf("ParseActivation(%q): %w", name, ErrUnknownActivation)
	}
}

// apply runs the forward transform on pre in place.
func (a Activation) apply(pre *matrix.Dense) error {
	switch a {
	case Identity:
		return nil
	case Sigmoid:
		pre.SigmoidInPlace()
		return nil
	case ReLU:
		pre.ReLUInPlace()
		return nil
	default:
		return ErrUnknownActivation
	}
}

// derivative returns the activation derivative evaluated from the layer's
// OUTPUT (post-activation values), as backpropagation needs it.
func (a Activation) derivative(out *matrix.Dense) (*matrix.Dense, error) {
	switch a {
	case Identity:
		return matrix.OnesLike(out)
	case Sigmoid:
		return matrix.SigmoidDerivative(out)
	case ReLU:
		return matrix.ReLUDerivative(out)
	default:
		return nil, ErrUnknownActivation
	}
}
