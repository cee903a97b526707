// SPDX-License-Identifier: MIT

package nn

import (
	"fmt"

	"github.com/katalvlaran/lvnn/matrix"
)

// Optimizer turns a computed step into a parameter update.
//
// delta already carries the learning rate: plain descent is param -= delta.
// velocity is a zero-initialized buffer of param's shape owned by the Network,
// one per parameter matrix; stateless rules ignore it.
// Implementations must validate shapes before mutating param or velocity.
type Optimizer interface {
	Apply(param, velocity, delta *matrix.Dense) error
}

// GradientDescent applies param -= delta.
type GradientDescent struct{}

// Apply implements Optimizer.
func (GradientDescent) Apply(param, _, delta *matrix.Dense) error {
	next, err := matrix.Sub(param, delta)
	if err != nil {
		return fmt.Errorf("GradientDescent.Apply: %w", err)
	}

	return param.CopyFrom(next)
}

// Momentum is heavy-ball descent:
//
//	v     = Beta·v + delta
//	param = param − v
//
// Beta = 0 reduces to GradientDescent.
type Momentum struct {
	Beta float64
}

// Apply implements Optimizer.
func (m Momentum) Apply(param, velocity, delta *matrix.Dense) error {
	if err := matrix.ValidateBinarySameShape(param, velocity); err != nil {
		return fmt.Errorf("Momentum.Apply: %w", err)
	}
	decayed, err := matrix.Scale(velocity, m.Beta)
	if err != nil {
		return fmt.Errorf("Momentum.Apply: %w", err)
	}
	v, err := matrix.Add(decayed, delta)
	if err != nil {
		return fmt.Errorf("Momentum.Apply: %w", err)
	}
	next, err := matrix.Sub(param, v)
	if err != nil {
		return fmt.Errorf("Momentum.Apply: %w", err)
	}

	// both results are computed; commit
	if err = velocity.CopyFrom(v); err != nil {
		return fmt.Errorf("Momentum.Apply: %w", err)
	}

	return param.CopyFrom(next)
}
