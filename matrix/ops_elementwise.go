// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - In-place element-wise mutations on *Dense (Randomize, Fill, ScaleInPlace,
//     SigmoidInPlace, ReLUInPlace) and the derivative-from-output helpers used
//     by backpropagation.
//
// Design:
//   - In-place methods live on *Dense only: mutating an arbitrary Matrix
//     through Set would make failure atomicity impossible to guarantee.
//   - Derivative helpers are pure and return a fresh *Dense.
//
// Determinism & Performance:
//   - Fixed flat loop order 0..n-1; no allocations in the in-place methods.

package matrix

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Uniform sampling interval used by Randomize: [RandomMin, RandomMax).
const (
	RandomMin = -1.0
	RandomMax = 1.0
)

const (
	opRandomize         = "Randomize"
	opSigmoidDerivative = "SigmoidDerivative"
	opReLUDerivative    = "ReLUDerivative"
)

// Randomize fills every element with an independent uniform sample in
// [RandomMin, RandomMax) drawn from rng.
//
// Implementation:
//   - Stage 1: reject a nil generator (ErrNilRand).
//   - Stage 2: flat loop, one rng.Float64() draw per element.
//
// Behavior highlights:
//   - Consumes exactly Rows*Cols draws, so a seeded rng yields a
//     reproducible matrix.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Randomize(rng *rand.Rand) error {
	if rng == nil {
		return matrixErrorf(opRandomize, ErrNilRand)
	}
	span := RandomMax - RandomMin
	for idx := range m.data {
		m.data[idx] = RandomMin + span*rng.Float64()
	}

	return nil
}

// Fill sets every element to v.
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) {
	for idx := range m.data {
		m.data[idx] = v
	}
}

// ScaleInPlace multiplies every element by s.
// Complexity: O(r*c).
func (m *Dense) ScaleInPlace(s float64) {
	floats.Scale(s, m.data)
}

// Sum returns the scalar sum of all elements.
// Complexity: O(r*c).
func (m *Dense) Sum() float64 {
	return floats.Sum(m.data)
}

// sigmoid is the logistic function 1/(1+e^-x).
func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// SigmoidInPlace applies x ← 1/(1+e^-x) to every element.
// Complexity: O(r*c).
func (m *Dense) SigmoidInPlace() {
	for idx, v := range m.data {
		m.data[idx] = sigmoid(v)
	}
}

// ReLUInPlace applies x ← max(0, x) to every element.
// Complexity: O(r*c).
func (m *Dense) ReLUInPlace() {
	for idx, v := range m.data {
		if v < 0 {
			m.data[idx] = 0
		}
	}
}

// SigmoidDerivative returns out[i,j] = a[i,j]·(1 − a[i,j]).
//
// The input is treated as the OUTPUT of a sigmoid, not as a pre-activation:
// for y = σ(x), σ'(x) = y·(1−y). Passing raw pre-activation values gives a
// meaningless result.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func SigmoidDerivative(a Matrix) (*Dense, error) {
	return mapPure(a, opSigmoidDerivative, func(y float64) float64 { return y * (1.0 - y) })
}

// ReLUDerivative returns 1 where a[i,j] > 0 and 0 elsewhere.
//
// The input is treated as the OUTPUT of a ReLU. Since ReLU maps every
// non-positive value to 0, the derivative at exactly 0 is taken as 0 by
// convention.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ReLUDerivative(a Matrix) (*Dense, error) {
	return mapPure(a, opReLUDerivative, func(y float64) float64 {
		if y > 0 {
			return 1
		}
		return 0
	})
}

// mapPure returns a fresh Dense with out[i,j] = f(a[i,j]).
// *Dense operands use a flat loop; others go through At in i→j order.
func mapPure(a Matrix, opTag string, f func(float64) float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res := newDenseLike(rows, cols)

	if da, ok := a.(*Dense); ok {
		for idx, v := range da.data {
			res.data[idx] = f(v)
		}
		return res, nil
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = f(v)
		}
	}

	return res, nil
}
