// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing constructors on top of NewDense.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewFilled returns a rows×cols *Dense with every element set to v.
// Complexity: O(r*c).
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.Fill(v)

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers such as velocity accumulators.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// OnesLike returns a matrix of ones with the same shape as m.
// It is the derivative of the identity activation.
func OnesLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("OnesLike", err)
	}

	return NewFilled(m.Rows(), m.Cols(), 1)
}
