// SPDX-License-Identifier: MIT

// Package matrix: conversions between Dense and flat sequences or gonum matrices.
//
// Column vectors are the interchange format of the network layer: inputs,
// targets and outputs are all (n×1) matrices built with FromSlice and read
// back with ToSlice.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opFromSlice = "FromSlice"
	opFromGonum = "FromGonum"
)

// FromSlice builds an (len(values)×1) column matrix holding values in order.
// The input slice is copied; later edits to it do not reach the matrix.
//
// Errors:
//   - ErrInvalidDimensions when values is empty.
//
// Complexity: O(n).
func FromSlice(values []float64) (*Dense, error) {
	if len(values) == 0 {
		return nil, matrixErrorf(opFromSlice, ErrInvalidDimensions)
	}
	m := newDenseLike(len(values), 1)
	copy(m.data, values)

	return m, nil
}

// ToSlice returns the values of column 0, top to bottom.
//
// A matrix with more than one column is not rejected: its first column is
// returned and a warning is written to the package logger (see SetLogger).
//
// Complexity: O(r).
func (m *Dense) ToSlice() []float64 {
	if m.c != 1 {
		warnf("ToSlice called on a %dx%d matrix; returning column 0 only", m.r, m.c)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c]
	}

	return out
}

// NewFromData builds a rows×cols Dense from a row-major slice (copied).
//
// Errors:
//   - ErrInvalidDimensions for non-positive shapes.
//   - ErrDimensionMismatch when len(data) != rows*cols.
func NewFromData(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewFromData(%d,%d): len %d: %w", rows, cols, len(data), ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// ToGonum returns an independent *mat.Dense with the same shape and values.
// Useful to hand matrices to gonum routines (factorizations, norms) that
// this package intentionally does not implement.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp)
}

// FromGonum copies any gonum mat.Matrix into a fresh Dense.
//
// Errors:
//   - ErrNilMatrix for a nil source.
//   - ErrInvalidDimensions for an empty source.
//
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opFromGonum, ErrInvalidDimensions)
	}
	out := newDenseLike(r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = src.At(i, j)
		}
	}

	return out, nil
}
