// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnn/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for floating comparisons in kernel tests.
const tol = 1e-12

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Notes:
//   - Useful to assert fast-path == fallback.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// NewFilledDense builds an r×c *Dense from row-major data or fails the test.
func NewFilledDense(t testing.TB, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromData(r, c, data)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomDense returns an r×c matrix with uniform values from a seeded rng.
// Deterministic for a fixed seed.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	require.NoError(t, m.Randomize(rand.New(rand.NewSource(seed))))

	return m
}

// requireClose asserts identical shapes and element-wise |a-b| ≤ tol.
func requireClose(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant:\n%v\ngot:\n%v", want, got)
}
