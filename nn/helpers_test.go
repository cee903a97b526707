// SPDX-License-Identifier: MIT

package nn_test

import (
	"testing"

	"github.com/katalvlaran/lvnn/matrix"
	"github.com/katalvlaran/lvnn/nn"
	"github.com/stretchr/testify/require"
)

// buildNet creates a seeded network with the given layer sizes. Layer 0 is
// the input; every other layer uses act.
func buildNet(t testing.TB, lr float64, act nn.Activation, sizes []int, opts ...nn.Option) *nn.Network {
	t.Helper()
	net, err := nn.New(lr, append([]nn.Option{nn.WithSeed(42)}, opts...)...)
	require.NoError(t, err)
	for i, s := range sizes {
		a := act
		if i == 0 {
			a = nn.Identity
		}
		require.NoError(t, net.AddLayer(s, a))
	}

	return net
}

// col builds a column vector or fails the test.
func col(t testing.TB, v ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromSlice(v)
	require.NoError(t, err)

	return m
}

// dense builds an r×c matrix from row-major data or fails the test.
func dense(t testing.TB, r, c int, data ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromData(r, c, data)
	require.NoError(t, err)

	return m
}

// flat returns m's elements in row-major order.
func flat(t testing.TB, m matrix.Matrix) []float64 {
	t.Helper()
	out := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out = append(out, v)
		}
	}

	return out
}

// halfSquaredError returns ½·Σ(target − out)².
func halfSquaredError(t testing.TB, out, target *matrix.Dense) float64 {
	t.Helper()
	r, err := matrix.Sub(target, out)
	require.NoError(t, err)
	sq, err := matrix.Hadamard(r, r)
	require.NoError(t, err)

	return 0.5 * sq.Sum()
}
