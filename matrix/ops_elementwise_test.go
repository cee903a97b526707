// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnn/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomize_RangeAndDeterminism(t *testing.T) {
	a := MustDense(t, 20, 20)
	require.NoError(t, a.Randomize(rand.New(rand.NewSource(42))))

	var neg, pos int
	a.Do(func(_, _ int, v float64) bool {
		require.GreaterOrEqual(t, v, matrix.RandomMin)
		require.Less(t, v, matrix.RandomMax)
		if v < 0 {
			neg++
		} else {
			pos++
		}
		return true
	})
	// 400 uniform draws land on both sides of zero
	assert.Positive(t, neg)
	assert.Positive(t, pos)

	b := MustDense(t, 20, 20)
	require.NoError(t, b.Randomize(rand.New(rand.NewSource(42))))
	require.True(t, matrix.Equal(a, b), "same seed must give the same matrix")
}

func TestRandomize_NilRand(t *testing.T) {
	a := MustDense(t, 2, 2)
	require.ErrorIs(t, a.Randomize(nil), matrix.ErrNilRand)
	require.Zero(t, a.Sum())
}

func TestFillScaleSum(t *testing.T) {
	a := MustDense(t, 3, 2)
	a.Fill(0.5)
	require.Equal(t, 3.0, a.Sum())

	a.ScaleInPlace(-4)
	require.Equal(t, []float64{-2, -2, -2, -2, -2, -2}, flatten(a))
	require.Equal(t, -12.0, a.Sum())
}

func TestSigmoidInPlace(t *testing.T) {
	a := NewFilledDense(t, 3, 1, []float64{0, 2, -2})
	a.SigmoidInPlace()

	require.Equal(t, 0.5, MustAt(t, a, 0, 0))
	require.InDelta(t, 1/(1+math.Exp(-2)), MustAt(t, a, 1, 0), tol)
	// σ(−x) = 1 − σ(x)
	require.InDelta(t, 1.0, MustAt(t, a, 1, 0)+MustAt(t, a, 2, 0), tol)
}

// TestSigmoidDerivative_FromOutput checks d = o·(1−o) on an already-sigmoided matrix.
func TestSigmoidDerivative_FromOutput(t *testing.T) {
	out := RandomDense(t, 4, 3, 3)
	out.ScaleInPlace(5)
	out.SigmoidInPlace()

	d, err := matrix.SigmoidDerivative(out)
	require.NoError(t, err)

	d.Do(func(i, j int, v float64) bool {
		o := MustAt(t, out, i, j)
		require.InDelta(t, o*(1-o), v, tol)
		return true
	})

	// must NOT re-apply the sigmoid: at o=0.5 the derivative is exactly 0.25
	half := NewFilledDense(t, 1, 1, []float64{0.5})
	d, err = matrix.SigmoidDerivative(half)
	require.NoError(t, err)
	require.Equal(t, 0.25, MustAt(t, d, 0, 0))

	slow, err := matrix.SigmoidDerivative(hide{half})
	require.NoError(t, err)
	require.True(t, matrix.Equal(d, slow))
}

func TestReLU(t *testing.T) {
	a := NewFilledDense(t, 1, 5, []float64{-3, -0.1, 0, 0.2, 7})
	a.ReLUInPlace()
	require.Equal(t, []float64{0, 0, 0, 0.2, 7}, flatten(a))

	d, err := matrix.ReLUDerivative(a)
	require.NoError(t, err)
	// zero output maps to a zero derivative by convention
	require.Equal(t, []float64{0, 0, 0, 1, 1}, flatten(d))
}

func TestDerivatives_Nil(t *testing.T) {
	_, err := matrix.SigmoidDerivative(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ReLUDerivative(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDerivatives_ArePure(t *testing.T) {
	a := NewFilledDense(t, 2, 1, []float64{0.3, 0.9})
	before := a.Copy()

	_, err := matrix.SigmoidDerivative(a)
	require.NoError(t, err)
	_, err = matrix.ReLUDerivative(a)
	require.NoError(t, err)

	require.True(t, matrix.Equal(before, a))
}

func TestFacades(t *testing.T) {
	ones, err := matrix.OnesLike(MustDense(t, 2, 3))
	require.NoError(t, err)
	require.Equal(t, 6.0, ones.Sum())

	z, err := matrix.ZerosLike(ones)
	require.NoError(t, err)
	require.Equal(t, 2, z.Rows())
	require.Equal(t, 3, z.Cols())
	require.Zero(t, z.Sum())

	_, err = matrix.NewFilled(0, 1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.OnesLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAllClose(t *testing.T) {
	a := NewFilledDense(t, 1, 3, []float64{1, math.Inf(1), 3})
	b := NewFilledDense(t, 1, 3, []float64{1 + 1e-10, math.Inf(1), 3})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 3, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	nan := NewFilledDense(t, 1, 1, []float64{math.NaN()})
	require.False(t, matrix.Equal(nan, nan))
}
