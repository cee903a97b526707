// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvnn/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 5}, {5, 0}, {-1, 3}, {3, -2}, {0, 0}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIsf(t, err, matrix.ErrInvalidDimensions, "NewDense(%d,%d)", tc.r, tc.c)
	}
}

// TestNewDenseZeroFilled verifies shape accessors and zero initialization.
func TestNewDenseZeroFilled(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
	require.Zero(t, m.Sum())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	// nothing was written by the rejected Set calls
	require.Zero(t, m.Sum())
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 0, 0, 2})

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))

	cp := m.Copy()
	cp.Fill(9)
	require.Equal(t, 3.0, m.Sum())
}

func TestCopyFrom(t *testing.T) {
	dst := MustDense(t, 2, 2)
	src := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	require.NoError(t, dst.CopyFrom(src))
	require.True(t, matrix.Equal(dst, src))

	// fallback path through the interface
	other := MustDense(t, 2, 2)
	require.NoError(t, other.CopyFrom(hide{src}))
	require.True(t, matrix.Equal(other, src))

	// storage is not shared after the copy
	src.Fill(0)
	require.Equal(t, 10.0, dst.Sum())
}

func TestCopyFromRejectsWithoutMutation(t *testing.T) {
	dst := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	err := dst.CopyFrom(MustDense(t, 3, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = dst.CopyFrom(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	require.Equal(t, 10.0, dst.Sum())
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestDescribe(t *testing.T) {
	m := NewFilledDense(t, 2, 1, []float64{0.5, -1.25})

	want := "Matrix (2x1)\n" +
		"  0.5000 \n" +
		" -1.2500 \n"
	assert.Equal(t, want, m.Describe())
}

func TestApplyAndDo(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	m.Apply(func(i, j int, v float64) float64 { return v + float64(10*i+j) })
	require.Equal(t, []float64{1, 3, 5, 14, 16, 18}, flatten(m))

	// Do stops after the callback returns false
	var visited int
	m.Do(func(i, j int, v float64) bool {
		visited++
		return !(i == 1 && j == 0)
	})
	require.Equal(t, 4, visited)
}

// flatten reads m in row-major order through the public accessors.
func flatten(m matrix.Matrix) []float64 {
	out := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			out = append(out, v)
		}
	}

	return out
}
