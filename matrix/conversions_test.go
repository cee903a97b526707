// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/katalvlaran/lvnn/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFromSliceToSlice_RoundTrip(t *testing.T) {
	in := []float64{1, 2, 3}
	m, err := matrix.FromSlice(in)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 1, m.Cols())

	// the input is copied
	in[0] = 100
	require.Equal(t, []float64{1, 2, 3}, m.ToSlice())
}

func TestFromSlice_Empty(t *testing.T) {
	_, err := matrix.FromSlice(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromSlice([]float64{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestToSlice_MultiColumnWarns checks the lenient policy: column 0 is
// returned and a warning is logged instead of failing.
func TestToSlice_MultiColumnWarns(t *testing.T) {
	var buf bytes.Buffer
	prev := matrix.SetLogger(log.New(&buf, "", 0))
	t.Cleanup(func() { matrix.SetLogger(prev) })

	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.Equal(t, []float64{1, 4}, m.ToSlice())
	assert.Contains(t, buf.String(), "warning")
	assert.Contains(t, buf.String(), "2x3")

	// a proper column vector stays silent
	buf.Reset()
	col, err := matrix.FromSlice([]float64{9})
	require.NoError(t, err)
	require.Equal(t, []float64{9}, col.ToSlice())
	assert.Empty(t, buf.String())
}

func TestSetLogger_NilSilences(t *testing.T) {
	prev := matrix.SetLogger(nil)
	t.Cleanup(func() { matrix.SetLogger(prev) })

	m := MustDense(t, 1, 2)
	require.Equal(t, []float64{0}, m.ToSlice())
}

func TestNewFromData(t *testing.T) {
	m, err := matrix.NewFromData(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 3.0, MustAt(t, m, 1, 0))

	_, err = matrix.NewFromData(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewFromData(0, 2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestGonumInterop(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	g := m.ToGonum()
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, g.At(1, 2))

	// independent storage
	g.Set(0, 0, -1)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	back, err := matrix.FromGonum(g.T())
	require.NoError(t, err)
	want, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.NoError(t, want.Set(0, 0, -1))
	require.True(t, matrix.Equal(want, back))

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var empty mat.Matrix = &mat.Dense{}
	_, err = matrix.FromGonum(empty)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
