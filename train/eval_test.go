// SPDX-License-Identifier: MIT

package train_test

import (
	"testing"

	"github.com/katalvlaran/lvnn/matrix"
	"github.com/katalvlaran/lvnn/train"
	"github.com/stretchr/testify/require"
)

func TestArgMax(t *testing.T) {
	m, err := matrix.FromSlice([]float64{0.1, 0.7, 0.3})
	require.NoError(t, err)
	idx, err := train.ArgMax(m)
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	// ties go to the first row
	m, err = matrix.FromSlice([]float64{0.2, 0.9, 0.9})
	require.NoError(t, err)
	idx, err = train.ArgMax(m)
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	wide, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = train.ArgMax(wide)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = train.ArgMax(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// echoModel outputs the one-hot of its first input element, so it is right
// exactly when input equals the target class.
type echoModel struct{ classes int }

func (e echoModel) Forward(in matrix.Matrix) (*matrix.Dense, error) {
	v, err := in.At(0, 0)
	if err != nil {
		return nil, err
	}
	out, err := matrix.NewDense(e.classes, 1)
	if err != nil {
		return nil, err
	}

	return out, out.Set(int(v), 0, 1)
}

func (echoModel) Update(matrix.Matrix) (float64, error) { return 0, nil }

func TestAccuracy(t *testing.T) {
	mk := func(in float64, class int) train.Sample {
		x, err := matrix.FromSlice([]float64{in})
		require.NoError(t, err)
		y, err := matrix.NewDense(3, 1)
		require.NoError(t, err)
		require.NoError(t, y.Set(class, 0, 1))

		return train.Sample{Input: x, Target: y}
	}
	samples := []train.Sample{mk(0, 0), mk(1, 1), mk(2, 0), mk(2, 2)}

	acc, err := train.Accuracy(echoModel{classes: 3}, samples)
	require.NoError(t, err)
	require.Equal(t, 0.75, acc)

	guess, out, err := train.Predict(echoModel{classes: 3}, samples[1].Input)
	require.NoError(t, err)
	require.Equal(t, 1, guess)
	require.Equal(t, []float64{0, 1, 0}, out.ToSlice())

	_, err = train.Accuracy(echoModel{classes: 3}, nil)
	require.ErrorIs(t, err, train.ErrNoSamples)

	// an out-of-range class surfaces the model's error
	_, err = train.Accuracy(echoModel{classes: 3}, []train.Sample{mk(5, 0)})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
