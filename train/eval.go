// SPDX-License-Identifier: MIT

package train

import (
	"fmt"

	"github.com/katalvlaran/lvnn/matrix"
	"gonum.org/v1/gonum/floats"
)

// ArgMax returns the row of the largest entry of a column vector; ties go to
// the lowest row.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch if m has more
// than one column.
func ArgMax(m matrix.Matrix) (int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, fmt.Errorf("ArgMax: %w", err)
	}
	if m.Cols() != 1 {
		return 0, fmt.Errorf("ArgMax: %dx%d is not a column vector: %w", m.Rows(), m.Cols(), matrix.ErrDimensionMismatch)
	}

	v := make([]float64, m.Rows())
	for i := range v {
		x, err := m.At(i, 0)
		if err != nil {
			return 0, fmt.Errorf("ArgMax: %w", err)
		}
		v[i] = x
	}

	return floats.MaxIdx(v), nil
}

// Predict runs one Forward and returns the arg-max class with the raw output.
func Predict(m Model, input matrix.Matrix) (int, *matrix.Dense, error) {
	out, err := m.Forward(input)
	if err != nil {
		return 0, nil, fmt.Errorf("Predict: %w", err)
	}
	guess, err := ArgMax(out)
	if err != nil {
		return 0, nil, fmt.Errorf("Predict: %w", err)
	}

	return guess, out, nil
}

// Accuracy is the fraction of samples whose predicted class equals the
// arg-max of their target.
// Errors: ErrNoSamples, or a wrapped model/shape error.
func Accuracy(m Model, samples []Sample) (float64, error) {
	if len(samples) == 0 {
		return 0, fmt.Errorf("Accuracy: %w", ErrNoSamples)
	}

	hits := 0
	for i, s := range samples {
		guess, _, err := Predict(m, s.Input)
		if err != nil {
			return 0, fmt.Errorf("Accuracy: sample %d: %w", i, err)
		}
		want, err := ArgMax(s.Target)
		if err != nil {
			return 0, fmt.Errorf("Accuracy: sample %d: %w", i, err)
		}
		if guess == want {
			hits++
		}
	}

	return float64(hits) / float64(len(samples)), nil
}
