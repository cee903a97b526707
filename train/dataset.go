// SPDX-License-Identifier: MIT

package train

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvnn/matrix"
)

// MaxBits bounds Decoder. The targets hold 4^bits floats in total, so 10
// bits is 8 MiB of targets and every extra bit multiplies that by four.
const MaxBits = 10

// Sample is one supervised pair of column vectors.
type Sample struct {
	Input  *matrix.Dense
	Target *matrix.Dense
}

// Decoder builds the n-bit binary decoder task: for every k in [0, 2^bits)
// the input is the bits of k, most significant first, and the target is the
// one-hot vector of length 2^bits with a 1 at index k.
//
// Samples are ordered by k. Errors: ErrBadBits.
func Decoder(bits int) ([]Sample, error) {
	if bits < 1 || bits > MaxBits {
		return nil, fmt.Errorf("Decoder(%d): %w", bits, ErrBadBits)
	}

	n := 1 << bits
	out := make([]Sample, n)
	for k := 0; k < n; k++ {
		in, err := matrix.NewDense(bits, 1)
		if err != nil {
			return nil, fmt.Errorf("Decoder(%d): %w", bits, err)
		}
		for j := 0; j < bits; j++ {
			if (k>>(bits-1-j))&1 == 1 {
				if err = in.Set(j, 0, 1); err != nil {
					return nil, fmt.Errorf("Decoder(%d): %w", bits, err)
				}
			}
		}

		target, err := matrix.NewDense(n, 1)
		if err != nil {
			return nil, fmt.Errorf("Decoder(%d): %w", bits, err)
		}
		if err = target.Set(k, 0, 1); err != nil {
			return nil, fmt.Errorf("Decoder(%d): %w", bits, err)
		}

		out[k] = Sample{Input: in, Target: target}
	}

	return out, nil
}

// FormatBinary renders the low bits of n, most significant first.
// FormatBinary(3, 4) == "0011".
func FormatBinary(n, bits int) string {
	if bits <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(bits)
	for i := bits - 1; i >= 0; i-- {
		if (n>>i)&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}
