// Package matrix offers a small dense matrix engine for neural computations.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Pure binary kernels (Add, Sub, Mul, Hadamard, Transpose, Scale) that
//     validate shapes before writing a single output element.
//   - In-place elementwise operations (Randomize, Fill, ScaleInPlace,
//     SigmoidInPlace, ReLUInPlace) and derivative-from-output helpers
//     (SigmoidDerivative, ReLUDerivative).
//   - Column-vector conversions (FromSlice, ToSlice) and gonum interop
//     (ToGonum, FromGonum).
//
// Matrices have value semantics: every operation that returns a *Dense
// returns a freshly allocated one. Only methods whose names end in InPlace,
// plus Randomize, Fill, Apply and CopyFrom, mutate their receiver.
//
// All failures are reported through the sentinels in errors.go and must be
// matched with errors.Is.
package matrix
