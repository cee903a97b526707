// SPDX-License-Identifier: MIT

// Package nn implements a small fully connected feedforward network on top of
// lvnn/matrix, trained one sample at a time with backpropagation.
//
// A network is assembled layer by layer, then alternates Forward and Update:
//
//	net, _ := nn.New(0.1, nn.WithSeed(1))
//	_ = net.AddLayer(4, nn.Identity) // input
//	_ = net.AddLayer(8, nn.Sigmoid)
//	_ = net.AddLayer(16, nn.Sigmoid)
//
//	out, _ := net.Forward(x) // x is 4×1
//	loss, _ := net.Update(y) // y is 16×1
//
// Update consumes the activations cached by the immediately preceding
// Forward; calling it without one returns ErrNoForwardPass. The first Forward
// seals the layer list.
//
// Errors come in two classes, ErrConfiguration and ErrStructural, plus
// matrix.ErrDimensionMismatch for shape violations. Everything is wrapped
// with %w; branch with errors.Is.
//
// The step rule is pluggable through Optimizer. GradientDescent is the
// default; Momentum keeps a velocity per parameter matrix.
package nn
