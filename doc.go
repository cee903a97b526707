// Package lvnn is a small playground for dense linear algebra and
// feedforward neural networks trained by plain backpropagation.
//
// What is inside:
//
//	matrix/       — Dense float64 matrices with checked, error-returning
//	                operations (Add, Sub, Hadamard, Mul, Transpose, Scale),
//	                in-place activations and their derivatives, gonum interop
//	nn/           — Network: layer-by-layer assembly, Forward, Update,
//	                pluggable Optimizer (GradientDescent, Momentum)
//	train/        — the n-bit decoder dataset, the epoch loop Fit with its
//	                loss History, ArgMax / Predict / Accuracy
//	cmd/decoder/  — trains the decoder and answers queries from stdin
//	examples/     — runnable walk-throughs
//
// Every operation validates shapes up front and returns wrapped sentinel
// errors (errors.Is) instead of panicking.
//
// Quick start:
//
//	net, _ := nn.New(0.1, nn.WithSeed(1))
//	_ = net.AddLayer(4, nn.Identity)
//	_ = net.AddLayer(10, nn.Sigmoid)
//	_ = net.AddLayer(16, nn.Sigmoid)
//
//	samples, _ := train.Decoder(4)
//	hist, _ := train.Fit(net, samples, train.WithEpochs(20000))
//
//	go run ./cmd/decoder -bits 4 -hidden 10
package lvnn
