// SPDX-License-Identifier: MIT
// Package: lvnn/nn
//
// network.go — the layered network: assembly, forward pass and backprop.
//
// Lifecycle:
//   New → AddLayer × L (L ≥ 2) → (Forward → Update)* …
//
//   • AddLayer is legal only until the first Forward; after that the network
//     is sealed and AddLayer returns ErrSealed.
//   • Forward overwrites the activation cache and arms it.
//   • Update consumes an armed cache; a second Update without a new Forward
//     returns ErrNoForwardPass.

package nn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnn/matrix"
)

// MinLayers is the smallest runnable network: an input layer plus one
// connected layer.
const MinLayers = 2

// Layer describes one layer of the network. The activation of the input
// layer (index 0) is recorded but never applied.
type Layer struct {
	Nodes      int
	Activation Activation
}

// Network is a fully connected feedforward network trained one sample at a
// time by backpropagation.
//
// Invariants, held after every successful AddLayer:
//
//	len(activations) == len(layers)
//	len(weights) == len(biases) == len(layers) − 1
//	weights[i] is layers[i+1].Nodes × layers[i].Nodes
//	biases[i]  is layers[i+1].Nodes × 1
//
// A Network is not safe for concurrent use: Forward and Update share the
// activation cache.
type Network struct {
	lr  float64
	cfg config

	layers      []Layer
	weights     []*matrix.Dense
	biases      []*matrix.Dense
	weightVel   []*matrix.Dense // optimizer state, one per weight matrix
	biasVel     []*matrix.Dense // optimizer state, one per bias matrix
	activations []*matrix.Dense // activations[0] is the last input

	armed  bool // a Forward ran since the last Update
	sealed bool // at least one Forward ran
}

// New returns an empty network with the given learning rate.
//
// Errors:
//   - ErrBadLearningRate if lr is NaN, ±Inf or ≤ 0.
func New(learningRate float64, opts ...Option) (*Network, error) {
	if math.IsNaN(learningRate) || math.IsInf(learningRate, 0) || learningRate <= 0 {
		return nil, networkErrorf(opNew, fmt.Errorf("lr=%v: %w", learningRate, ErrBadLearningRate))
	}

	return &Network{lr: learningRate, cfg: newConfig(opts...)}, nil
}

// AddLayer appends a layer of nodeCount units using act.
//
// Implementation:
//   - Stage 1: validate the phase and arguments.
//   - Stage 2: for a non-input layer allocate W (n×prev) and b (n×1),
//     randomize W in [-1,1); b is filled with the ReLU bias for ReLU layers
//     and randomized otherwise; allocate zero velocities.
//   - Stage 3: append everything at once.
//
// On error the network is unchanged.
//
// Errors:
//   - ErrSealed after the first Forward.
//   - ErrBadNodeCount if nodeCount ≤ 0.
//   - ErrUnknownActivation if act is not a defined Activation.
//
// Complexity: O(n·prev) time and space.
func (n *Network) AddLayer(nodeCount int, act Activation) error {
	if n.sealed {
		return networkErrorf(opAddLayer, ErrSealed)
	}
	if nodeCount <= 0 {
		return networkErrorf(opAddLayer, fmt.Errorf("nodeCount=%d: %w", nodeCount, ErrBadNodeCount))
	}
	if !act.Valid() {
		return networkErrorf(opAddLayer, fmt.Errorf("%v: %w", act, ErrUnknownActivation))
	}

	cache, err := matrix.NewZeros(nodeCount, 1)
	if err != nil {
		return networkErrorf(opAddLayer, err)
	}
	if len(n.layers) == 0 {
		n.layers = append(n.layers, Layer{Nodes: nodeCount, Activation: act})
		n.activations = append(n.activations, cache)
		return nil
	}

	prev := n.layers[len(n.layers)-1].Nodes
	w, err := matrix.NewDense(nodeCount, prev)
	if err != nil {
		return networkErrorf(opAddLayer, err)
	}
	if err = w.Randomize(n.cfg.rng); err != nil {
		return networkErrorf(opAddLayer, err)
	}
	b, err := matrix.NewDense(nodeCount, 1)
	if err != nil {
		return networkErrorf(opAddLayer, err)
	}
	if act == ReLU {
		b.Fill(n.cfg.reluBias)
	} else if err = b.Randomize(n.cfg.rng); err != nil {
		return networkErrorf(opAddLayer, err)
	}
	wv, err := matrix.ZerosLike(w)
	if err != nil {
		return networkErrorf(opAddLayer, err)
	}
	bv, err := matrix.ZerosLike(b)
	if err != nil {
		return networkErrorf(opAddLayer, err)
	}

	n.layers = append(n.layers, Layer{Nodes: nodeCount, Activation: act})
	n.activations = append(n.activations, cache)
	n.weights = append(n.weights, w)
	n.biases = append(n.biases, b)
	n.weightVel = append(n.weightVel, wv)
	n.biasVel = append(n.biasVel, bv)

	return nil
}

// Forward evaluates the network on a single column vector.
//
// Implementation:
//   - Stage 1: require ≥ MinLayers layers and input of shape (layers[0].Nodes × 1).
//   - Stage 2: a[0] = copy(input); for each i, a[i+1] = act(W[i]·a[i] + b[i]).
//   - Stage 3: replace the activation cache, arm it for Update, seal the network.
//
// The returned matrix is a copy; mutating it does not touch the cache.
// On error the previous cache and armed state are kept.
//
// Errors:
//   - ErrTooFewLayers, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity: O(Σ n_i·n_{i+1}) time.
func (n *Network) Forward(input matrix.Matrix) (*matrix.Dense, error) {
	if len(n.layers) < MinLayers {
		return nil, networkErrorf(opForward, fmt.Errorf("have %d: %w", len(n.layers), ErrTooFewLayers))
	}
	if err := matrix.ValidateShape(input, n.layers[0].Nodes, 1); err != nil {
		return nil, networkErrorf(opForward, err)
	}

	acts := make([]*matrix.Dense, len(n.layers))
	a0, err := matrix.ZerosLike(input)
	if err != nil {
		return nil, networkErrorf(opForward, err)
	}
	if err = a0.CopyFrom(input); err != nil {
		return nil, networkErrorf(opForward, err)
	}
	acts[0] = a0

	var pre *matrix.Dense
	for i := range n.weights {
		if pre, err = matrix.Mul(n.weights[i], acts[i]); err != nil {
			return nil, networkErrorf(opForward, fmt.Errorf("layer %d: %w", i+1, err))
		}
		if pre, err = matrix.Add(pre, n.biases[i]); err != nil {
			return nil, networkErrorf(opForward, fmt.Errorf("layer %d: %w", i+1, err))
		}
		if err = n.layers[i+1].Activation.apply(pre); err != nil {
			return nil, networkErrorf(opForward, fmt.Errorf("layer %d: %w", i+1, err))
		}
		acts[i+1] = pre
	}

	n.activations = acts
	n.armed = true
	n.sealed = true

	return acts[len(acts)-1].Copy(), nil
}

// step holds the staged updates for one connecting layer.
type step struct {
	weights *matrix.Dense // lr·δ·a[i]ᵀ
	biases  *matrix.Dense // lr·δ
}

// Update runs one backpropagation step against target using the activations
// cached by the preceding Forward, and returns the loss ½·Σ(target − output)².
//
// Implementation:
//   - Stage 1: require an armed cache and a target shaped like the output.
//   - Stage 2: g = output − target. For i = L−2 … 0:
//     δ = act′(a[i+1]) ∘ g
//     ΔW[i] = lr·δ·a[i]ᵀ,  Δb[i] = lr·δ
//     g = W[i]ᵀ·δ   (with W[i] not yet updated)
//   - Stage 3: hand every (ΔW, Δb) to the optimizer, then disarm the cache.
//
// ΔW/lr is exactly ∂loss/∂W, so plain descent moves against the gradient.
// Nothing is mutated unless Stage 2 completes.
//
// Errors:
//   - ErrNoForwardPass, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity: O(Σ n_i·n_{i+1}) time, same order as Forward.
func (n *Network) Update(target matrix.Matrix) (float64, error) {
	if !n.armed {
		return 0, networkErrorf(opUpdate, ErrNoForwardPass)
	}
	output := n.activations[len(n.activations)-1]
	if err := matrix.ValidateShape(target, output.Rows(), output.Cols()); err != nil {
		return 0, networkErrorf(opUpdate, err)
	}

	residual, err := matrix.Sub(target, output)
	if err != nil {
		return 0, networkErrorf(opUpdate, err)
	}
	sq, err := matrix.Hadamard(residual, residual)
	if err != nil {
		return 0, networkErrorf(opUpdate, err)
	}
	loss := 0.5 * sq.Sum()

	g, err := matrix.Sub(output, target)
	if err != nil {
		return 0, networkErrorf(opUpdate, err)
	}

	steps := make([]step, len(n.weights))
	for i := len(n.weights) - 1; i >= 0; i-- {
		if steps[i], g, err = n.backward(i, g); err != nil {
			return 0, networkErrorf(opUpdate, fmt.Errorf("layer %d: %w", i+1, err))
		}
	}

	for i, s := range steps {
		if err = n.cfg.optimizer.Apply(n.weights[i], n.weightVel[i], s.weights); err != nil {
			return 0, networkErrorf(opUpdate, fmt.Errorf("weights %d: %w", i, err))
		}
		if err = n.cfg.optimizer.Apply(n.biases[i], n.biasVel[i], s.biases); err != nil {
			return 0, networkErrorf(opUpdate, fmt.Errorf("biases %d: %w", i, err))
		}
	}
	n.armed = false

	if math.IsNaN(loss) || math.IsInf(loss, 0) {
		n.cfg.logger.Printf("warning: non-finite loss %v, training has diverged", loss)
	}

	return loss, nil
}

// backward computes the staged step for connecting layer i from the upstream
// error signal g, and returns the signal for layer i−1. For i == 0 no signal
// is propagated and the returned matrix is nil.
func (n *Network) backward(i int, g *matrix.Dense) (step, *matrix.Dense, error) {
	deriv, err := n.layers[i+1].Activation.derivative(n.activations[i+1])
	if err != nil {
		return step{}, nil, err
	}
	delta, err := matrix.Hadamard(deriv, g)
	if err != nil {
		return step{}, nil, err
	}
	scaled, err := matrix.Scale(delta, n.lr)
	if err != nil {
		return step{}, nil, err
	}
	prevT, err := matrix.Transpose(n.activations[i])
	if err != nil {
		return step{}, nil, err
	}
	dW, err := matrix.Mul(scaled, prevT)
	if err != nil {
		return step{}, nil, err
	}
	if i == 0 {
		return step{weights: dW, biases: scaled}, nil, nil
	}

	wT, err := matrix.Transpose(n.weights[i])
	if err != nil {
		return step{}, nil, err
	}
	next, err := matrix.Mul(wT, delta)
	if err != nil {
		return step{}, nil, err
	}

	return step{weights: dW, biases: scaled}, next, nil
}
