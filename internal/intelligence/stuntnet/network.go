package stuntnet

import (
	"fmt"
	"math"

	"github.com/byestunting/byestunting/pkg/errors"
)

// Architecture dimensions. The training pipeline exports a
// Dense(4→128, ReLU) → Dense(128→64, ReLU) → Dense(64→3, softmax) stack;
// the dropout layers between them are inactive at inference and carry no
// parameters, so they do not appear here.
const (
	inputSize   = 4
	hidden1Size = 128
	hidden2Size = 64
	outputSize  = 3
)

// denseLayer holds one fully-connected layer's parameters. The kernel is
// stored row-major as exported: kernel[i*out+j] is the weight from input i
// to output j.
type denseLayer struct {
	in, out int
	kernel  []float64
	bias    []float64
}

// apply computes activation(x·W + b) into a fresh slice.
func (l *denseLayer) apply(x []float64, activation func([]float64)) []float64 {
	out := make([]float64, l.out)
	copy(out, l.bias)
	for i := 0; i < l.in; i++ {
		xi := x[i]
		if xi == 0 {
			continue
		}
		row := l.kernel[i*l.out:]
		for j := 0; j < l.out; j++ {
			out[j] += xi * row[j]
		}
	}
	if activation != nil {
		activation(out)
	}
	return out
}

// Network is the loaded feed-forward model. Once constructed it is
// immutable, so concurrent Forward calls are safe without locking.
type Network struct {
	layers [3]denseLayer
}

// NewNetwork assembles a Network from the six decoded tensors (kernel/bias
// per dense layer, in declaration order). Tensor shapes were already checked
// against the architecture during decoding, but the pairing is re-verified
// here so the constructor is safe on its own.
func NewNetwork(tensors []Tensor) (*Network, error) {
	if len(tensors) != 6 {
		return nil, errors.ModelLoad(fmt.Sprintf("expected 6 parameter tensors, got %d", len(tensors)))
	}

	dims := [3][2]int{{inputSize, hidden1Size}, {hidden1Size, hidden2Size}, {hidden2Size, outputSize}}
	n := &Network{}
	for i := 0; i < 3; i++ {
		kernel, bias := tensors[2*i], tensors[2*i+1]
		in, out := dims[i][0], dims[i][1]
		if len(kernel.Data) != in*out {
			return nil, errors.ModelLoad(fmt.Sprintf("layer %d kernel has %d elements, want %d", i, len(kernel.Data), in*out))
		}
		if len(bias.Data) != out {
			return nil, errors.ModelLoad(fmt.Sprintf("layer %d bias has %d elements, want %d", i, len(bias.Data), out))
		}
		n.layers[i] = denseLayer{in: in, out: out, kernel: kernel.Data, bias: bias.Data}
	}
	return n, nil
}

// Forward runs the batch-size-1 forward pass and returns the softmax
// probability distribution over the three classes. The computation is pure
// float64 arithmetic with no randomness; identical input always produces
// identical output.
func (n *Network) Forward(input []float64) ([]float64, error) {
	if len(input) != inputSize {
		return nil, errors.Inference(fmt.Sprintf("input vector has %d features, want %d", len(input), inputSize))
	}

	h := n.layers[0].apply(input, relu)
	h = n.layers[1].apply(h, relu)
	return n.layers[2].apply(h, softmax), nil
}

func relu(v []float64) {
	for i, x := range v {
		if x < 0 {
			v[i] = 0
		}
	}
}

// softmax normalises in place, shifting by the max logit first so large
// activations cannot overflow the exponential.
func softmax(v []float64) {
	max := v[0]
	for _, x := range v[1:] {
		if x > max {
			max = x
		}
	}
	sum := 0.0
	for i, x := range v {
		e := math.Exp(x - max)
		v[i] = e
		sum += e
	}
	for i := range v {
		v[i] /= sum
	}
}
