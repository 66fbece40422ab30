package stuntnet

import (
	"encoding/json"
	"fmt"

	"github.com/byestunting/byestunting/pkg/errors"
)

// TensorSpec describes a single parameter tensor in the weight manifest.
type TensorSpec struct {
	Name  string `json:"name"`
	Shape []int  `json:"shape"`
	DType string `json:"dtype"`
}

// Size returns the number of elements in the tensor.
func (s TensorSpec) Size() int {
	n := 1
	for _, d := range s.Shape {
		n *= d
	}
	return n
}

// Manifest is the declarative description of the weight blob: tensor names,
// shapes, and dtypes in declaration order. The blob itself carries no
// embedded metadata; the manifest is the sole source of shape information.
type Manifest struct {
	Weights []TensorSpec
}

// manifestFile mirrors the TensorFlow.js model.json layout the training
// pipeline exports: the weights manifest is nested under one or more shard
// groups.
type manifestFile struct {
	WeightsManifest []struct {
		Paths   []string     `json:"paths"`
		Weights []TensorSpec `json:"weights"`
	} `json:"weightsManifest"`
}

// expectedTensors is the architecture's parameter layout: kernel/bias pairs
// for the three dense layers, in declaration order. The manifest must match
// these shapes 1:1 or loading fails.
var expectedTensors = []TensorSpec{
	{Name: "sequential/dense/kernel", Shape: []int{inputSize, hidden1Size}, DType: "float32"},
	{Name: "sequential/dense/bias", Shape: []int{hidden1Size}, DType: "float32"},
	{Name: "sequential/dense_1/kernel", Shape: []int{hidden1Size, hidden2Size}, DType: "float32"},
	{Name: "sequential/dense_1/bias", Shape: []int{hidden2Size}, DType: "float32"},
	{Name: "sequential/dense_2/kernel", Shape: []int{hidden2Size, outputSize}, DType: "float32"},
	{Name: "sequential/dense_2/bias", Shape: []int{outputSize}, DType: "float32"},
}

// ParseManifest decodes a model.json document and extracts the flat tensor
// declaration list.
func ParseManifest(data []byte) (*Manifest, error) {
	var file manifestFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.ModelLoad("manifest is not valid JSON").WithCause(err)
	}
	if len(file.WeightsManifest) == 0 {
		return nil, errors.ModelLoad("manifest declares no weight groups")
	}

	m := &Manifest{}
	for _, group := range file.WeightsManifest {
		m.Weights = append(m.Weights, group.Weights...)
	}
	return m, nil
}

// Validate checks the declared tensors against the architecture's expected
// parameter layout: same count, same declaration order, same shapes, same
// dtype. Names are not compared; exports from different training runs use
// differing layer-name prefixes.
func (m *Manifest) Validate() error {
	if len(m.Weights) != len(expectedTensors) {
		return errors.ModelLoad(fmt.Sprintf(
			"manifest declares %d tensors, architecture expects %d", len(m.Weights), len(expectedTensors)))
	}
	for i, spec := range m.Weights {
		want := expectedTensors[i]
		if spec.DType != "float32" {
			return errors.ModelLoad(fmt.Sprintf("tensor %d (%s): dtype %q unsupported", i, spec.Name, spec.DType))
		}
		if !shapeEqual(spec.Shape, want.Shape) {
			return errors.ModelLoad(fmt.Sprintf(
				"tensor %d (%s): shape %v does not match expected %v", i, spec.Name, spec.Shape, want.Shape))
		}
	}
	return nil
}

// TotalSize returns the number of float32 elements the blob must contain.
func (m *Manifest) TotalSize() int {
	n := 0
	for _, spec := range m.Weights {
		n += spec.Size()
	}
	return n
}

func shapeEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
