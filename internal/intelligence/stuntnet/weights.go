package stuntnet

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/byestunting/byestunting/pkg/errors"
)

// Tensor is a decoded parameter tensor. Values are widened to float64 so the
// forward pass runs in 64-bit precision throughout.
type Tensor struct {
	Spec TensorSpec
	Data []float64
}

// DecodeWeights reads the raw blob of concatenated little-endian float32
// values in the manifest's declaration order. The blob must contain exactly
// the declared number of elements; a short or oversized blob indicates a
// corrupt or mismatched artifact and fails with a model-load error.
func DecodeWeights(m *Manifest, blob []byte) ([]Tensor, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	wantBytes := m.TotalSize() * 4
	if len(blob) != wantBytes {
		return nil, errors.ModelLoad(fmt.Sprintf(
			"weight blob is %d bytes, manifest declares %d", len(blob), wantBytes))
	}

	tensors := make([]Tensor, 0, len(m.Weights))
	offset := 0
	for _, spec := range m.Weights {
		size := spec.Size()
		data := make([]float64, size)
		for i := 0; i < size; i++ {
			bits := binary.LittleEndian.Uint32(blob[offset:])
			data[i] = float64(math.Float32frombits(bits))
			offset += 4
		}
		tensors = append(tensors, Tensor{Spec: spec, Data: data})
	}
	return tensors, nil
}
