package stuntnet

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byestunting/byestunting/pkg/errors"
)

// testManifestJSON renders a model.json document declaring the given tensor
// specs in a single shard group.
func testManifestJSON(t *testing.T, specs []TensorSpec) []byte {
	t.Helper()
	doc := map[string]interface{}{
		"weightsManifest": []map[string]interface{}{
			{"paths": []string{"group1-shard1of1.bin"}, "weights": specs},
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return data
}

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest(testManifestJSON(t, expectedTensors))
	require.NoError(t, err)
	require.Len(t, m.Weights, 6)
	assert.Equal(t, []int{4, 128}, m.Weights[0].Shape)
	assert.NoError(t, m.Validate())
}

func TestParseManifest_InvalidJSON(t *testing.T) {
	_, err := ParseManifest([]byte("{not json"))
	assert.True(t, errors.IsCode(err, errors.CodeModelLoad))
}

func TestParseManifest_NoGroups(t *testing.T) {
	_, err := ParseManifest([]byte(`{"weightsManifest": []}`))
	assert.True(t, errors.IsCode(err, errors.CodeModelLoad))
}

func TestManifestValidate_TensorCount(t *testing.T) {
	m := &Manifest{Weights: expectedTensors[:4]}
	assert.True(t, errors.IsCode(m.Validate(), errors.CodeModelLoad))
}

func TestManifestValidate_ShapeMismatch(t *testing.T) {
	specs := make([]TensorSpec, len(expectedTensors))
	copy(specs, expectedTensors)
	specs[2] = TensorSpec{Name: specs[2].Name, Shape: []int{64, 128}, DType: "float32"}

	m := &Manifest{Weights: specs}
	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match expected")
}

func TestManifestValidate_DType(t *testing.T) {
	specs := make([]TensorSpec, len(expectedTensors))
	copy(specs, expectedTensors)
	specs[0].DType = "int32"

	m := &Manifest{Weights: specs}
	assert.Error(t, m.Validate())
}

func TestManifestTotalSize(t *testing.T) {
	m := &Manifest{Weights: expectedTensors}
	// 4*128 + 128 + 128*64 + 64 + 64*3 + 3
	assert.Equal(t, 9091, m.TotalSize())
}
