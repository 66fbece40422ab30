// Package weights provides the model artifact sources: where the weight
// manifest (model.json) and the binary weight blob live. Deployments choose
// between the local filesystem and a MinIO bucket via configuration.
package weights

import (
	"context"
	"os"

	"github.com/byestunting/byestunting/pkg/errors"
)

// FileSource reads model artifacts from the local filesystem. It is the
// default source and matches the artifact layout shipped with the repository:
// model.json plus group1-shard1of1.bin under model-machine-learning/.
type FileSource struct {
	manifestPath string
	weightsPath  string
}

// NewFileSource creates a source reading from the given paths.
func NewFileSource(manifestPath, weightsPath string) (*FileSource, error) {
	if manifestPath == "" || weightsPath == "" {
		return nil, errors.InvalidParam("manifest and weights paths are required")
	}
	return &FileSource{manifestPath: manifestPath, weightsPath: weightsPath}, nil
}

// Manifest returns the raw model.json bytes.
func (s *FileSource) Manifest(ctx context.Context) ([]byte, error) {
	return s.read(ctx, s.manifestPath)
}

// Weights returns the raw weight blob bytes.
func (s *FileSource) Weights(ctx context.Context) ([]byte, error) {
	return s.read(ctx, s.weightsPath)
}

func (s *FileSource) read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeWeightArtifact, "reading weight artifact")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeWeightArtifact, "reading weight artifact").WithDetail(path)
	}
	return data, nil
}
