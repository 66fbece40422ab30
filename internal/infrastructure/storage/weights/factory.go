package weights

import (
	"github.com/byestunting/byestunting/internal/config"
	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/logging"
	"github.com/byestunting/byestunting/internal/intelligence/stuntnet"
	"github.com/byestunting/byestunting/pkg/errors"
)

// New builds the weight source selected by the model configuration.
func New(cfg *config.Config, logger logging.Logger) (stuntnet.WeightSource, error) {
	switch cfg.Model.Source {
	case "fs":
		return NewFileSource(cfg.Model.ManifestPath, cfg.Model.WeightsPath)
	case "minio":
		return NewBucketSource(&cfg.MinIO, logger)
	default:
		return nil, errors.InvalidParam("unknown weight source: " + cfg.Model.Source)
	}
}
