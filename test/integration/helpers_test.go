package integration

import (
	"encoding/binary"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/byestunting/byestunting/internal/assessment"
	"github.com/byestunting/byestunting/internal/config"
	"github.com/byestunting/byestunting/internal/content"
	"github.com/byestunting/byestunting/internal/healthdata"
	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/logging"
	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/prometheus"
	"github.com/byestunting/byestunting/internal/infrastructure/storage/weights"
	"github.com/byestunting/byestunting/internal/intelligence/stuntnet"
	httpserver "github.com/byestunting/byestunting/internal/interfaces/http"
	"github.com/byestunting/byestunting/internal/interfaces/http/handlers"
	"github.com/byestunting/byestunting/internal/messages"
)

// manifestJSON declares the network's six parameter tensors in the
// TensorFlow.js model.json layout.
const manifestJSON = `{
  "weightsManifest": [
    {
      "paths": ["group1-shard1of1.bin"],
      "weights": [
        {"name": "sequential/dense/kernel", "shape": [4, 128], "dtype": "float32"},
        {"name": "sequential/dense/bias", "shape": [128], "dtype": "float32"},
        {"name": "sequential/dense_1/kernel", "shape": [128, 64], "dtype": "float32"},
        {"name": "sequential/dense_1/bias", "shape": [64], "dtype": "float32"},
        {"name": "sequential/dense_2/kernel", "shape": [64, 3], "dtype": "float32"},
        {"name": "sequential/dense_2/bias", "shape": [3], "dtype": "float32"}
      ]
    }
  ]
}`

// totalFloats is the parameter count of the 4-128-64-3 architecture.
const totalFloats = 4*128 + 128 + 128*64 + 64 + 64*3 + 3

// writeModelArtifacts writes a manifest and a weight blob to dir. All
// weights are zero except the output-layer bias, set from b3 so the softmax
// result is steered to a known class regardless of input.
func writeModelArtifacts(t *testing.T, dir string, b3 [3]float64) (manifestPath, weightsPath string) {
	t.Helper()

	manifestPath = filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifestJSON), 0o644))

	blob := make([]byte, totalFloats*4)
	offset := len(blob) - 3*4
	for i, v := range b3 {
		binary.LittleEndian.PutUint32(blob[offset+i*4:], math.Float32bits(float32(v)))
	}

	weightsPath = filepath.Join(dir, "group1-shard1of1.bin")
	require.NoError(t, os.WriteFile(weightsPath, blob, 0o644))
	return manifestPath, weightsPath
}

// newStack wires the application the way the serve command does, returning
// the assembled router.
func newStack(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	logger := logging.NewNopLogger()

	source, err := weights.New(cfg, logger)
	require.NoError(t, err)

	engine, err := stuntnet.NewCachedEngine(source, cfg.Model.Timeout, logger)
	require.NoError(t, err)
	t.Cleanup(engine.Dispose)

	collector, err := prometheus.NewCollector(cfg.Metrics.Namespace, logger)
	require.NoError(t, err)
	appMetrics := prometheus.NewAppMetrics(collector)

	orchestrator := assessment.NewOrchestrator(engine, nil, logger)
	articleStore := content.NewStore()

	return httpserver.NewRouter(httpserver.RouterConfig{
		PredictionHandler:     handlers.NewPredictionHandler(orchestrator, appMetrics, logger),
		RecommendationHandler: handlers.NewRecommendationHandler(content.NewRecommender(articleStore), appMetrics),
		ArticleHandler:        handlers.NewArticleHandler(articleStore),
		HealthDataHandler:     handlers.NewHealthDataHandler(healthdata.NewCatalog()),
		MessageHandler:        handlers.NewMessageHandler(messages.NewStore()),
		HealthHandler: handlers.NewHealthHandler(config.Version, logger, handlers.ReadinessCheck{
			Name:  "model",
			Probe: engine.Load,
		}),
		Logger:           logger,
		MetricsCollector: collector,
		AppMetrics:       appMetrics,
	})
}
