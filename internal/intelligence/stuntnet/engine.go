package stuntnet

import (
	"context"
	"sync"
	"time"

	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/logging"
	"github.com/byestunting/byestunting/pkg/errors"
)

// WeightSource abstracts where the model artifacts live. Implementations are
// provided by internal/infrastructure/storage/weights (filesystem, MinIO).
type WeightSource interface {
	// Manifest returns the raw model.json document.
	Manifest(ctx context.Context) ([]byte, error)
	// Weights returns the raw binary blob of concatenated float32 values.
	Weights(ctx context.Context) ([]byte, error)
}

// Prediction is the raw model output for a single normalized feature vector.
type Prediction struct {
	// Probabilities is the softmax distribution over the three classes,
	// indexed 0=normal, 1=severely stunted, 2=stunted.
	Probabilities []float64

	// Class is the argmax index of Probabilities.
	Class int

	// Confidence is the maximum probability expressed on a 0–100 scale.
	Confidence float64
}

// Engine owns the trained network. Implementations must be safe for
// concurrent use; the underlying numeric backend is swappable without
// touching the orchestrator or interpreter.
type Engine interface {
	// Load constructs the network and populates its weights. Idempotent:
	// once a load succeeds, subsequent calls return immediately.
	Load(ctx context.Context) error

	// Predict runs the forward pass on a normalized 4-feature vector,
	// loading the network first if necessary. The combined load+predict
	// duration is bounded by the engine's configured timeout.
	Predict(ctx context.Context, vector []float64) (*Prediction, error)

	// Dispose drops the cached network so the next Predict reloads from
	// the weight source. Used by tests and operational model swaps.
	Dispose()
}

// CachedEngine implements Engine with a process-wide cached network: loaded
// on first use, reused for the process lifetime. Only successful loads are
// cached; a failed attempt leaves the cache empty so the next request
// retries fresh rather than poisoning all future predictions.
type CachedEngine struct {
	source  WeightSource
	timeout time.Duration
	logger  logging.Logger

	mu  sync.Mutex
	net *Network
}

// NewCachedEngine creates an engine reading artifacts from source. A
// non-positive timeout disables the deadline (tests only; production config
// validation enforces a positive value).
func NewCachedEngine(source WeightSource, timeout time.Duration, logger logging.Logger) (*CachedEngine, error) {
	if source == nil {
		return nil, errors.InvalidParam("weight source is required")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &CachedEngine{source: source, timeout: timeout, logger: logger}, nil
}

// Load fetches and decodes the weight artifacts, then caches the assembled
// network. Concurrent first-requests serialise on the internal mutex so the
// cache is populated exactly once.
func (e *CachedEngine) Load(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loadLocked(ctx)
}

func (e *CachedEngine) loadLocked(ctx context.Context) error {
	if e.net != nil {
		return nil
	}

	start := time.Now()

	manifestData, err := e.source.Manifest(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CodeModelLoad, "fetching weight manifest")
	}
	blob, err := e.source.Weights(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CodeModelLoad, "fetching weight blob")
	}

	manifest, err := ParseManifest(manifestData)
	if err != nil {
		return err
	}
	tensors, err := DecodeWeights(manifest, blob)
	if err != nil {
		return err
	}
	net, err := NewNetwork(tensors)
	if err != nil {
		return err
	}

	e.net = net
	e.logger.Info("model loaded",
		logging.Int("tensors", len(tensors)),
		logging.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// Predict runs load (if needed) plus the forward pass under the engine
// timeout. A deadline overrun surfaces as a model-timeout error; the network
// computation itself runs on a separate goroutine so the caller is released
// as soon as the deadline passes.
func (e *CachedEngine) Predict(ctx context.Context, vector []float64) (*Prediction, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	type outcome struct {
		pred *Prediction
		err  error
	}
	done := make(chan outcome, 1)

	go func() {
		if err := e.Load(ctx); err != nil {
			done <- outcome{err: err}
			return
		}

		e.mu.Lock()
		net := e.net
		e.mu.Unlock()
		if net == nil {
			done <- outcome{err: errors.Inference("network not loaded")}
			return
		}

		probs, err := net.Forward(vector)
		if err != nil {
			done <- outcome{err: err}
			return
		}

		class := 0
		for i, p := range probs {
			if p > probs[class] {
				class = i
			}
		}
		done <- outcome{pred: &Prediction{
			Probabilities: probs,
			Class:         class,
			Confidence:    probs[class] * 100,
		}}
	}()

	select {
	case out := <-done:
		return out.pred, out.err
	case <-ctx.Done():
		return nil, errors.ModelTimeout("load+predict exceeded deadline").WithCause(ctx.Err())
	}
}

// Dispose drops the cached network.
func (e *CachedEngine) Dispose() {
	e.mu.Lock()
	e.net = nil
	e.mu.Unlock()
}
