package assessment

import (
	"context"
	"fmt"

	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/logging"
	"github.com/byestunting/byestunting/internal/intelligence/stuntnet"
)

// Model identifiers reported in the Outcome and on the wire.
const (
	ModelNetwork  = "network"
	ModelFallback = "fallback"
)

// degradedNotice is appended to fallback messages so clients can tell a
// rule-based answer from a model-backed one. Takes the captured error text.
const degradedNotice = "\n\n⚠️ Catatan: Menggunakan analisis cadangan karena model ML tidak tersedia. " +
	"Error: %s. Untuk hasil yang lebih akurat, silakan coba lagi nanti."

// Outcome is the orchestrator's answer: the interpreted result plus which
// path produced it. Cause is non-nil only on the fallback path and carries
// the engine failure that triggered it.
type Outcome struct {
	Result    *Result `json:"result"`
	ModelUsed string  `json:"modelUsed"`
	Cause     error   `json:"-"`
}

// Orchestrator runs the full assessment pipeline. Validation failures are
// returned to the caller untouched; every engine failure (load, inference,
// timeout) is absorbed into a fallback outcome so a submitted measurement
// always gets an answer.
type Orchestrator struct {
	engine   stuntnet.Engine
	fallback FallbackEstimator
	logger   logging.Logger
}

// NewOrchestrator wires the pipeline. A nil fallback defaults to the deficit
// estimator.
func NewOrchestrator(engine stuntnet.Engine, fallback FallbackEstimator, logger logging.Logger) *Orchestrator {
	if fallback == nil {
		fallback = DeficitEstimator{}
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Orchestrator{engine: engine, fallback: fallback, logger: logger}
}

// Assess validates the input, runs the network under the engine's deadline,
// and interprets the output. On any engine error it degrades to the rule-based
// estimator, appending a disclosure with the captured error text to the
// message. The only error Assess returns is a validation error.
func (o *Orchestrator) Assess(ctx context.Context, in AnthropometricInput) (*Outcome, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	pred, err := o.engine.Predict(ctx, Normalize(in))
	if err != nil {
		o.logger.Warn("model unavailable, using fallback estimator",
			logging.Err(err),
			logging.Float64("age_months", in.AgeMonths),
		)

		result := o.fallback.Estimate(in)
		result.Message += fmt.Sprintf(degradedNotice, err.Error())

		return &Outcome{Result: result, ModelUsed: ModelFallback, Cause: err}, nil
	}

	o.logger.Debug("model prediction complete",
		logging.Int("class", pred.Class),
		logging.Float64("confidence", pred.Confidence),
	)

	return &Outcome{Result: Interpret(pred), ModelUsed: ModelNetwork}, nil
}
