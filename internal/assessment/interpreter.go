package assessment

import (
	"fmt"
	"math"

	"github.com/byestunting/byestunting/internal/intelligence/stuntnet"
)

// Result is the fully interpreted assessment delivered to clients.
type Result struct {
	Status              Status       `json:"status"`
	Message             string       `json:"message"`
	Recommendations     []string     `json:"recommendations"`
	Score               int          `json:"score"`
	RecommendedArticles []ArticleRef `json:"recommendedArticles"`
}

// Interpret converts a raw network prediction into a client-facing result:
// status, risk score on a 0-100 scale, Indonesian narrative, and the static
// recommendation and article tables for the predicted class.
//
// Score semantics differ per class. A confident "normal" prediction means low
// risk, so its score is the inverted confidence floored at 5. The stunted
// classes map confidence directly into severity bands: 80-95 for severely
// stunted, 60-85 for stunted.
func Interpret(pred *stuntnet.Prediction) *Result {
	var (
		status          Status
		score           int
		narrative       string
		recommendations []string
		articles        []ArticleRef
	)

	switch pred.Class {
	case ClassNormal:
		status = StatusNormal
		score = maxInt(5, int(math.Round((1-pred.Confidence/100)*100)))
		narrative = narrativeNormal
		recommendations = classRecommendations[ClassNormal]
		articles = classArticles[ClassNormal]

	case ClassSeverelyStunted:
		status = StatusStunting
		score = clampInt(int(math.Round(pred.Confidence)), 80, 95)
		narrative = narrativeSeverelyStunted
		recommendations = classRecommendations[ClassSeverelyStunted]
		articles = classArticles[ClassSeverelyStunted]

	case ClassStunted:
		status = StatusStunting
		score = clampInt(int(math.Round(pred.Confidence)), 60, 85)
		narrative = narrativeStunted
		recommendations = classRecommendations[ClassStunted]
		articles = classArticles[ClassStunted]

	default:
		status = StatusAtRisk
		score = 50
		narrative = narrativeUnknown
		recommendations = unknownRecommendations
		articles = unknownArticles
	}

	message := fmt.Sprintf(narrative, pred.Confidence) + probabilityBreakdown(pred.Probabilities)

	return &Result{
		Status:              status,
		Message:             message,
		Recommendations:     recommendations,
		Score:               score,
		RecommendedArticles: articles,
	}
}

// probabilityBreakdown renders the per-class probability appendix attached to
// every model-backed message.
func probabilityBreakdown(probs []float64) string {
	return fmt.Sprintf(
		"\n\nDetail Analisis:\n• Probabilitas Normal: %.1f%%\n• Probabilitas Stunting Berat: %.1f%%\n• Probabilitas Stunting: %.1f%%",
		probs[ClassNormal]*100,
		probs[ClassSeverelyStunted]*100,
		probs[ClassStunted]*100,
	)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
