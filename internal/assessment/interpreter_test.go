package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byestunting/byestunting/internal/intelligence/stuntnet"
)

func pred(class int, probs []float64) *stuntnet.Prediction {
	return &stuntnet.Prediction{
		Probabilities: probs,
		Class:         class,
		Confidence:    probs[class] * 100,
	}
}

func TestInterpret_NormalScores(t *testing.T) {
	cases := []struct {
		confidence float64
		score      int
	}{
		{90, 10},
		{99, 5},
		{99.9, 5},
		{60, 40},
	}

	for _, tc := range cases {
		p := pred(ClassNormal, []float64{tc.confidence / 100, (100 - tc.confidence) / 200, (100 - tc.confidence) / 200})
		result := Interpret(p)

		assert.Equal(t, StatusNormal, result.Status)
		assert.Equal(t, tc.score, result.Score, "confidence %.1f", tc.confidence)
	}
}

func TestInterpret_SeverelyStuntedScores(t *testing.T) {
	cases := []struct {
		confidence float64
		score      int
	}{
		{50, 80},
		{85, 85},
		{99, 95},
	}

	for _, tc := range cases {
		p := pred(ClassSeverelyStunted, []float64{(100 - tc.confidence) / 200, tc.confidence / 100, (100 - tc.confidence) / 200})
		result := Interpret(p)

		assert.Equal(t, StatusStunting, result.Status)
		assert.Equal(t, tc.score, result.Score, "confidence %.1f", tc.confidence)
	}
}

func TestInterpret_StuntedScores(t *testing.T) {
	cases := []struct {
		confidence float64
		score      int
	}{
		{50, 60},
		{70, 70},
		{90, 85},
	}

	for _, tc := range cases {
		p := pred(ClassStunted, []float64{(100 - tc.confidence) / 200, (100 - tc.confidence) / 200, tc.confidence / 100})
		result := Interpret(p)

		assert.Equal(t, StatusStunting, result.Status)
		assert.Equal(t, tc.score, result.Score, "confidence %.1f", tc.confidence)
	}
}

func TestInterpret_UnknownClass(t *testing.T) {
	p := &stuntnet.Prediction{Probabilities: []float64{0.34, 0.33, 0.33}, Class: 7, Confidence: 34}
	result := Interpret(p)

	assert.Equal(t, StatusAtRisk, result.Status)
	assert.Equal(t, 50, result.Score)
	assert.Len(t, result.Recommendations, 3)
	assert.Len(t, result.RecommendedArticles, 1)
}

func TestInterpret_TableSizes(t *testing.T) {
	assert.Len(t, classRecommendations[ClassNormal], 6)
	assert.Len(t, classRecommendations[ClassSeverelyStunted], 8)
	assert.Len(t, classRecommendations[ClassStunted], 8)
	assert.Len(t, classArticles[ClassNormal], 3)
	assert.Len(t, classArticles[ClassSeverelyStunted], 5)
	assert.Len(t, classArticles[ClassStunted], 5)
}

func TestInterpret_MessageBreakdown(t *testing.T) {
	p := pred(ClassNormal, []float64{0.855, 0.093, 0.052})
	result := Interpret(p)

	require.Contains(t, result.Message, "NORMAL")
	assert.Contains(t, result.Message, "85.5%")
	assert.Contains(t, result.Message, "Probabilitas Normal: 85.5%")
	assert.Contains(t, result.Message, "Probabilitas Stunting Berat: 9.3%")
	assert.Contains(t, result.Message, "Probabilitas Stunting: 5.2%")
}
