package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeficitEstimator_Bands(t *testing.T) {
	est := DeficitEstimator{}

	cases := []struct {
		name   string
		in     AnthropometricInput
		status Status
		score  int
	}{
		{
			// expected 57/7.8 for a 24-month-old boy; 40cm is a 29% deficit
			name:   "severe height deficit",
			in:     AnthropometricInput{AgeMonths: 24, Sex: SexMale, HeightCm: 40, WeightKg: 7.8},
			status: StatusStunting,
			score:  80,
		},
		{
			// weight deficit 35% with height on curve
			name:   "severe weight deficit",
			in:     AnthropometricInput{AgeMonths: 24, Sex: SexMale, HeightCm: 57, WeightKg: 5},
			status: StatusStunting,
			score:  80,
		},
		{
			// height deficit ~12%, weight on curve
			name:   "moderate height deficit",
			in:     AnthropometricInput{AgeMonths: 24, Sex: SexMale, HeightCm: 50, WeightKg: 7.8},
			status: StatusAtRisk,
			score:  60,
		},
		{
			name:   "on curve",
			in:     AnthropometricInput{AgeMonths: 24, Sex: SexMale, HeightCm: 57, WeightKg: 7.8},
			status: StatusNormal,
			score:  15,
		},
		{
			// taller and heavier than expected is normal, not a negative band
			name:   "above curve",
			in:     AnthropometricInput{AgeMonths: 43, Sex: SexMale, HeightCm: 85.5, WeightKg: 10.5},
			status: StatusNormal,
			score:  15,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := est.Estimate(tc.in)
			assert.Equal(t, tc.status, result.Status)
			assert.Equal(t, tc.score, result.Score)
			assert.NotEmpty(t, result.Message)
			assert.NotEmpty(t, result.Recommendations)
			assert.NotEmpty(t, result.RecommendedArticles)
		})
	}
}

func TestDeficitEstimator_SexSpecificCurves(t *testing.T) {
	est := DeficitEstimator{}

	male := est.Estimate(AnthropometricInput{AgeMonths: 0, Sex: SexMale, HeightCm: 40.4, WeightKg: 3})
	female := est.Estimate(AnthropometricInput{AgeMonths: 0, Sex: SexFemale, HeightCm: 40.4, WeightKg: 3})

	// 40.4cm is a 10.2% deficit against 45 (male) but 8.2% against 44.
	assert.Equal(t, StatusAtRisk, male.Status)
	assert.Equal(t, StatusNormal, female.Status)
}

func TestAgeBandEstimator_Bands(t *testing.T) {
	est := AgeBandEstimator{}

	cases := []struct {
		name   string
		in     AnthropometricInput
		status Status
		score  int
	}{
		{
			name:   "under 24mo stunting",
			in:     AnthropometricInput{AgeMonths: 18, Sex: SexMale, HeightCm: 75, WeightKg: 8},
			status: StatusStunting,
			score:  85,
		},
		{
			name:   "under 24mo at risk",
			in:     AnthropometricInput{AgeMonths: 18, Sex: SexMale, HeightCm: 83, WeightKg: 9.5},
			status: StatusAtRisk,
			score:  65,
		},
		{
			name:   "under 24mo normal",
			in:     AnthropometricInput{AgeMonths: 18, Sex: SexMale, HeightCm: 86, WeightKg: 11},
			status: StatusNormal,
			score:  15,
		},
		{
			name:   "over 24mo stunting",
			in:     AnthropometricInput{AgeMonths: 40, Sex: SexFemale, HeightCm: 90, WeightKg: 11},
			status: StatusStunting,
			score:  80,
		},
		{
			name:   "over 24mo at risk",
			in:     AnthropometricInput{AgeMonths: 40, Sex: SexFemale, HeightCm: 98, WeightKg: 13},
			status: StatusAtRisk,
			score:  60,
		},
		{
			name:   "over 24mo normal",
			in:     AnthropometricInput{AgeMonths: 40, Sex: SexFemale, HeightCm: 102, WeightKg: 15},
			status: StatusNormal,
			score:  10,
		},
		{
			// both thresholds must fail to drop a band
			name:   "short but heavy enough",
			in:     AnthropometricInput{AgeMonths: 40, Sex: SexFemale, HeightCm: 90, WeightKg: 15},
			status: StatusNormal,
			score:  10,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := est.Estimate(tc.in)
			assert.Equal(t, tc.status, result.Status)
			assert.Equal(t, tc.score, result.Score)
		})
	}
}

func TestEstimators_ResultShapeMatchesInterpreter(t *testing.T) {
	// Both fallback rule sets must produce results structurally identical to
	// the model path so clients never branch on the source.
	for _, est := range []FallbackEstimator{DeficitEstimator{}, AgeBandEstimator{}} {
		result := est.Estimate(validInput())

		assert.NotEmpty(t, result.Status)
		assert.NotEmpty(t, result.Message)
		assert.NotEmpty(t, result.Recommendations)
		assert.NotZero(t, result.Score)
		assert.NotEmpty(t, result.RecommendedArticles)
	}
}
