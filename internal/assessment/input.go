// Package assessment implements the stunting-risk assessment pipeline:
// input validation, feature normalization, model-output interpretation,
// rule-based fallback estimation, and the orchestrator tying them together.
package assessment

import (
	"fmt"

	"github.com/byestunting/byestunting/pkg/errors"
)

// Sex wire literals, matching the intake forms.
const (
	SexMale   = "laki-laki"
	SexFemale = "perempuan"
)

// Accepted measurement ranges for children 0-60 months.
const (
	MinAgeMonths = 0
	MaxAgeMonths = 60
	MinWeightKg  = 0.5
	MaxWeightKg  = 30
	MinHeightCm  = 30
	MaxHeightCm  = 120
)

// AnthropometricInput is a single child measurement submitted for assessment.
// Field names on the wire follow the Indonesian intake forms.
type AnthropometricInput struct {
	AgeMonths float64 `json:"usia"`
	Sex       string  `json:"jenisKelamin"`
	WeightKg  float64 `json:"beratBadan"`
	HeightCm  float64 `json:"tinggiBadan"`
}

// Validate checks every constraint and accumulates all violations, so a
// caller submitting several out-of-range fields learns about all of them at
// once. Returns nil when the input is acceptable, otherwise a validation
// AppError carrying the full list.
func (in AnthropometricInput) Validate() error {
	var details []string

	if in.AgeMonths < MinAgeMonths || in.AgeMonths > MaxAgeMonths {
		details = append(details, fmt.Sprintf("Usia harus antara %d-%d bulan", MinAgeMonths, MaxAgeMonths))
	}
	if in.Sex != SexMale && in.Sex != SexFemale {
		details = append(details, fmt.Sprintf("Jenis kelamin harus '%s' atau '%s'", SexMale, SexFemale))
	}
	if in.WeightKg < MinWeightKg || in.WeightKg > MaxWeightKg {
		details = append(details, fmt.Sprintf("Berat badan harus antara %g-%d kg", MinWeightKg, MaxWeightKg))
	}
	if in.HeightCm < MinHeightCm || in.HeightCm > MaxHeightCm {
		details = append(details, fmt.Sprintf("Tinggi badan harus antara %d-%d cm", MinHeightCm, MaxHeightCm))
	}

	if len(details) > 0 {
		return errors.Validation(details...)
	}
	return nil
}

// sexNumeric encodes sex the way the model was trained: 1 for male, 0 for
// female.
func (in AnthropometricInput) sexNumeric() float64 {
	if in.Sex == SexMale {
		return 1
	}
	return 0
}
