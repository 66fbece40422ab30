package assessment

// StandardScaler parameters fitted on the training dataset. Feature order is
// [age_months, sex_numeric, height_cm, weight_kg] and must match the order
// the network was trained with; swapping height and weight silently degrades
// every prediction, which is why Normalize owns the ordering.
var (
	scalerMeans  = [4]float64{30.96875, 0.5078125, 86.484375, 11.640625}
	scalerScales = [4]float64{17.734375, 0.5, 12.265625, 2.828125}
)

// Normalize maps a validated input onto the model's 4-feature vector using
// the training-time StandardScaler: (x - mean) / scale per feature. Pure and
// deterministic.
func Normalize(in AnthropometricInput) []float64 {
	raw := [4]float64{in.AgeMonths, in.sexNumeric(), in.HeightCm, in.WeightKg}

	vector := make([]float64, len(raw))
	for i, v := range raw {
		vector[i] = (v - scalerMeans[i]) / scalerScales[i]
	}
	return vector
}
