package assessment

// FallbackEstimator produces an assessment without the network, used when
// model artifacts are unavailable or inference times out. Implementations are
// pure rule sets over the raw measurements.
type FallbackEstimator interface {
	Estimate(in AnthropometricInput) *Result
}

// DeficitEstimator is the default fallback: percentage deficit against
// sex-specific linear expected-growth curves. The curves are deliberately
// coarse; this path exists to keep the service answering while the model is
// down, not to match it.
type DeficitEstimator struct{}

// Estimate computes height and weight deficits as percentages of the expected
// values for the child's age and sex, then bands them into the three
// statuses.
func (DeficitEstimator) Estimate(in AnthropometricInput) *Result {
	var expectedHeight, expectedWeight float64
	if in.Sex == SexMale {
		expectedHeight = 45 + in.AgeMonths*0.5
		expectedWeight = 3 + in.AgeMonths*0.2
	} else {
		expectedHeight = 44 + in.AgeMonths*0.5
		expectedWeight = 3 + in.AgeMonths*0.19
	}

	heightDeficit := (expectedHeight - in.HeightCm) / expectedHeight * 100
	weightDeficit := (expectedWeight - in.WeightKg) / expectedWeight * 100

	switch {
	case heightDeficit > 20 || weightDeficit > 25:
		return &Result{
			Status: StatusStunting,
			Message: "Anak Anda terdeteksi mengalami stunting berdasarkan analisis sederhana. " +
				"Segera konsultasikan dengan tenaga kesehatan.",
			Score: 80,
			Recommendations: []string{
				"Konsultasikan dengan dokter anak atau ahli gizi segera",
				"Berikan makanan tinggi protein dan kalsium",
				"Pastikan anak mendapatkan asupan vitamin A dan D yang cukup",
				"Lakukan pemeriksaan kesehatan menyeluruh",
			},
			RecommendedArticles: []ArticleRef{
				{ID: 1, Title: "Mengenal Stunting dan Dampaknya pada Anak", Category: "Pengetahuan Dasar"},
				{ID: 2, Title: "Nutrisi Penting untuk Mencegah Stunting", Category: "Nutrisi"},
				{ID: 6, Title: "Resep Makanan Bergizi untuk Balita", Category: "Resep"},
			},
		}

	case heightDeficit > 10 || weightDeficit > 15:
		return &Result{
			Status:  StatusAtRisk,
			Message: "Anak Anda berisiko mengalami stunting berdasarkan analisis sederhana. Perlu perhatian khusus.",
			Score:   60,
			Recommendations: []string{
				"Tingkatkan asupan gizi seimbang",
				"Berikan makanan kaya protein dan kalsium",
				"Pantau pertumbuhan secara berkala",
				"Konsultasikan dengan ahli gizi",
			},
			RecommendedArticles: []ArticleRef{
				{ID: 3, Title: "Pola Makan Seimbang untuk Anak Usia 1-3 Tahun", Category: "Nutrisi"},
				{ID: 5, Title: "Cara Memantau Pertumbuhan Anak dengan Benar", Category: "Tips Praktis"},
			},
		}

	default:
		return &Result{
			Status:  StatusNormal,
			Message: "Pertumbuhan anak Anda normal berdasarkan analisis sederhana.",
			Score:   15,
			Recommendations: []string{
				"Pertahankan pola makan sehat dan seimbang",
				"Lakukan pemeriksaan rutin setiap bulan",
				"Berikan stimulasi yang cukup untuk perkembangan anak",
			},
			RecommendedArticles: []ArticleRef{
				{ID: 4, Title: "Pentingnya 1000 Hari Pertama Kehidupan", Category: "Pengetahuan Dasar"},
			},
		}
	}
}

// AgeBandEstimator is an alternate fallback using absolute height and weight
// thresholds per age band (under and over 24 months). Kept for deployments
// preferring fixed cutoffs over curve deficits; not wired as the default.
type AgeBandEstimator struct{}

// Estimate bands on absolute thresholds: under 24 months the cutoffs are
// 80/85 cm and 9/10 kg, above they are 95/100 cm and 12/14 kg.
func (AgeBandEstimator) Estimate(in AnthropometricInput) *Result {
	type band struct {
		status Status
		score  int
	}

	var b band
	if in.AgeMonths <= 24 {
		switch {
		case in.HeightCm < 80 && in.WeightKg < 9:
			b = band{StatusStunting, 85}
		case in.HeightCm < 85 && in.WeightKg < 10:
			b = band{StatusAtRisk, 65}
		default:
			b = band{StatusNormal, 15}
		}
	} else {
		switch {
		case in.HeightCm < 95 && in.WeightKg < 12:
			b = band{StatusStunting, 80}
		case in.HeightCm < 100 && in.WeightKg < 14:
			b = band{StatusAtRisk, 60}
		default:
			b = band{StatusNormal, 10}
		}
	}

	switch b.status {
	case StatusStunting:
		return &Result{
			Status:  StatusStunting,
			Message: "Anak Anda terdeteksi mengalami stunting.",
			Score:   b.score,
			Recommendations: []string{
				"Konsultasikan dengan dokter anak atau ahli gizi segera",
				"Berikan makanan tinggi protein dan kalsium",
				"Pastikan anak mendapatkan asupan vitamin A dan D yang cukup",
			},
			RecommendedArticles: []ArticleRef{
				{ID: 1, Title: "Mengenal Stunting dan Dampaknya pada Anak", Category: "Pengetahuan Dasar"},
				{ID: 2, Title: "Nutrisi Penting untuk Mencegah Stunting", Category: "Nutrisi"},
				{ID: 6, Title: "Resep Makanan Bergizi untuk Balita", Category: "Resep"},
			},
		}
	case StatusAtRisk:
		return &Result{
			Status:  StatusAtRisk,
			Message: "Anak Anda berisiko mengalami stunting.",
			Score:   b.score,
			Recommendations: []string{
				"Tingkatkan asupan gizi seimbang",
				"Berikan makanan kaya protein dan kalsium",
				"Pantau pertumbuhan secara berkala",
			},
			RecommendedArticles: []ArticleRef{
				{ID: 3, Title: "Pola Makan Seimbang untuk Anak Usia 1-3 Tahun", Category: "Nutrisi"},
				{ID: 5, Title: "Cara Memantau Pertumbuhan Anak dengan Benar", Category: "Tips Praktis"},
			},
		}
	default:
		return &Result{
			Status:  StatusNormal,
			Message: "Pertumbuhan anak Anda normal.",
			Score:   b.score,
			Recommendations: []string{
				"Pertahankan pola makan sehat dan seimbang",
				"Lakukan pemeriksaan rutin setiap bulan",
				"Berikan stimulasi yang cukup untuk perkembangan anak",
			},
			RecommendedArticles: []ArticleRef{
				{ID: 4, Title: "Pentingnya 1000 Hari Pertama Kehidupan", Category: "Pengetahuan Dasar"},
			},
		}
	}
}
