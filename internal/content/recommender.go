package content

import (
	"sort"

	"github.com/byestunting/byestunting/internal/assessment"
	"github.com/byestunting/byestunting/pkg/errors"
)

// Age group boundaries in months.
const (
	maxBabyAge    = 12
	maxToddlerAge = 36
)

const recommendationLimit = 5

// statusWeights boost categories by how urgent the assessment outcome is.
// A stunting result pushes nutrition content hardest; a normal result leans
// toward general knowledge and development.
var statusWeights = map[assessment.Status]map[string]float64{
	assessment.StatusNormal: {
		CategoryBasics:      0.3,
		CategoryNutrition:   0.2,
		CategoryTips:        0.2,
		CategoryDevelopment: 0.3,
		CategoryRecipes:     0.2,
	},
	assessment.StatusAtRisk: {
		CategoryBasics:      0.4,
		CategoryNutrition:   0.5,
		CategoryTips:        0.4,
		CategoryDevelopment: 0.2,
		CategoryRecipes:     0.3,
	},
	assessment.StatusStunting: {
		CategoryBasics:      0.5,
		CategoryNutrition:   0.6,
		CategoryTips:        0.4,
		CategoryDevelopment: 0.2,
		CategoryRecipes:     0.4,
	},
}

// ageWeights boost categories by age group: baby ≤12 months, toddler ≤36,
// preschool above.
var ageWeights = map[string]map[string]float64{
	"baby": {
		CategoryBasics:      0.3,
		CategoryNutrition:   0.5,
		CategoryTips:        0.3,
		CategoryDevelopment: 0.4,
		CategoryRecipes:     0.2,
	},
	"toddler": {
		CategoryBasics:      0.2,
		CategoryNutrition:   0.4,
		CategoryTips:        0.4,
		CategoryDevelopment: 0.3,
		CategoryRecipes:     0.4,
	},
	"preschool": {
		CategoryBasics:      0.2,
		CategoryNutrition:   0.3,
		CategoryTips:        0.4,
		CategoryDevelopment: 0.3,
		CategoryRecipes:     0.3,
	},
}

// RecommendationInput selects articles for a child with a known assessment
// status.
type RecommendationInput struct {
	Status    assessment.Status `json:"status"`
	AgeMonths float64           `json:"usia"`
	Sex       string            `json:"jenisKelamin"`
}

// Validate checks the status literal and age range.
func (in RecommendationInput) Validate() error {
	var details []string

	switch in.Status {
	case assessment.StatusNormal, assessment.StatusAtRisk, assessment.StatusStunting:
	default:
		details = append(details, "Status harus 'normal', 'berisiko', atau 'stunting'")
	}
	if in.AgeMonths < assessment.MinAgeMonths || in.AgeMonths > assessment.MaxAgeMonths {
		details = append(details, "Usia harus antara 0-60 bulan")
	}

	if len(details) > 0 {
		return errors.Validation(details...)
	}
	return nil
}

// Recommender ranks the catalog for an assessment outcome.
type Recommender struct {
	store *Store
}

// NewRecommender creates a recommender over store.
func NewRecommender(store *Store) *Recommender {
	return &Recommender{store: store}
}

// Recommend scores every article as base relevance + status weight + age
// weight for its category and returns the top five, highest first. The
// returned articles carry their final score in Relevance.
func (r *Recommender) Recommend(in RecommendationInput) ([]Article, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	group := ageGroup(in.AgeMonths)

	scored := r.store.List(ListFilter{})
	for i := range scored {
		category := scored[i].Category
		scored[i].Relevance += statusWeights[in.Status][category] + ageWeights[group][category]
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Relevance > scored[j].Relevance
	})

	if len(scored) > recommendationLimit {
		scored = scored[:recommendationLimit]
	}
	return scored, nil
}

func ageGroup(ageMonths float64) string {
	switch {
	case ageMonths <= maxBabyAge:
		return "baby"
	case ageMonths <= maxToddlerAge:
		return "toddler"
	default:
		return "preschool"
	}
}
