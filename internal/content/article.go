// Package content holds the education article catalog and the recommendation
// scorer that ranks articles against an assessment outcome.
package content

// Article is a published education article. Counters are mutable through the
// store; everything else is fixed seed data.
type Article struct {
	ID        int     `json:"id"`
	Slug      string  `json:"slug"`
	Title     string  `json:"title"`
	Excerpt   string  `json:"excerpt"`
	Category  string  `json:"category"`
	Relevance float64 `json:"relevanceScore"`
	ViewCount int     `json:"view_count"`
	LikeCount int     `json:"like_count"`
}

// Article categories used by the seed data and the scorer weight tables.
const (
	CategoryBasics      = "Pengetahuan Dasar"
	CategoryNutrition   = "Nutrisi"
	CategoryTips        = "Tips Praktis"
	CategoryDevelopment = "Perkembangan Anak"
	CategoryRecipes     = "Resep"
)
