package healthdata

// ProvinceStat is the stunting prevalence for one province, in percent.
type ProvinceStat struct {
	Province   string  `json:"province"`
	Prevalence float64 `json:"prevalence"`
}

// AgeStat is the stunting prevalence for one age band, in percent.
type AgeStat struct {
	AgeGroup   string  `json:"ageGroup"`
	Prevalence float64 `json:"prevalence"`
}

var provinceStats = []ProvinceStat{
	{Province: "NTT", Prevalence: 37.8},
	{Province: "Sulawesi Barat", Prevalence: 34.5},
	{Province: "Papua", Prevalence: 32.8},
	{Province: "NTB", Prevalence: 31.4},
	{Province: "Kalimantan Barat", Prevalence: 30.5},
	{Province: "Sulawesi Tengah", Prevalence: 29.8},
	{Province: "Aceh", Prevalence: 29.2},
	{Province: "Kalimantan Tengah", Prevalence: 28.5},
	{Province: "Sulawesi Selatan", Prevalence: 28.0},
	{Province: "Maluku", Prevalence: 27.7},
}

var ageStats = []AgeStat{
	{AgeGroup: "0-6 bulan", Prevalence: 99.5},
	{AgeGroup: "6-12 bulan", Prevalence: 17.8},
	{AgeGroup: "12-24 bulan", Prevalence: 30.2},
	{AgeGroup: "24-36 bulan", Prevalence: 25.6},
	{AgeGroup: "36-48 bulan", Prevalence: 22.3},
	{AgeGroup: "48-59 bulan", Prevalence: 19.7},
}

// ProvinceStats returns the provinces with the highest stunting prevalence,
// highest first.
func (c *Catalog) ProvinceStats() []ProvinceStat {
	stats := make([]ProvinceStat, len(provinceStats))
	copy(stats, provinceStats)
	return stats
}

// AgeStats returns prevalence per age band in ascending band order.
func (c *Catalog) AgeStats() []AgeStat {
	stats := make([]AgeStat, len(ageStats))
	copy(stats, ageStats)
	return stats
}
