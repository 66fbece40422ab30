package healthdata

// seedRecords is the built-in catalog of published health datasets and
// guidelines.
var seedRecords = []Record{
	{
		ID:          1,
		Title:       "Data Stunting Nasional 2025",
		Source:      "Kementerian Kesehatan RI",
		Description: "Data prevalensi stunting di Indonesia berdasarkan provinsi tahun 2025",
		URL:         "https://api.kesehatan.go.id/stunting/nasional",
		LastUpdated: "2025-05-10",
		Category:    "Statistik Nasional",
		AccessLevel: AccessPublic,
	},
	{
		ID:          2,
		Title:       "Panduan Gizi Seimbang untuk Anak",
		Source:      "Direktorat Gizi Masyarakat",
		Description: "Panduan resmi tentang gizi seimbang untuk anak usia 0-5 tahun",
		URL:         "https://api.kesehatan.go.id/gizi/panduan",
		LastUpdated: "2025-04-15",
		Category:    "Panduan",
		AccessLevel: AccessPublic,
	},
	{
		ID:          3,
		Title:       "Standar Antropometri WHO",
		Source:      "WHO Indonesia",
		Description: "Standar antropometri WHO untuk pemantauan pertumbuhan anak",
		URL:         "https://api.who.int/anthropometry/standards",
		LastUpdated: "2025-03-22",
		Category:    "Standar",
		AccessLevel: AccessPublic,
	},
	{
		ID:          4,
		Title:       "Data Stunting per Kabupaten/Kota",
		Source:      "Kementerian Kesehatan RI",
		Description: "Data prevalensi stunting per kabupaten/kota di Indonesia",
		URL:         "https://api.kesehatan.go.id/stunting/kabupaten",
		LastUpdated: "2025-05-05",
		Category:    "Statistik Daerah",
		AccessLevel: AccessRestricted,
	},
	{
		ID:          5,
		Title:       "Indikator Pemantauan Pertumbuhan Anak",
		Source:      "Ikatan Dokter Anak Indonesia",
		Description: "Indikator resmi untuk pemantauan pertumbuhan anak Indonesia",
		URL:         "https://api.idai.or.id/pertumbuhan/indikator",
		LastUpdated: "2025-02-18",
		Category:    "Panduan",
		AccessLevel: AccessRestricted,
	},
	{
		ID:          6,
		Title:       "Peta Sebaran Stunting Indonesia",
		Source:      "Badan Penelitian dan Pengembangan Kesehatan",
		Description: "Data geospasial sebaran stunting di Indonesia",
		URL:         "https://api.litbangkes.go.id/stunting/peta",
		LastUpdated: "2025-04-30",
		Category:    "Peta",
		AccessLevel: AccessRestricted,
	},
}
