package content

// seedArticles is the built-in catalog. Relevance is the base score the
// recommender builds on; view and like counts give the popular listing a
// sensible initial ordering.
var seedArticles = []Article{
	{
		ID:        1,
		Slug:      "mengenal-stunting-dan-dampaknya-pada-anak",
		Title:     "Mengenal Stunting dan Dampaknya pada Anak",
		Excerpt:   "Stunting adalah kondisi gagal tumbuh pada anak akibat kekurangan gizi kronis. Ketahui dampak jangka panjangnya pada perkembangan anak.",
		Category:  CategoryBasics,
		Relevance: 0.95,
		ViewCount: 1520,
		LikeCount: 231,
	},
	{
		ID:        2,
		Slug:      "nutrisi-penting-untuk-mencegah-stunting",
		Title:     "Nutrisi Penting untuk Mencegah Stunting",
		Excerpt:   "Pelajari nutrisi-nutrisi penting yang harus diberikan pada anak untuk mencegah stunting dan mendukung pertumbuhan optimal.",
		Category:  CategoryNutrition,
		Relevance: 0.9,
		ViewCount: 1204,
		LikeCount: 198,
	},
	{
		ID:        3,
		Slug:      "pola-makan-seimbang-untuk-anak-usia-1-3-tahun",
		Title:     "Pola Makan Seimbang untuk Anak Usia 1-3 Tahun",
		Excerpt:   "Panduan lengkap menyusun menu seimbang untuk anak usia 1-3 tahun yang mendukung pertumbuhan dan mencegah stunting.",
		Category:  CategoryNutrition,
		Relevance: 0.85,
		ViewCount: 987,
		LikeCount: 154,
	},
	{
		ID:        4,
		Slug:      "pentingnya-1000-hari-pertama-kehidupan",
		Title:     "Pentingnya 1000 Hari Pertama Kehidupan",
		Excerpt:   "1000 hari pertama kehidupan adalah periode kritis untuk pertumbuhan dan perkembangan anak. Ketahui mengapa periode ini sangat penting.",
		Category:  CategoryBasics,
		Relevance: 0.8,
		ViewCount: 1105,
		LikeCount: 176,
	},
	{
		ID:        5,
		Slug:      "cara-memantau-pertumbuhan-anak-dengan-benar",
		Title:     "Cara Memantau Pertumbuhan Anak dengan Benar",
		Excerpt:   "Panduan praktis untuk memantau pertumbuhan anak secara berkala dan mengenali tanda-tanda stunting sejak dini.",
		Category:  CategoryTips,
		Relevance: 0.75,
		ViewCount: 834,
		LikeCount: 121,
	},
	{
		ID:        6,
		Slug:      "resep-makanan-bergizi-untuk-balita",
		Title:     "Resep Makanan Bergizi untuk Balita",
		Excerpt:   "Kumpulan resep makanan bergizi yang mudah dibuat dan disukai anak-anak untuk mendukung pertumbuhan optimal.",
		Category:  CategoryRecipes,
		Relevance: 0.7,
		ViewCount: 1390,
		LikeCount: 243,
	},
	{
		ID:        7,
		Slug:      "stimulasi-untuk-perkembangan-otak-anak",
		Title:     "Stimulasi untuk Perkembangan Otak Anak",
		Excerpt:   "Berbagai aktivitas stimulasi yang dapat dilakukan untuk mendukung perkembangan otak anak secara optimal.",
		Category:  CategoryDevelopment,
		Relevance: 0.65,
		ViewCount: 726,
		LikeCount: 98,
	},
	{
		ID:        8,
		Slug:      "mengatasi-anak-susah-makan",
		Title:     "Mengatasi Anak Susah Makan",
		Excerpt:   "Tips dan trik untuk mengatasi anak yang susah makan agar tetap mendapatkan asupan gizi yang cukup.",
		Category:  CategoryTips,
		Relevance: 0.6,
		ViewCount: 912,
		LikeCount: 134,
	},
	{
		ID:        9,
		Slug:      "peran-asi-dalam-mencegah-stunting",
		Title:     "Peran ASI dalam Mencegah Stunting",
		Excerpt:   "Pentingnya ASI eksklusif dan ASI lanjutan dalam mencegah stunting pada anak.",
		Category:  CategoryNutrition,
		Relevance: 0.55,
		ViewCount: 645,
		LikeCount: 87,
	},
	{
		ID:        10,
		Slug:      "suplemen-gizi-untuk-anak-kapan-dibutuhkan",
		Title:     "Suplemen Gizi untuk Anak: Kapan Dibutuhkan?",
		Excerpt:   "Panduan tentang kapan anak membutuhkan suplemen gizi tambahan dan jenis suplemen yang aman.",
		Category:  CategoryNutrition,
		Relevance: 0.5,
		ViewCount: 518,
		LikeCount: 62,
	},
}
