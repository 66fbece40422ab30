package assessment

// Status is the assessment outcome category exposed to clients.
type Status string

const (
	StatusNormal   Status = "normal"
	StatusAtRisk   Status = "berisiko"
	StatusStunting Status = "stunting"
)

// ArticleRef points at an education article surfaced alongside a result.
type ArticleRef struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// Model output classes. The training labels were 0=normal, 1=severely
// stunted, 2=stunted; note that 1 is the more severe of the two stunted
// classes.
const (
	ClassNormal          = 0
	ClassSeverelyStunted = 1
	ClassStunted         = 2
)

// Narrative templates per class. Each takes the confidence percentage as a
// single %.1f argument.
const (
	narrativeNormal = "Berdasarkan analisis machine learning dengan model yang telah dilatih menggunakan bobot asli, " +
		"pertumbuhan anak Anda berada dalam kategori NORMAL dengan tingkat kepercayaan %.1f%%."
	narrativeSeverelyStunted = "Berdasarkan analisis machine learning dengan model yang telah dilatih menggunakan bobot asli, " +
		"anak Anda terdeteksi mengalami STUNTING BERAT dengan tingkat kepercayaan %.1f%%. " +
		"Segera konsultasikan dengan tenaga kesehatan."
	narrativeStunted = "Berdasarkan analisis machine learning dengan model yang telah dilatih menggunakan bobot asli, " +
		"anak Anda terdeteksi mengalami STUNTING dengan tingkat kepercayaan %.1f%%. " +
		"Diperlukan intervensi segera."
	narrativeUnknown = "Hasil prediksi tidak dapat ditentukan dengan pasti (confidence: %.1f%%). " +
		"Disarankan untuk konsultasi dengan tenaga kesehatan."
)

var classRecommendations = map[int][]string{
	ClassNormal: {
		"Pertahankan pola makan sehat dan seimbang yang sudah baik",
		"Lakukan pemeriksaan rutin setiap bulan untuk memantau pertumbuhan",
		"Berikan stimulasi yang cukup untuk perkembangan kognitif dan motorik anak",
		"Pastikan anak mendapatkan imunisasi lengkap sesuai jadwal",
		"Jaga kebersihan lingkungan dan personal hygiene",
		"Berikan ASI eksklusif hingga 6 bulan dan dilanjutkan hingga 2 tahun",
	},
	ClassSeverelyStunted: {
		"SEGERA konsultasikan dengan dokter anak atau ahli gizi spesialis",
		"Ikuti program intervensi gizi intensif dari puskesmas atau rumah sakit",
		"Berikan makanan tinggi protein berkualitas (telur, ikan, daging, kacang-kacangan)",
		"Pastikan asupan kalsium dan vitamin D yang cukup untuk pertumbuhan tulang",
		"Lakukan pemeriksaan kesehatan menyeluruh untuk mendeteksi penyakit penyerta",
		"Pantau pertumbuhan setiap minggu dengan ketat",
		"Berikan suplemen gizi sesuai anjuran dokter",
		"Evaluasi pola makan dan gaya hidup keluarga secara menyeluruh",
	},
	ClassStunted: {
		"Konsultasikan dengan dokter anak atau ahli gizi dalam waktu dekat",
		"Tingkatkan asupan gizi dengan fokus pada protein dan mikronutrien",
		"Berikan makanan padat gizi seperti telur, ikan, sayuran hijau, dan buah-buahan",
		"Ikuti program pemulihan gizi dari fasilitas kesehatan terdekat",
		"Lakukan pemeriksaan kesehatan untuk mendeteksi masalah kesehatan lain",
		"Pantau pertumbuhan setiap 2 minggu",
		"Pastikan kebersihan makanan dan lingkungan",
		"Evaluasi praktik pemberian makan dan pola asuh",
	},
}

var unknownRecommendations = []string{
	"Konsultasikan dengan dokter anak untuk evaluasi lebih lanjut",
	"Lakukan pemeriksaan pertumbuhan secara berkala",
	"Tingkatkan kualitas asupan gizi harian",
}

var classArticles = map[int][]ArticleRef{
	ClassNormal: {
		{ID: 4, Title: "Pentingnya 1000 Hari Pertama Kehidupan", Category: "Pengetahuan Dasar"},
		{ID: 7, Title: "Stimulasi untuk Perkembangan Otak Anak", Category: "Perkembangan Anak"},
		{ID: 3, Title: "Pola Makan Seimbang untuk Anak Usia 1-3 Tahun", Category: "Nutrisi"},
	},
	ClassSeverelyStunted: {
		{ID: 1, Title: "Mengenal Stunting dan Dampaknya pada Anak", Category: "Pengetahuan Dasar"},
		{ID: 2, Title: "Nutrisi Penting untuk Mencegah Stunting", Category: "Nutrisi"},
		{ID: 6, Title: "Resep Makanan Bergizi untuk Balita", Category: "Resep"},
		{ID: 9, Title: "Peran ASI dalam Mencegah Stunting", Category: "Nutrisi"},
		{ID: 10, Title: "Suplemen Gizi untuk Anak: Kapan Dibutuhkan?", Category: "Nutrisi"},
	},
	ClassStunted: {
		{ID: 1, Title: "Mengenal Stunting dan Dampaknya pada Anak", Category: "Pengetahuan Dasar"},
		{ID: 2, Title: "Nutrisi Penting untuk Mencegah Stunting", Category: "Nutrisi"},
		{ID: 6, Title: "Resep Makanan Bergizi untuk Balita", Category: "Resep"},
		{ID: 8, Title: "Mengatasi Anak Susah Makan", Category: "Tips Praktis"},
		{ID: 9, Title: "Peran ASI dalam Mencegah Stunting", Category: "Nutrisi"},
	},
}

var unknownArticles = []ArticleRef{
	{ID: 5, Title: "Cara Memantau Pertumbuhan Anak dengan Benar", Category: "Tips Praktis"},
}
