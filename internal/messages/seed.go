package messages

import "time"

func mustParse(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

var seedMessages = []Message{
	{
		ID:       1,
		Name:     "Sari Dewi",
		Email:    "sari.dewi@email.com",
		Subject:  "Konsultasi Gizi Anak",
		Body:     "Anak saya berusia 2 tahun dengan tinggi 80cm dan berat 10kg. Apakah ini normal? Mohon saran untuk menu makanan yang tepat.",
		Date:     mustParse("2025-01-20T10:30:00Z"),
		Status:   StatusUnread,
		Priority: PriorityHigh,
	},
	{
		ID:       2,
		Name:     "Budi Santoso",
		Email:    "budi.santoso@email.com",
		Subject:  "Pertanyaan MPASI",
		Body:     "Bayi saya 6 bulan, baru mulai MPASI. Bolehkah langsung diberi nasi tim atau harus bubur dulu?",
		Date:     mustParse("2025-01-19T14:15:00Z"),
		Status:   StatusRead,
		Priority: PriorityMedium,
	},
	{
		ID:       3,
		Name:     "Maya Putri",
		Email:    "maya.putri@email.com",
		Subject:  "Keluhan Pertumbuhan Anak",
		Body:     "Anak saya 3 tahun tingginya masih 85cm. Dokter bilang ada indikasi stunting. Apa yang harus saya lakukan?",
		Date:     mustParse("2025-01-19T09:45:00Z"),
		Status:   StatusReplied,
		Priority: PriorityHigh,
	},
	{
		ID:       4,
		Name:     "Ahmad Rizki",
		Email:    "ahmad.rizki@email.com",
		Subject:  "Saran Nutrisi Ibu Hamil",
		Body:     "Istri saya hamil 6 bulan. Apa saja nutrisi yang penting untuk mencegah stunting pada bayi?",
		Date:     mustParse("2025-01-18T16:20:00Z"),
		Status:   StatusRead,
		Priority: PriorityMedium,
	},
	{
		ID:       5,
		Name:     "Rina Sari",
		Email:    "rina.sari@email.com",
		Subject:  "Aplikasi Tidak Bisa Diakses",
		Body:     "Saya tidak bisa mengakses fitur cek stunting. Selalu muncul error. Mohon bantuannya.",
		Date:     mustParse("2025-01-18T11:10:00Z"),
		Status:   StatusUnread,
		Priority: PriorityLow,
	},
	{
		ID:       6,
		Name:     "Dedi Kurniawan",
		Email:    "dedi.kurniawan@email.com",
		Subject:  "Feedback Aplikasi",
		Body:     "Aplikasi sangat membantu! Tapi bisa ditambahkan fitur reminder untuk kontrol rutin ke posyandu?",
		Date:     mustParse("2025-01-17T13:30:00Z"),
		Status:   StatusRead,
		Priority: PriorityLow,
	},
}
