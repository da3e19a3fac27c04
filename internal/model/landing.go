package model

import (
	"time"

	"gorm.io/datatypes"
)

// LandingSlug identifies the one landing document the site renders.
const LandingSlug = "main"

// LandingRecord is the stored form of the CMS document. Content holds the
// merged JSON; the typed schema lives in LandingContent below.
type LandingRecord struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"-"`
	Slug      string         `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Content   datatypes.JSON `gorm:"not null" json:"content"`
	UpdatedBy string         `gorm:"size:100" json:"updated_by"`
	UpdatedAt time.Time      `json:"updated_at"`
	CreatedAt time.Time      `json:"-"`
}

func (LandingRecord) TableName() string {
	return "landing_content"
}

type SectionHeader struct {
	Eyebrow     string `json:"eyebrow,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type HeroStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type HeroBadge struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}

type HeroMentor struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Experience string `json:"experience"`
}

type HeroContent struct {
	Eyebrow     string     `json:"eyebrow"`
	Title       string     `json:"title"`
	Highlight   string     `json:"highlight"`
	Description string     `json:"description"`
	CTALabel    string     `json:"ctaLabel"`
	Stats       []HeroStat `json:"stats"`
	HeroImage   string     `json:"heroImage"`
	HeroAvatar  string     `json:"heroAvatar"`
	Badge       HeroBadge  `json:"badge"`
	Mentor      HeroMentor `json:"mentor"`
}

type FeatureCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Image       string `json:"image"`
}

type SliderCard struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
	Students string `json:"students"`
	Bg       string `json:"bg"`
	Image    string `json:"image"`
}

type PopularCoursesContent struct {
	Header       SectionHeader `json:"header"`
	FeatureCards []FeatureCard `json:"featureCards"`
	SliderCards  []SliderCard  `json:"sliderCards"`
}

type AboutBullet struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

type AboutContent struct {
	Header  SectionHeader `json:"header"`
	Collage []string      `json:"collage"`
	Bullets []AboutBullet `json:"bullets"`
}

type Benefit struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type WhyChooseContent struct {
	Header   SectionHeader `json:"header"`
	Benefits []Benefit     `json:"benefits"`
	Gallery  []string      `json:"gallery"`
}

type Testimonial struct {
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Quote string `json:"quote"`
}

type TestimonialsContent struct {
	Header SectionHeader `json:"header"`
	Items  []Testimonial `json:"items"`
}

type NewsletterContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Placeholder string `json:"placeholder"`
	ButtonLabel string `json:"buttonLabel"`
}

type CTAButton struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Style string `json:"style"`
}

type CTAContent struct {
	Title   string      `json:"title"`
	Buttons []CTAButton `json:"buttons"`
}

// LandingContent is the canonical schema of the landing page document.
// Every read and write path produces a structurally complete instance of
// this type; partial CMS edits are merged onto it, never stored bare.
// swagger:model LandingContent
type LandingContent struct {
	Hero           HeroContent           `json:"hero"`
	PopularCourses PopularCoursesContent `json:"popularCourses"`
	About          AboutContent          `json:"about"`
	WhyChoose      WhyChooseContent      `json:"whyChoose"`
	Testimonials   TestimonialsContent   `json:"testimonials"`
	Newsletter     NewsletterContent     `json:"newsletter"`
	CTA            CTAContent            `json:"cta"`
}

// DefaultLandingContent returns the built-in document the public site
// falls back to whenever the stored one is absent or unreadable. A fresh
// copy is returned each call so callers can mutate freely.
func DefaultLandingContent() LandingContent {
	return LandingContent{
		Hero: HeroContent{
			Eyebrow:   "Matematika & Programming",
			Title:     "Kuasai Matematika &",
			Highlight: "Programming",
			Description: "Materi terstruktur untuk SD, SMP, SMA, dan jalur programming. " +
				"Tersedia kelas online/offline, mentor yang standby, serta dashboard progres " +
				"untuk memantau perkembangan belajar.",
			CTALabel: "Get started",
			Stats: []HeroStat{
				{Label: "Materi Matematika & Coding", Value: "120+"},
				{Label: "Guru & Mentor", Value: "85+"},
				{Label: "Siswa aktif", Value: "24k+"},
			},
			HeroImage:  "https://images.unsplash.com/photo-1545239351-1141bd82e8a6?auto=format&fit=crop&w=1000&q=80",
			HeroAvatar: "https://images.unsplash.com/photo-1524504388940-b1c1722653e1?auto=format&fit=crop&w=400&q=80",
			Badge: HeroBadge{
				Title:       "Kurikulum Matematika",
				Subtitle:    "SD - SMA",
				Description: "Numerasi & logika terapan",
			},
			Mentor: HeroMentor{
				Name:       "Mentor Dini",
				Role:       "Guru Matematika & Coding",
				Experience: "545+ jam mengajar",
			},
		},
		PopularCourses: PopularCoursesContent{
			Header: SectionHeader{
				Eyebrow: "Pilihan jalur",
				Title:   "Fokus Matematika & Programming",
				Description: "Kurikulum ringkas untuk siswa SD, SMP, SMA serta jalur programming pemula. " +
					"Pilih mode online atau offline sesuai kebutuhan.",
			},
			FeatureCards: []FeatureCard{
				{
					Title:       "Matematika SD hingga SMA",
					Description: "Numerasi dasar, aljabar, geometri, dan persiapan ujian.",
					Color:       "bg-mint",
					Image:       "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?auto=format&fit=crop&w=900&q=80",
				},
				{
					Title:       "Programming Dasar & Lanjutan",
					Description: "Logika, algoritma, hingga proyek web sederhana.",
					Color:       "bg-cloud",
					Image:       "https://images.unsplash.com/photo-1504384308090-c894fdcc538d?auto=format&fit=crop&w=900&q=80",
				},
			},
			SliderCards: []SliderCard{
				{
					Title:    "Aljabar & Geometri",
					Subtitle: "Level SMP/SMA - kelas hybrid",
					CTA:      "Gabung kelas",
					Students: "180 siswa",
					Bg:       "bg-peach",
					Image:    "https://images.unsplash.com/photo-1489515217757-5fd1be406fef?auto=format&fit=crop&w=800&q=80",
				},
				{
					Title:    "Algoritma & Web Dasar",
					Subtitle: "Pemula - HTML, CSS, JS",
					CTA:      "Gabung kelas",
					Students: "126 siswa",
					Bg:       "bg-sand",
					Image:    "https://images.unsplash.com/photo-1505685296765-3a2736de412f?auto=format&fit=crop&w=800&q=80",
				},
			},
		},
		About: AboutContent{
			Header: SectionHeader{
				Eyebrow: "Tentang platform",
				Title:   "Dipakai Admin, Guru, dan Siswa",
				Description: "Admin mengelola CMS & kurikulum, guru mengunggah materi dan jadwal kelas, " +
					"siswa memantau progres dan hadir di kelas online/offline.",
			},
			Collage: []string{
				"https://images.unsplash.com/photo-1523580846011-d3a5bc25702b?auto=format&fit=crop&w=700&q=80",
				"https://images.unsplash.com/photo-1509062522246-3755977927d7?auto=format&fit=crop&w=700&q=80",
				"https://images.unsplash.com/photo-1503676260728-1c00da094a0b?auto=format&fit=crop&w=700&q=80",
				"https://images.unsplash.com/photo-1577896851231-70ef18881754?auto=format&fit=crop&w=700&q=80",
			},
			Bullets: []AboutBullet{
				{
					Text:  "Admin dapat membuat kursus, menjadwalkan kelas, dan mengatur akses guru.",
					Color: "bg-orange",
				},
				{
					Text:  "Guru mengunggah bahan ajar, memberi tugas, dan memonitor kelas yang dibimbing.",
					Color: "bg-mint-dark",
				},
				{
					Text:  "Siswa melihat progres per modul, jadwal berikutnya, dan materi yang siap dipelajari.",
					Color: "bg-charcoal",
				},
			},
		},
		WhyChoose: WhyChooseContent{
			Header: SectionHeader{
				Eyebrow: "Alasan",
				Title:   "Kenapa Memilih Kursus Kami",
				Description: "Pendekatan terstruktur untuk Matematika dan Programming, mentor responsif, " +
					"dan progress tracker bawaan.",
			},
			Benefits: []Benefit{
				{
					Title: "Jadwal Fleksibel",
					Text:  "Pilih kelas online/offline sesuai waktu kosongmu.",
					Color: "bg-sand",
					Icon:  "calendar",
				},
				{
					Title: "Pantau Progres",
					Text:  "Dashboard siswa menampilkan progres modul, nilai, dan tugas.",
					Color: "bg-mint",
					Icon:  "progress",
				},
			},
			Gallery: []string{
				"https://images.unsplash.com/photo-1553877522-43269d4ea984?auto=format&fit=crop&w=900&q=80",
				"https://images.unsplash.com/photo-1556761175-4b46a572b786?auto=format&fit=crop&w=900&q=80",
			},
		},
		Testimonials: TestimonialsContent{
			Header: SectionHeader{
				Eyebrow:     "Testimoni",
				Title:       "Cerita siswa bersama Kak Ghaida",
				Description: "Pendapat siswa dan orang tua setelah mengikuti sesi matematika maupun pemrograman.",
			},
			Items: []Testimonial{
				{
					Name: "Siswa SMA",
					Role: "Kelas online",
					Quote: "Selama diajar oleh Kak Ghaida nilai saya naik secara drastis. Terutama pada saat " +
						"pembelajaran semasa covid. Materi yang diajarkanpun sangat membantu saya dalam mengerjakan " +
						"ulangan karena penjelasannya yang sangat jelas dan mudah untuk dipahami.",
				},
				{
					Name: "Siswa SMP",
					Role: "Pendampingan ujian",
					Quote: "Setelah les bersama Kak Ghaida, pemahaman saya terhadap materi sekolah meningkat, " +
						"terutama pada bagian yang sebelumnya saya anggap sulit. Penjelasan Kak Ghaida yang jelas, " +
						"sabar, dan contoh-contoh latihan yang diberikan sangat membantu saya memahami materi dengan " +
						"lebih cepat.",
				},
				{
					Name: "Siswa privat",
					Role: "Belajar tatap muka",
					Quote: "Pengalaman saya selama diajarkan oleh Kak Ghaida yaitu seru dan menyenangkan. Karena " +
						"selama proses pembelajaran cara penyampaian Kak Ghaida sangat jelas dan rinci, sehingga " +
						"hampir jarang saya mengalami kesulitan untuk memahami apa yang Kak Ghaida sedang jelaskan.",
				},
				{
					Name:  "Orang tua siswa",
					Role:  "Program intensif",
					Quote: "Ibu ghida sabar mengajarnya jadi saya bisa memahami lebih mudah tanpa tekanan.",
				},
			},
		},
		Newsletter: NewsletterContent{
			Title:       "Dapatkan Silabus & Jadwal Terbaru",
			Description: "Kami kirim info kelas Matematika dan Programming setiap pekan.",
			Placeholder: "Email",
			ButtonLabel: "Kirim",
		},
		CTA: CTAContent{
			Title: "Sudah punya akun?",
			Buttons: []CTAButton{
				{Label: "Login", Href: "/login", Style: "primary"},
				{Label: "Buka Dashboard", Href: "/dashboard", Style: "secondary"},
			},
		},
	}
}
