package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// english is the fallback table.
//
//nolint:gochecknoglobals // Static resource table.
var english = map[Key]string{
	AppName:         "Waste Price Calculator",
	EnterData:       "Choose the type of waste and enter its weight",
	Organic:         "Organic",
	Inorganic:       "Inorganic",
	WeightHint:      "Weight (kg)",
	PricePerKg:      "Price per kg: %d",
	Submit:          "Submit",
	Share:           "Share",
	AboutApp:        "About",
	Copyright:       "Waste Price Calculator estimates what sorted household waste is worth at a flat rate per kilogram, for organic and inorganic waste alike.\n\nCopyright 2024 the wastecalc authors.",
	Back:            "Back",
	InvalidInput:    "Invalid input, please fill in all fields.",
	InvalidWeight:   "Invalid weight, please enter a number.",
	CategoryLabel:   "Category",
	TotalPriceLabel: "Total Price",
	ImageAlt:        "Waste bin",
	HelpFocus:       "next field",
	HelpSelect:      "choose type",
	HelpActivate:    "select",
	HelpSubmit:      "submit",
	HelpShare:       "share",
	HelpAbout:       "about",
	HelpBack:        "back",
	HelpQuit:        "quit",
}

// indonesian mirrors the strings of the original mobile release.
//
//nolint:gochecknoglobals // Static resource table.
var indonesian = map[Key]string{
	AppName:         "Kalkulator Harga Sampah",
	EnterData:       "Pilih jenis sampah dan masukkan beratnya",
	Organic:         "Organik",
	Inorganic:       "Anorganik",
	WeightHint:      "Berat (kg)",
	PricePerKg:      "Harga Per Kg: %d",
	Submit:          "Submit",
	Share:           "Bagikan",
	AboutApp:        "Tentang Aplikasi",
	Copyright:       "Kalkulator Harga Sampah menghitung nilai sampah rumah tangga yang sudah dipilah dengan tarif tetap per kilogram, baik organik maupun anorganik.\n\nHak cipta 2024 para pengembang wastecalc.",
	Back:            "Kembali",
	InvalidInput:    "Input tidak valid, mohon isi semua field.",
	InvalidWeight:   "Berat tidak valid, mohon masukkan angka.",
	CategoryLabel:   "Jenis Sampah",
	TotalPriceLabel: "Total Harga",
	ImageAlt:        "Tempat sampah",
	HelpFocus:       "pindah kolom",
	HelpSelect:      "pilih jenis",
	HelpActivate:    "pilih",
	HelpSubmit:      "submit",
	HelpShare:       "bagikan",
	HelpAbout:       "tentang",
	HelpBack:        "kembali",
	HelpQuit:        "keluar",
}

// Supported lists the languages with a full table, fallback first.
func Supported() []language.Tag {
	return []language.Tag{language.English, language.Indonesian}
}

// newCatalog builds the message catalog from the static tables.
func newCatalog() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	tables := map[language.Tag]map[Key]string{
		language.English:    english,
		language.Indonesian: indonesian,
	}
	for tag, table := range tables {
		for key, msg := range table {
			if err := b.SetString(tag, string(key), msg); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}
