// Package i18n resolves the user-facing strings of wastecalc by symbolic key.
// English is the fallback; Indonesian is the language the calculator was
// first written for.
package i18n

// Key is the symbolic name of a resource string.
type Key string

// Resource keys.
const (
	AppName         Key = "app_name"
	EnterData       Key = "enter_data"
	Organic         Key = "organic"
	Inorganic       Key = "inorganic"
	WeightHint      Key = "weight_hint"
	PricePerKg      Key = "price_per_kg"
	Submit          Key = "submit"
	Share           Key = "share"
	AboutApp        Key = "about_app"
	Copyright       Key = "copyright"
	Back            Key = "back"
	InvalidInput    Key = "invalid_input"
	InvalidWeight   Key = "invalid_weight"
	CategoryLabel   Key = "category_label"
	TotalPriceLabel Key = "total_price_label"
	ImageAlt        Key = "image_alt"

	HelpFocus    Key = "help_focus"
	HelpSelect   Key = "help_select"
	HelpActivate Key = "help_activate"
	HelpSubmit   Key = "help_submit"
	HelpShare    Key = "help_share"
	HelpAbout    Key = "help_about"
	HelpBack     Key = "help_back"
	HelpQuit     Key = "help_quit"
)

// AllKeys lists every resource key.
func AllKeys() []Key {
	return []Key{
		AppName, EnterData, Organic, Inorganic, WeightHint, PricePerKg, Submit,
		Share, AboutApp, Copyright, Back, InvalidInput, InvalidWeight,
		CategoryLabel, TotalPriceLabel, ImageAlt,
		HelpFocus, HelpSelect, HelpActivate, HelpSubmit, HelpShare, HelpAbout, HelpBack, HelpQuit,
	}
}
