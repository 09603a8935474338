package i18n

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/rshade/wastecalc/internal/form"
	"github.com/rshade/wastecalc/internal/pricing"
)

//nolint:gochecknoglobals // Catalog is built once and shared read-only.
var (
	catalogOnce sync.Once
	sharedCat   *catalog.Builder
	catalogErr  error
	matcher     = language.NewMatcher(Supported())
)

func sharedCatalog() (*catalog.Builder, error) {
	catalogOnce.Do(func() {
		sharedCat, catalogErr = newCatalog()
	})
	return sharedCat, catalogErr
}

// Strings resolves resource keys for one language.
type Strings struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns the strings for tag, matched against the supported languages.
func New(tag language.Tag) (*Strings, error) {
	cat, err := sharedCatalog()
	if err != nil {
		return nil, err
	}
	matched := Match(tag)
	return &Strings{
		tag:     matched,
		printer: message.NewPrinter(matched, message.Catalog(cat)),
	}, nil
}

// MustNew is New for callers holding a tag already returned by Match.
func MustNew(tag language.Tag) *Strings {
	s, err := New(tag)
	if err != nil {
		panic(err)
	}
	return s
}

// Tag returns the resolved language.
func (s *Strings) Tag() language.Tag {
	return s.tag
}

// Get returns the string for key, formatting args into its placeholders.
// Numbers are grouped following the resolved language.
func (s *Strings) Get(key Key, args ...interface{}) string {
	return s.printer.Sprintf(string(key), args...)
}

// CategoryName returns the display name of c.
func (s *Strings) CategoryName(c pricing.Category) string {
	switch c {
	case pricing.CategoryOrganic:
		return s.Get(Organic)
	case pricing.CategoryInorganic:
		return s.Get(Inorganic)
	case pricing.CategoryUnselected:
		return ""
	default:
		return ""
	}
}

// SummaryLabels returns the localized labels of the result summary.
func (s *Strings) SummaryLabels() form.SummaryLabels {
	return form.SummaryLabels{
		Category:     s.Get(CategoryLabel),
		TotalPrice:   s.Get(TotalPriceLabel),
		CategoryName: s.CategoryName,
	}
}

// Match returns the supported language closest to tag.
func Match(tag language.Tag) language.Tag {
	_, idx, _ := matcher.Match(tag)
	return Supported()[idx]
}

// Parse resolves a language preference such as "id", "en-GB" or a POSIX
// locale like "id_ID.UTF-8". Empty, "C" and "POSIX" resolve to English.
func Parse(pref string) (language.Tag, error) {
	p := strings.TrimSpace(pref)
	if i := strings.IndexAny(p, ".@"); i >= 0 {
		p = p[:i]
	}
	switch strings.ToUpper(p) {
	case "", "C", "POSIX":
		return language.English, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(p, "_", "-"))
	if err != nil {
		return language.English, err
	}
	return Match(tag), nil
}
