// Package pricing holds the waste price rules: the waste categories, the fixed
// per-kilogram rate and the formatting of computed totals.
package pricing

import "strings"

// Category is the kind of waste being priced.
type Category int

const (
	// CategoryUnselected means the user has not picked a category yet.
	CategoryUnselected Category = iota

	// CategoryOrganic is biodegradable waste.
	CategoryOrganic

	// CategoryInorganic is non-biodegradable waste.
	CategoryInorganic
)

// Categories lists the selectable categories in display order.
func Categories() []Category {
	return []Category{CategoryOrganic, CategoryInorganic}
}

// String returns the English name of the category.
func (c Category) String() string {
	switch c {
	case CategoryOrganic:
		return "Organic"
	case CategoryInorganic:
		return "Inorganic"
	case CategoryUnselected:
		return ""
	default:
		return ""
	}
}

// ID returns the stable lowercase identifier used in flags and config.
func (c Category) ID() string {
	return strings.ToLower(c.String())
}

// IsSelected reports whether c is a real category.
func (c Category) IsSelected() bool {
	return c == CategoryOrganic || c == CategoryInorganic
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory resolves a category identifier. Matching is case-insensitive
// and accepts the Indonesian names. An empty string is CategoryUnselected.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return CategoryUnselected, nil
	case "organic", "organik":
		return CategoryOrganic, nil
	case "inorganic", "anorganik":
		return CategoryInorganic, nil
	default:
		return CategoryUnselected, ErrUnknownCategory
	}
}
