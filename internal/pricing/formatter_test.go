package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatTotal(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{name: "integral keeps one decimal", v: 12500, want: "12500.0"},
		{name: "three kilograms", v: 15000, want: "15000.0"},
		{name: "zero", v: 0, want: "0.0"},
		{name: "fraction", v: 12.5, want: "12.5"},
		{name: "negative", v: -7500, want: "-7500.0"},
		{name: "large switches to scientific", v: 1.25e7, want: "1.25E7"},
		{name: "exact power of ten", v: 1e7, want: "1.0E7"},
		{name: "tiny switches to scientific", v: 0.0005, want: "5.0E-4"},
		{name: "just below threshold", v: 9999995, want: "9999995.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTotal(tt.v))
		})
	}
}

func TestFormatUnitPrice(t *testing.T) {
	assert.Equal(t, "5,000", FormatUnitPrice(language.English))
	assert.Equal(t, "5.000", FormatUnitPrice(language.Indonesian))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatNumber(1234567, language.English))
	assert.Equal(t, "0", FormatNumber(0, language.English))
}
