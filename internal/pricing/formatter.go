package pricing

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatTotal renders a total the way a single-precision float prints:
// integral values keep one decimal ("12500.0"), fractions use the shortest
// representation ("12.5") and very large or small magnitudes use "1.25E7".
func FormatTotal(v float64) string {
	f := float64(float32(v))

	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs >= sciUpperBound || abs < sciLowerBound) {
		return formatScientific(f)
	}

	s := strconv.FormatFloat(f, 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatScientific renders f as "<mantissa>E<exponent>" with at least one
// fractional mantissa digit.
func formatScientific(f float64) string {
	s := strconv.FormatFloat(f, 'E', -1, 32)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(e)
}

// FormatNumber formats an integer with the thousand separators of tag.
// Example: FormatNumber(5000, language.English) returns "5,000".
func FormatNumber(n int64, tag language.Tag) string {
	return message.NewPrinter(tag).Sprintf("%d", n)
}

// FormatUnitPrice returns the localized unit price, e.g. "5,000" or "5.000".
func FormatUnitPrice(tag language.Tag) string {
	return FormatNumber(UnitPricePerKg, tag)
}
