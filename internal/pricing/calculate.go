package pricing

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Special values recognized by ParseWeight, with an optional sign.
const (
	textNaN      = "NaN"
	textInfinity = "Infinity"
)

// ParseWeight parses weight text in kilograms with single-precision float
// semantics, returning the value widened to float64.
//
// Leading and trailing control characters and spaces are ignored, and one
// trailing type suffix (f, F, d or D) is accepted. "NaN" and "Infinity" are
// recognized, and magnitudes beyond the float32 range become infinite.
// Negative, NaN and infinite weights are returned without error; use
// ValidateWeight to reject them. Any other text is ErrInvalidWeight.
func ParseWeight(text string) (float64, error) {
	s := strings.TrimFunc(text, func(r rune) bool { return r <= ' ' })

	body := strings.TrimLeft(s, "+-")
	negative := strings.HasPrefix(s, "-")
	if len(s)-len(body) <= 1 {
		switch body {
		case textNaN:
			return math.NaN(), nil
		case textInfinity:
			if negative {
				return math.Inf(-1), nil
			}
			return math.Inf(1), nil
		}
	}

	// ParseFloat also accepts inf, nan and digit separators, which the
	// weight grammar does not.
	if s == "" || strings.ContainsAny(s, "iInN_") {
		return 0, ErrInvalidWeight
	}
	switch s[len(s)-1] {
	case 'f', 'F', 'd', 'D':
		s = s[:len(s)-1]
	}

	v, err := strconv.ParseFloat(s, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, ErrInvalidWeight
	}
	return v, nil
}

// ValidateWeight rejects weights that cannot be priced.
func ValidateWeight(kg float64) error {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return ErrInvalidWeight
	}
	if kg < 0 {
		return ErrNegativeWeight
	}
	return nil
}

// Total returns kg multiplied by UnitPricePerKg in single precision. The
// product follows float rules: it may be NaN or infinite.
func Total(kg float64) float64 {
	return float64(float32(kg) * float32(UnitPricePerKg))
}

// ValidateTotal returns ErrCalculationOverflow when total is not finite.
func ValidateTotal(total float64) error {
	if math.IsInf(total, 0) || math.IsNaN(total) {
		return ErrCalculationOverflow
	}
	return nil
}

// Quote parses weight text and returns its total price, rejecting weights
// ValidateWeight refuses and totals that overflow.
func Quote(text string) (float64, error) {
	kg, err := ParseWeight(text)
	if err != nil {
		return 0, err
	}
	if err := ValidateWeight(kg); err != nil {
		return 0, err
	}
	total := Total(kg)
	if err := ValidateTotal(total); err != nil {
		return 0, err
	}
	return total, nil
}
