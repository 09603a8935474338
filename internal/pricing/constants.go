package pricing

// UnitPricePerKg is the price of one kilogram of waste, for every category.
const UnitPricePerKg = 5000

// Float rendering thresholds. Totals outside [sciLowerBound, sciUpperBound)
// are rendered in scientific notation, as single-precision floats print.
const (
	sciUpperBound = 1e7
	sciLowerBound = 1e-3
)
