package pricing

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is.
var (
	// ErrInvalidWeight indicates weight text that is not a finite decimal number.
	ErrInvalidWeight = constError("invalid weight")

	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = constError("negative weight")

	// ErrCalculationOverflow indicates a total that does not fit a float.
	ErrCalculationOverflow = constError("calculation overflow")

	// ErrUnknownCategory indicates an unrecognized category identifier.
	ErrUnknownCategory = constError("unknown waste category")
)
