// Package form implements the waste price calculation form as an explicit
// state value and a pure reducer.
//
// The form never raises errors: a failed submit is recorded in State.Valid
// and State.Failure, and an unparseable weight is either ignored (ParseSilent,
// the default) or reported as its own failure (ParseStrict).
package form

import (
	"github.com/rshade/wastecalc/internal/pricing"
)

// Failure identifies why the last submit was rejected.
type Failure string

const (
	// FailureNone means the last submit passed validation.
	FailureNone Failure = ""

	// FailureMissingFields means the category or the weight was empty.
	FailureMissingFields Failure = "missing_fields"

	// FailureInvalidWeight means the weight text could not be priced.
	// Only produced in ParseStrict mode.
	FailureInvalidWeight Failure = "invalid_weight"
)

// State is the complete transient state of the calculation form.
type State struct {
	Category   pricing.Category `json:"category"`
	WeightText string           `json:"weight_text"`
	Result     *float64         `json:"result,omitempty"`
	Valid      bool             `json:"valid"`
	Failure    Failure          `json:"failure,omitempty"`
}

// New returns the initial form state.
func New() State {
	return State{
		Category: pricing.CategoryUnselected,
		Valid:    true,
	}
}

// HasResult reports whether a total has been computed.
func (s State) HasResult() bool {
	return s.Result != nil
}

// Total returns the computed total, or 0 when there is none.
func (s State) Total() float64 {
	if s.Result == nil {
		return 0
	}
	return *s.Result
}
