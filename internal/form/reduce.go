package form

import (
	"github.com/rshade/wastecalc/internal/pricing"
)

// ParseMode selects how Submit treats weight text that cannot be priced.
type ParseMode int

const (
	// ParseSilent leaves the previous result untouched and reports nothing.
	ParseSilent ParseMode = iota

	// ParseStrict rejects the submit with FailureInvalidWeight. Negative,
	// NaN and infinite weights and overflowing totals are rejected as well.
	ParseStrict
)

// Options configures the reducer.
type Options struct {
	ParseMode ParseMode
}

// Event is a user action on the form.
type Event interface {
	isEvent()
}

// SelectCategory picks the waste category.
type SelectCategory struct {
	Category pricing.Category
}

// EditWeight replaces the weight text.
type EditWeight struct {
	Text string
}

// Submit validates the inputs and computes the total.
type Submit struct{}

func (SelectCategory) isEvent() {}
func (EditWeight) isEvent()     {}
func (Submit) isEvent()         {}

// Reduce applies ev to s and returns the next state. s is not modified.
func Reduce(s State, ev Event, opts Options) State {
	switch ev := ev.(type) {
	case SelectCategory:
		s.Category = ev.Category
	case EditWeight:
		s.WeightText = ev.Text
	case Submit:
		s = submit(s, opts)
	}
	return s
}

// Apply reduces every event in order.
func Apply(s State, opts Options, events ...Event) State {
	for _, ev := range events {
		s = Reduce(s, ev, opts)
	}
	return s
}

func submit(s State, opts Options) State {
	if !s.Category.IsSelected() || s.WeightText == "" {
		s.Valid = false
		s.Failure = FailureMissingFields
		return s
	}

	s.Valid = true
	s.Failure = FailureNone

	total, err := quote(s.WeightText, opts)
	if err != nil {
		if opts.ParseMode == ParseStrict {
			s.Valid = false
			s.Failure = FailureInvalidWeight
		}
		return s
	}

	s.Result = &total
	return s
}

// quote prices text. Silent mode prices anything that parses, NaN and
// infinities included; strict mode applies pricing.Quote's checks.
func quote(text string, opts Options) (float64, error) {
	if opts.ParseMode == ParseStrict {
		return pricing.Quote(text)
	}
	kg, err := pricing.ParseWeight(text)
	if err != nil {
		return 0, err
	}
	return pricing.Total(kg), nil
}
