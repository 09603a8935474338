package form

import (
	"fmt"

	"github.com/rshade/wastecalc/internal/pricing"
)

// Feedback is what the view shows below the submit button.
type Feedback int

const (
	// FeedbackNone shows neither a result nor an error.
	FeedbackNone Feedback = iota

	// FeedbackInvalid shows the validation message.
	FeedbackInvalid

	// FeedbackResult shows the total and the share action.
	FeedbackResult
)

// FeedbackFor decides what the view renders for s.
func FeedbackFor(s State) Feedback {
	switch {
	case !s.Valid:
		return FeedbackInvalid
	case s.Result != nil:
		return FeedbackResult
	default:
		return FeedbackNone
	}
}

// CanShare reports whether the share action is reachable.
func CanShare(s State) bool {
	return FeedbackFor(s) == FeedbackResult
}

// SummaryLabels are the localized pieces of the result summary.
type SummaryLabels struct {
	Category   string
	TotalPrice string
	// CategoryName resolves the display name of a category. When nil the
	// English name is used.
	CategoryName func(pricing.Category) string
}

// DefaultSummaryLabels are the English labels.
func DefaultSummaryLabels() SummaryLabels {
	return SummaryLabels{Category: "Category", TotalPrice: "Total Price"}
}

// Summary renders the result text shown on screen and handed to the share
// capability. ok is false when there is nothing to share.
func Summary(s State, labels SummaryLabels) (text string, ok bool) {
	if !CanShare(s) {
		return "", false
	}
	name := s.Category.String()
	if labels.CategoryName != nil {
		name = labels.CategoryName(s.Category)
	}
	return fmt.Sprintf("%s: %s\n%s: %s",
		labels.Category, name,
		labels.TotalPrice, pricing.FormatTotal(*s.Result),
	), true
}
