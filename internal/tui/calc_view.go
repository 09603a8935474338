package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/wastecalc/internal/form"
	"github.com/rshade/wastecalc/internal/i18n"
	"github.com/rshade/wastecalc/internal/pricing"
)

// View renders the calculation screen.
func (m CalcModel) View() string {
	sections := []string{
		LabelStyle.Render(m.strings.Get(i18n.EnterData)),
		RenderCategoryRadio(m.strings, m.state.Category, m.cursor, m.focus == FieldCategory),
		m.renderWeightInput(),
		SubtleStyle.Render(m.strings.Get(i18n.PricePerKg, pricing.UnitPricePerKg)),
		"",
		RenderButton(m.strings.Get(i18n.Submit), m.focus == FieldSubmit),
	}

	if feedback := RenderFeedback(m.strings, m.state, m.focus == FieldShare, m.width); feedback != "" {
		sections = append(sections, "", feedback)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWeightInput renders the weight text input inside a bordered box.
func (m CalcModel) renderWeightInput() string {
	style := InputStyle
	if m.focus == FieldWeight {
		style = InputFocusedStyle
	}
	width := max(m.width-borderPadding*2, minInputWidth)
	label := LabelStyle.Render(m.strings.Get(i18n.WeightHint))
	return lipgloss.JoinVertical(lipgloss.Left, label, style.Width(width).Render(m.weight.View()))
}

// RenderCategoryRadio renders the category radio group. selected is the
// chosen category (possibly unselected) and cursor the highlighted option.
func RenderCategoryRadio(s *i18n.Strings, selected, cursor pricing.Category, focused bool) string {
	options := make([]string, 0, len(pricing.Categories()))
	for _, c := range pricing.Categories() {
		icon := IconRadioOff
		if c == selected {
			icon = IconRadioOn
		}
		option := icon + " " + s.CategoryName(c)

		style := ValueStyle
		if focused && c == cursor {
			style = FocusStyle
		}
		options = append(options, style.Render(option))
	}
	return strings.Join(options, "   ")
}

// RenderButton renders a button label.
func RenderButton(label string, focused bool) string {
	if focused {
		return ButtonFocusedStyle.Render(label)
	}
	return ButtonStyle.Render(label)
}

// RenderFeedback renders the validation message, or the result with the share
// button, or nothing.
func RenderFeedback(s *i18n.Strings, state form.State, shareFocused bool, width int) string {
	switch form.FeedbackFor(state) {
	case form.FeedbackInvalid:
		return RenderValidationError(s, state.Failure)
	case form.FeedbackResult:
		text, _ := form.Summary(state, s.SummaryLabels())
		return lipgloss.JoinVertical(lipgloss.Left,
			RenderResult(text, width),
			RenderButton(s.Get(i18n.Share), shareFocused),
		)
	case form.FeedbackNone:
		return ""
	default:
		return ""
	}
}

// RenderValidationError renders the message for failure.
func RenderValidationError(s *i18n.Strings, failure form.Failure) string {
	return CriticalStyle.Render(validationMessage(s, failure))
}

func validationMessage(s *i18n.Strings, failure form.Failure) string {
	if failure == form.FailureInvalidWeight {
		return s.Get(i18n.InvalidWeight)
	}
	return s.Get(i18n.InvalidInput)
}

// RenderResult renders the result summary in a box no wider than width.
func RenderResult(summary string, width int) string {
	return BoxStyle.MaxWidth(max(width, minInputWidth)).Render(ValueStyle.Render(summary))
}

// RenderCalcOutput renders the outcome of a non-interactive calculation:
// the validation message, the result summary, or nothing.
func RenderCalcOutput(s *i18n.Strings, state form.State, mode OutputMode, width int) string {
	feedback := form.FeedbackFor(state)
	if mode == OutputModePlain {
		switch feedback {
		case form.FeedbackInvalid:
			return validationMessage(s, state.Failure)
		case form.FeedbackResult:
			text, _ := form.Summary(state, s.SummaryLabels())
			return text
		case form.FeedbackNone:
			return ""
		default:
			return ""
		}
	}

	switch feedback {
	case form.FeedbackInvalid:
		return RenderValidationError(s, state.Failure)
	case form.FeedbackResult:
		text, _ := form.Summary(state, s.SummaryLabels())
		return RenderResult(text, width)
	case form.FeedbackNone:
		return ""
	default:
		return ""
	}
}

// RenderAbout renders the about content without interaction.
func RenderAbout(s *i18n.Strings, mode OutputMode, width int) string {
	if mode == OutputModePlain {
		return s.Get(i18n.AppName) + "\n\n" + s.Get(i18n.Copyright)
	}
	m := NewAboutModel(s)
	m.width = width
	return lipgloss.JoinVertical(lipgloss.Left, HeaderStyle.Render(s.Get(i18n.AppName)), "", m.View())
}
