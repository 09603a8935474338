package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/wastecalc/internal/form"
	"github.com/rshade/wastecalc/internal/i18n"
	"github.com/rshade/wastecalc/internal/logging"
	"github.com/rshade/wastecalc/internal/nav"
	"github.com/rshade/wastecalc/internal/pricing"
	"github.com/rshade/wastecalc/internal/share"
)

// CalcField is a focusable element of the calculation screen.
type CalcField int

const (
	// FieldCategory is the organic/inorganic radio group.
	FieldCategory CalcField = iota
	// FieldWeight is the weight text input.
	FieldWeight
	// FieldSubmit is the submit button.
	FieldSubmit
	// FieldShare is the share button, focusable only when a result is shown.
	FieldShare
)

// weightCharLimit bounds the weight input.
const weightCharLimit = 32

// CalcModel is the calculation screen. Every user action is turned into a
// form event and reduced; the model never computes prices itself.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type CalcModel struct {
	ctx     context.Context
	strings *i18n.Strings
	keys    CalcKeyMap
	opts    form.Options
	sharer  share.Capability

	state  form.State
	weight textinput.Model
	focus  CalcField
	cursor pricing.Category

	width int
}

// NewCalcModel returns the calculation screen in its initial state.
func NewCalcModel(
	ctx context.Context,
	strs *i18n.Strings,
	opts form.Options,
	sharer share.Capability,
) CalcModel {
	ti := textinput.New()
	ti.Placeholder = strs.Get(i18n.WeightHint)
	ti.Prompt = ""
	ti.CharLimit = weightCharLimit
	ti.Width = defaultWidth - borderPadding*4

	if sharer == nil {
		sharer = share.Nop{}
	}

	return CalcModel{
		ctx:     ctx,
		strings: strs,
		keys:    NewCalcKeyMap(strs),
		opts:    opts,
		sharer:  sharer,
		state:   form.New(),
		weight:  ti,
		focus:   FieldCategory,
		cursor:  pricing.CategoryOrganic,
		width:   defaultWidth,
	}
}

// State returns the form state.
func (m CalcModel) State() form.State {
	return m.state
}

// Focus returns the focused field.
func (m CalcModel) Focus() CalcField {
	return m.focus
}

// Keys returns the screen bindings.
func (m CalcModel) Keys() CalcKeyMap {
	return m.keys
}

// Init implements tea.Model.
func (m CalcModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles a message and returns the updated screen.
func (m CalcModel) Update(msg tea.Msg) (CalcModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.weight.Width = max(msg.Width-borderPadding*4, minInputWidth)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.focus == FieldWeight {
		return m.updateWeight(msg)
	}
	return m, nil
}

// handleKeyMsg processes keyboard input. Screen-wide bindings come first;
// the rest is routed to the focused field.
func (m CalcModel) handleKeyMsg(msg tea.KeyMsg) (CalcModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevField):
		return m.moveFocus(-1)
	case key.Matches(msg, m.keys.Share):
		return m.share()
	case key.Matches(msg, m.keys.About):
		return m, navigateTo(nav.RouteAbout)
	case key.Matches(msg, m.keys.Submit) && m.focus != FieldShare:
		return m.submit(), nil
	}

	switch m.focus {
	case FieldCategory:
		return m.handleCategoryKey(msg), nil
	case FieldWeight:
		return m.updateWeight(msg)
	case FieldSubmit:
		if key.Matches(msg, m.keys.Select) {
			return m.submit(), nil
		}
	case FieldShare:
		if key.Matches(msg, m.keys.Select, m.keys.Submit) {
			return m.share()
		}
	}
	return m, nil
}

// handleCategoryKey moves the radio cursor. Moving selects, and space selects
// the option under the cursor.
func (m CalcModel) handleCategoryKey(msg tea.KeyMsg) CalcModel {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.cursor = pricing.CategoryOrganic
		m.state = form.Reduce(m.state, form.SelectCategory{Category: m.cursor}, m.opts)
	case key.Matches(msg, m.keys.Right):
		m.cursor = pricing.CategoryInorganic
		m.state = form.Reduce(m.state, form.SelectCategory{Category: m.cursor}, m.opts)
	case key.Matches(msg, m.keys.Select):
		m.state = form.Reduce(m.state, form.SelectCategory{Category: m.cursor}, m.opts)
	}
	return m
}

// updateWeight forwards msg to the text input and records edits.
func (m CalcModel) updateWeight(msg tea.Msg) (CalcModel, tea.Cmd) {
	var cmd tea.Cmd
	before := m.weight.Value()
	m.weight, cmd = m.weight.Update(msg)
	if after := m.weight.Value(); after != before {
		m.state = form.Reduce(m.state, form.EditWeight{Text: after}, m.opts)
	}
	return m, cmd
}

// submit reduces a Submit event.
func (m CalcModel) submit() CalcModel {
	m.state = form.Reduce(m.state, form.Submit{}, m.opts)

	logging.FromContext(m.ctx).Debug().
		Ctx(m.ctx).
		Str("component", "tui").
		Str("operation", "submit").
		Str("category", m.state.Category.ID()).
		Bool("valid", m.state.Valid).
		Str("failure", string(m.state.Failure)).
		Bool("has_result", m.state.HasResult()).
		Msg("form submitted")

	if m.focus == FieldShare && !form.CanShare(m.state) {
		m.focus = FieldSubmit
	}
	return m
}

// share dispatches the summary to the share capability when a result is
// shown; otherwise it does nothing.
func (m CalcModel) share() (CalcModel, tea.Cmd) {
	text, ok := form.Summary(m.state, m.strings.SummaryLabels())
	if !ok {
		return m, nil
	}
	return m, share.Dispatch(m.ctx, m.sharer, share.NewTextRequest(text))
}

// moveFocus cycles focus by delta, skipping the share button when hidden.
func (m CalcModel) moveFocus(delta int) (CalcModel, tea.Cmd) {
	fields := []CalcField{FieldCategory, FieldWeight, FieldSubmit}
	if form.CanShare(m.state) {
		fields = append(fields, FieldShare)
	}

	idx := 0
	for i, f := range fields {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	m.focus = fields[idx]

	if m.focus == FieldWeight {
		return m, m.weight.Focus()
	}
	m.weight.Blur()
	return m, nil
}

// capturesText reports whether printable keys belong to the weight input.
func (m CalcModel) capturesText() bool {
	return m.focus == FieldWeight
}
