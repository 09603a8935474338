package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/rshade/wastecalc/internal/form"
	"github.com/rshade/wastecalc/internal/i18n"
	"github.com/rshade/wastecalc/internal/nav"
	"github.com/rshade/wastecalc/internal/pricing"
	"github.com/rshade/wastecalc/internal/share"
)

type recordingSharer struct {
	mu       sync.Mutex
	requests []share.Request
}

func (r *recordingSharer) Name() string { return "recording" }

func (r *recordingSharer) RequestTextShare(_ context.Context, req share.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	return nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestCalc(t *testing.T, sharer share.Capability) CalcModel {
	t.Helper()
	return NewCalcModel(context.Background(), i18n.MustNew(language.English), form.Options{}, sharer)
}

func press(m CalcModel, msgs ...tea.Msg) CalcModel {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestNewCalcModel(t *testing.T) {
	m := newTestCalc(t, nil)

	assert.Equal(t, form.New(), m.State())
	assert.Equal(t, FieldCategory, m.Focus())
	assert.NotNil(t, m.Init())
}

func TestCalcModel_SelectCategory(t *testing.T) {
	m := newTestCalc(t, nil)

	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, pricing.CategoryInorganic, m.State().Category)

	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, pricing.CategoryOrganic, m.State().Category)
}

func TestCalcModel_SpaceSelectsCursor(t *testing.T) {
	m := newTestCalc(t, nil)

	m = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, pricing.CategoryOrganic, m.State().Category)
}

func TestCalcModel_FocusCycle(t *testing.T) {
	m := newTestCalc(t, nil)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldWeight, m.Focus())
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldSubmit, m.Focus())

	// Share is skipped while no result is shown.
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldCategory, m.Focus())

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldSubmit, m.Focus())
}

func TestCalcModel_TypingEditsWeight(t *testing.T) {
	m := newTestCalc(t, nil)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab}, runes("2.5"))
	assert.Equal(t, "2.5", m.State().WeightText)
	assert.False(t, m.State().HasResult())

	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "2.", m.State().WeightText)
}

func TestCalcModel_LetterKeysGoToWeightInput(t *testing.T) {
	m := newTestCalc(t, nil)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab}, runes("hl"))
	assert.Equal(t, "hl", m.State().WeightText)
	assert.Equal(t, pricing.CategoryUnselected, m.State().Category)
}

func TestCalcModel_SubmitValid(t *testing.T) {
	m := newTestCalc(t, nil)

	m = press(m,
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyTab},
		runes("2.5"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	s := m.State()
	assert.True(t, s.Valid)
	require.True(t, s.HasResult())
	assert.InDelta(t, 12500.0, s.Total(), 1e-9)
	assert.Contains(t, m.View(), "Total Price: 12500.0")
	assert.Contains(t, m.View(), "Share")
}

func TestCalcModel_SubmitMissingCategory(t *testing.T) {
	m := newTestCalc(t, nil)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab}, runes("2"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.State().Valid)
	assert.False(t, m.State().HasResult())
	assert.Contains(t, m.View(), "Invalid input, please fill in all fields.")
}

func TestCalcModel_SubmitUnparseableSilent(t *testing.T) {
	m := newTestCalc(t, nil)

	m = press(m,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyTab},
		runes("abc"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	assert.True(t, m.State().Valid)
	assert.False(t, m.State().HasResult())
	assert.NotContains(t, m.View(), "Invalid")
	assert.NotContains(t, m.View(), "Total Price")
}

func TestCalcModel_SubmitUnparseableStrict(t *testing.T) {
	m := NewCalcModel(context.Background(), i18n.MustNew(language.English),
		form.Options{ParseMode: form.ParseStrict}, nil)

	m = press(m,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyTab},
		runes("abc"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	assert.Equal(t, form.FailureInvalidWeight, m.State().Failure)
	assert.Contains(t, m.View(), "Invalid weight, please enter a number.")
}

func TestCalcModel_Share(t *testing.T) {
	rec := &recordingSharer{}
	m := newTestCalc(t, rec)

	m = press(m,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyTab},
		runes("3"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	require.True(t, m.State().HasResult())

	before := m.State()
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	assert.Equal(t, before, m.State())

	require.Len(t, rec.requests, 1)
	assert.Equal(t, share.MimeTypeText, rec.requests[0].MimeType)
	assert.Equal(t, "Category: Inorganic\nTotal Price: 15000.0", rec.requests[0].Text)
}

func TestCalcModel_ShareButtonFocus(t *testing.T) {
	rec := &recordingSharer{}
	m := newTestCalc(t, rec)

	m = press(m,
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyTab},
		runes("1"),
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
	)
	require.Equal(t, FieldShare, m.Focus())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()
	require.Len(t, rec.requests, 1)
	assert.Equal(t, "Category: Organic\nTotal Price: 5000.0", rec.requests[0].Text)
}

func TestCalcModel_ShareWithoutResultDoesNothing(t *testing.T) {
	rec := &recordingSharer{}
	m := newTestCalc(t, rec)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.Empty(t, rec.requests)
}

func TestCalcModel_ShareFailureIsSwallowed(t *testing.T) {
	m := newTestCalc(t, share.Nop{})

	m = press(m,
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyTab},
		runes("1"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.NotPanics(t, func() { cmd() })
}

func TestCalcModel_InvalidResubmitHidesResult(t *testing.T) {
	m := newTestCalc(t, nil)

	m = press(m,
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyTab},
		runes("1"),
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
	)
	require.Equal(t, FieldShare, m.Focus())

	// Clear the weight and resubmit from the weight field.
	m = press(m,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	assert.Equal(t, FieldWeight, m.Focus())
	assert.False(t, m.State().Valid)
	assert.True(t, m.State().HasResult(), "prior result is kept")
	assert.False(t, form.CanShare(m.State()))
	assert.NotContains(t, m.View(), "Total Price")
	assert.Contains(t, m.View(), "Invalid input, please fill in all fields.")
}

func TestCalcModel_AboutKey(t *testing.T) {
	m := newTestCalc(t, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyF1})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Route: nav.RouteAbout}, cmd())
}

func TestCalcModel_View(t *testing.T) {
	m := newTestCalc(t, nil)
	view := m.View()

	assert.Contains(t, view, "Choose the type of waste and enter its weight")
	assert.Contains(t, view, IconRadioOff+" Organic")
	assert.Contains(t, view, IconRadioOff+" Inorganic")
	assert.Contains(t, view, "Price per kg: 5,000")
	assert.Contains(t, view, "Submit")
	assert.NotContains(t, view, "Total Price")

	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Contains(t, m.View(), IconRadioOn+" Inorganic")
}

func TestCalcModel_ViewIndonesian(t *testing.T) {
	m := NewCalcModel(context.Background(), i18n.MustNew(language.Indonesian), form.Options{}, nil)
	m = press(m,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyTab},
		runes("3"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	view := m.View()
	assert.Contains(t, view, "Harga Per Kg: 5.000")
	assert.Contains(t, view, "Jenis Sampah: Anorganik")
	assert.Contains(t, view, "Total Harga: 15000.0")
	assert.Contains(t, view, "Bagikan")
}
