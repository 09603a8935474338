package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/wastecalc/internal/i18n"
)

// binArt is the about screen illustration.
const binArt = `    ______________
   [______________]
    |  |  |  |  |
    |  |  |  |  |
    |  |  |  |  |
    |__|__|__|__|`

// AboutModel is the static about screen.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type AboutModel struct {
	strings *i18n.Strings
	keys    AboutKeyMap
	width   int
}

// NewAboutModel returns the about screen.
func NewAboutModel(strs *i18n.Strings) AboutModel {
	return AboutModel{
		strings: strs,
		keys:    NewAboutKeyMap(strs),
		width:   defaultWidth,
	}
}

// Keys returns the screen bindings.
func (m AboutModel) Keys() AboutKeyMap {
	return m.keys
}

// Init implements tea.Model.
func (m AboutModel) Init() tea.Cmd {
	return nil
}

// Update handles a message and returns the updated screen.
func (m AboutModel) Update(msg tea.Msg) (AboutModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back) {
			return m, navigateBack
		}
	}
	return m, nil
}

// View renders the illustration and the copyright text.
func (m AboutModel) View() string {
	textWidth := max(m.width-borderPadding*2, minInputWidth)

	image := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Width(textWidth).
		Align(lipgloss.Center).
		Render(binArt)
	caption := SubtleStyle.
		Width(textWidth).
		Align(lipgloss.Center).
		Render(m.strings.Get(i18n.ImageAlt))
	body := lipgloss.NewStyle().
		Width(textWidth).
		PaddingLeft(contentIndent).
		Render(m.strings.Get(i18n.Copyright))

	return lipgloss.JoinVertical(lipgloss.Left, image, caption, "", body)
}
