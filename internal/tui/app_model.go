package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/wastecalc/internal/form"
	"github.com/rshade/wastecalc/internal/i18n"
	"github.com/rshade/wastecalc/internal/logging"
	"github.com/rshade/wastecalc/internal/nav"
	"github.com/rshade/wastecalc/internal/share"
)

// AppModel is the root model. It owns the navigator and both screens, and
// renders the one the current route names.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type AppModel struct {
	ctx     context.Context
	strings *i18n.Strings
	nav     *nav.Navigator
	calc    CalcModel
	about   AboutModel
	help    help.Model

	width    int
	height   int
	quitting bool
}

// NewAppModel returns the root model starting on the calculation screen.
func NewAppModel(
	ctx context.Context,
	strs *i18n.Strings,
	opts form.Options,
	sharer share.Capability,
) AppModel {
	return AppModel{
		ctx:     ctx,
		strings: strs,
		nav:     nav.New(),
		calc:    NewCalcModel(ctx, strs, opts, sharer),
		about:   NewAboutModel(strs),
		help:    help.New(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Route returns the current route.
func (m AppModel) Route() nav.Route {
	return m.nav.Current()
}

// Calc returns the calculation screen.
func (m AppModel) Calc() CalcModel {
	return m.calc
}

// Quitting reports whether the program is shutting down.
func (m AppModel) Quitting() bool {
	return m.quitting
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return m.calc.Init()
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		inner := tea.WindowSizeMsg{Width: max(msg.Width-borderPadding, minInputWidth), Height: msg.Height}
		m.calc, _ = m.calc.Update(inner)
		m.about, _ = m.about.Update(inner)
		return m, nil

	case NavigateMsg:
		m.navigate(msg.Route)
		return m, nil

	case BackMsg:
		m.back()
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch m.nav.Current() {
	case nav.RouteAbout:
		m.about, cmd = m.about.Update(msg)
	case nav.RouteMain:
		m.calc, cmd = m.calc.Update(msg)
	}
	return m, cmd
}

// handleGlobalKey processes quit and help. Printable bindings are ignored
// while the weight input has focus.
func (m *AppModel) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return tea.Quit, true
	}
	if m.nav.Current() == nav.RouteMain && m.calc.capturesText() {
		return nil, false
	}

	keys := m.calc.Keys()
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return tea.Quit, true
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil, true
	}
	return nil, false
}

func (m *AppModel) navigate(route nav.Route) {
	from := m.nav.Current()
	if err := m.nav.NavigateTo(route); err != nil {
		logging.FromContext(m.ctx).Warn().
			Ctx(m.ctx).
			Str("component", "tui").
			Err(err).
			Msg("navigation rejected")
		return
	}
	logging.FromContext(m.ctx).Debug().
		Ctx(m.ctx).
		Str("component", "tui").
		Str("from", from.String()).
		Str("to", m.nav.Current().String()).
		Msg("navigated")
}

func (m *AppModel) back() {
	if !m.nav.NavigateBack() {
		return
	}
	logging.FromContext(m.ctx).Debug().
		Ctx(m.ctx).
		Str("component", "tui").
		Str("to", m.nav.Current().String()).
		Msg("navigated back")
}

// View implements tea.Model.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	var body, helpView string
	switch m.nav.Current() {
	case nav.RouteAbout:
		body = m.about.View()
		helpView = m.help.View(m.about.Keys())
	default:
		body = m.calc.View()
		helpView = m.help.View(m.calc.Keys())
	}

	content := lipgloss.NewStyle().PaddingLeft(contentIndent).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitleBar(),
		"",
		content,
		"",
		SubtleStyle.Render(helpView),
	)
}

// renderTitleBar renders the top bar. Off the root route it carries the back
// affordance; on the root it points at the about screen.
func (m AppModel) renderTitleBar() string {
	title := m.strings.Get(i18n.AppName)
	if m.nav.Current() == nav.RouteAbout {
		title = IconBack + " " + m.strings.Get(i18n.AboutApp)
	}
	bar := TitleBarStyle.Render(title)
	if m.nav.Current() == nav.RouteMain {
		bar = lipgloss.JoinHorizontal(lipgloss.Top, bar, " ", SubtleStyle.Render(IconInfo+" "+m.strings.Get(i18n.AboutApp)))
	}
	return bar
}
