package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/rshade/wastecalc/internal/i18n"
)

// CalcKeyMap holds the bindings of the calculation screen.
type CalcKeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	Submit    key.Binding
	Share     key.Binding
	About     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// NewCalcKeyMap returns the calculation screen bindings with localized help.
func NewCalcKeyMap(s *i18n.Strings) CalcKeyMap {
	return CalcKeyMap{
		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", s.Get(i18n.HelpFocus))),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", s.Get(i18n.HelpSelect))),
		Right:     key.NewBinding(key.WithKeys("right", "l")),
		Select:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", s.Get(i18n.HelpActivate))),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", s.Get(i18n.HelpSubmit))),
		Share:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", s.Get(i18n.HelpShare))),
		About:     key.NewBinding(key.WithKeys("ctrl+a", "f1"), key.WithHelp("f1", s.Get(i18n.HelpAbout))),
		Help:      key.NewBinding(key.WithKeys("?")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("ctrl+c", s.Get(i18n.HelpQuit))),
	}
}

// ShortHelp implements help.KeyMap. Left carries the help of both arrows.
func (k CalcKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Left, k.Select, k.Submit, k.Share, k.About, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k CalcKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.Left, k.Select},
		{k.Submit, k.Share, k.About, k.Quit},
	}
}

// AboutKeyMap holds the bindings of the about screen.
type AboutKeyMap struct {
	Back key.Binding
	Quit key.Binding
}

// NewAboutKeyMap returns the about screen bindings with localized help.
func NewAboutKeyMap(s *i18n.Strings) AboutKeyMap {
	return AboutKeyMap{
		Back: key.NewBinding(key.WithKeys("esc", "backspace", "left", "b"), key.WithHelp("esc", s.Get(i18n.HelpBack))),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", s.Get(i18n.HelpQuit))),
	}
}

// ShortHelp implements help.KeyMap.
func (k AboutKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k AboutKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
