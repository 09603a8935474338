// Package tui implements the interactive terminal interface of wastecalc: the
// calculation screen, the about screen and the root model routing between
// them.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader    = lipgloss.Color("42")  // Green
	ColorPrimary   = lipgloss.Color("35")  // Dark green
	ColorLabel     = lipgloss.Color("245") // Gray
	ColorValue     = lipgloss.Color("255") // White
	ColorMuted     = lipgloss.Color("241") // Dim gray
	ColorHighlight = lipgloss.Color("86")  // Aqua
	ColorCritical  = lipgloss.Color("196") // Red
	ColorBorder    = lipgloss.Color("238") // Dark gray
	ColorTitleBg   = lipgloss.Color("22")  // Deep green
)

// Icons.
const (
	IconRadioOn  = "(•)"
	IconRadioOff = "( )"
	IconInfo     = "ⓘ"
	IconBack     = "←"
)

// Shared styles.
//
//nolint:gochecknoglobals // Styles are immutable values reused by every view.
var (
	TitleBarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorValue).
			Background(ColorTitleBg).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)
	FocusStyle    = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorValue).
			Background(ColorBorder).
			Padding(0, 2)

	ButtonFocusedStyle = ButtonStyle.
				Background(ColorPrimary).
				Bold(true)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	InputFocusedStyle = InputStyle.BorderForeground(ColorHighlight)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)
)

// Layout constants.
const (
	defaultWidth  = 60
	defaultHeight = 24
	borderPadding = 2
	contentIndent = 1
	minInputWidth = 10
)
