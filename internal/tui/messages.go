package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/wastecalc/internal/nav"
)

// NavigateMsg requests navigation to Route.
type NavigateMsg struct {
	Route nav.Route
}

// BackMsg requests navigation to the previous route.
type BackMsg struct{}

// navigateTo returns a command emitting NavigateMsg.
func navigateTo(route nav.Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: route} }
}

// navigateBack returns a command emitting BackMsg.
func navigateBack() tea.Msg {
	return BackMsg{}
}
