package tui

import "github.com/charmbracelet/lipgloss"

const tileWidth = 14

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tileStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Height(3).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238"))

	cursorTileStyle = tileStyle.
			BorderForeground(lipgloss.Color("39"))

	activeTileStyle = tileStyle.
			Background(lipgloss.Color("39")).
			Foreground(lipgloss.Color("231"))

	activeCursorTileStyle = activeTileStyle.
				BorderForeground(lipgloss.Color("231"))

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 3).
			Bold(true).
			Background(lipgloss.Color("39")).
			Foreground(lipgloss.Color("231"))

	focusedButtonStyle = buttonStyle.
				Underline(true)

	disabledButtonStyle = lipgloss.NewStyle().
				Padding(0, 3).
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("244"))
)
