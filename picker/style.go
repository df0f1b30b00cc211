package picker

import "github.com/charmbracelet/lipgloss"

const (
	selectedFGColor = "#e0e0e0"
	selectedBGColor = "#3a3a3a"
)

var (
	appStyle   = lipgloss.NewStyle().Margin(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Padding(0, 1)

	rowStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	rowSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(selectedFGColor)).
				Background(lipgloss.Color(selectedBGColor))
	aliasStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	helpHintStyle = lipgloss.NewStyle().Faint(true)
)
