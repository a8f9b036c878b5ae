package views

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("205")

	UserMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true)

	AssistantMessageStyle = lipgloss.NewStyle()

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	StatusDefaultStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	StatusThinkingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	StatusExecutingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	StatusDoneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("76"))

	PopupBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)
)
