package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MahdadGhasemian/mcp/internal/ui/models"
)

// RenderStatus renders the status bar
func RenderStatus(s models.State) string {
	var icon string
	var style lipgloss.Style

	switch s.StatusPhase {
	case "executing":
		icon = s.Spinner.View()
		style = StatusExecutingStyle
	case "done":
		icon = "✔"
		style = StatusDoneStyle
	case "thinking":
		icon = s.Spinner.View()
		style = StatusThinkingStyle
		dots := strings.Repeat(".", s.DotCount)
		return style.Render(fmt.Sprintf("%s Thinking%s", icon, dots))
	default:
		style = StatusDefaultStyle
	}

	status := "Ready"
	if s.StatusMessage != "" {
		status = fmt.Sprintf("%s %s", icon, s.StatusMessage)
	} else if s.StatusPhase != "ready" && s.StatusPhase != "" {
		status = icon
	}

	leftSide := style.Render(status)

	rightSide := ""
	if s.ProviderName != "" {
		rightSide = StatusDefaultStyle.
			Foreground(lipgloss.Color("241")).
			Render(s.ProviderName)
	}

	if rightSide != "" {
		return fmt.Sprintf("%s  %s", leftSide, rightSide)
	}
	return leftSide
}
