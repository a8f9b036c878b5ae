package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MahdadGhasemian/mcp/internal/ui/models"
)

// RenderRoot renders the complete UI layout. Markdown rendering happens when
// the viewport content is formatted, not here.
func RenderRoot(s models.State) string {
	sections := []string{
		RenderChat(s),
		RenderInput(s),
		RenderStatus(s),
	}

	// Overlay the tools popup when visible
	if s.ShowToolList {
		popup := RenderToolsPopup(s)
		return lipgloss.Place(
			s.Width,
			s.Height,
			lipgloss.Center,
			lipgloss.Center,
			popup,
			lipgloss.WithWhitespaceChars(""),
			lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
