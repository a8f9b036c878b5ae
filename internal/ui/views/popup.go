package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MahdadGhasemian/mcp/internal/ui/models"
)

// RenderToolsPopup renders the tool manifest popup
func RenderToolsPopup(s models.State) string {
	if !s.ShowToolList || len(s.ToolList) == 0 {
		return ""
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render("Available Tools:"))
	lines = append(lines, "")

	for i, entry := range s.ToolList {
		if i == s.ToolListIndex {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Render(fmt.Sprintf("▸ %s", entry)))
		} else {
			lines = append(lines, fmt.Sprintf("  %s", entry))
		}
	}

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Faint(true).Render("↑/↓: Navigate  Esc: Close"))

	content := strings.Join(lines, "\n")
	return PopupBoxStyle.Render(content)
}
