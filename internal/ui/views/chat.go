package views

import (
	"strings"

	"github.com/MahdadGhasemian/mcp/internal/ui/models"
	"github.com/MahdadGhasemian/mcp/internal/ui/services"
)

// RenderChat renders the message history
func RenderChat(s models.State) string {
	if len(s.Messages) == 0 {
		return "No messages yet. Type a question to start, or /help for commands."
	}
	return s.Viewport.View()
}

// FormatChatContent formats the messages for the viewport
func FormatChatContent(messages []models.Message, width int, renderer services.MarkdownRenderer) string {
	var lines []string
	for _, msg := range messages {
		if msg.Role == "user" {
			lines = append(lines, UserMessageStyle.Render("You: "+msg.Content))
		} else {
			// Render assistant messages as markdown
			rendered, err := services.RenderMarkdown(msg.Content, width, renderer)
			if err != nil {
				lines = append(lines, AssistantMessageStyle.Render(msg.Content))
			} else {
				lines = append(lines, AssistantMessageStyle.Render(rendered))
			}
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
