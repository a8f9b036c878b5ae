// Package services provides rendering helpers used by the views.
package services

import "github.com/charmbracelet/glamour"

// MarkdownRenderer renders markdown for terminal display.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with glamour's terminal styles.
type GlamourRenderer struct{}

// NewGlamourRenderer creates a new GlamourRenderer.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

// Render renders content wrapped to width.
func (r *GlamourRenderer) Render(content string, width int) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return tr.Render(content)
}

// RenderMarkdown renders content through the given renderer, passing the
// content through unchanged when no renderer is configured.
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) (string, error) {
	if renderer == nil {
		return content, nil
	}
	return renderer.Render(content, width)
}
