// Package models holds the view state shared between the update loop and
// the render functions.
package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Message is one chat transcript entry.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// State is the complete view state for the session UI.
type State struct {
	Input    textinput.Model
	Viewport viewport.Model
	Spinner  spinner.Model

	Messages []Message

	Width  int
	Height int

	// Input gating: the driver requests input before the user may submit.
	CanSubmit bool

	StatusPhase   string
	StatusMessage string
	DotCount      int

	// Provider shown on the right of the status bar.
	ProviderName string

	// Tool manifest popup.
	ToolList      []string
	ShowToolList  bool
	ToolListIndex int
}
