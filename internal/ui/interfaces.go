package ui

import "context"

// UICommand is a command issued from the UI to the session driver.
type UICommand struct {
	Type string
	Args map[string]string
}

// UserInterface defines the contract for all user interactions.
// It follows a Read/Write pattern for clarity.
//
// Context Usage:
// All methods accept context.Context for cancellation support.
// If the user quits (Ctrl+C or the exit sentinel), the context will be
// cancelled, and implementations should return immediately with
// context.Canceled error.
type UserInterface interface {
	// ReadInput prompts the user for general text input
	ReadInput(ctx context.Context, prompt string) (string, error)

	// WriteStatus displays ephemeral status updates (e.g., "Thinking...")
	WriteStatus(phase string, message string)

	// WriteMessage displays the agent's actual text responses
	WriteMessage(content string)

	// WriteToolList shows the tool manifest popup
	WriteToolList(tools []string)

	// SetProvider sets the provider label in the status bar
	SetProvider(name string)

	// Commands returns the channel of slash-command requests
	Commands() <-chan UICommand

	// Ready returns a channel closed once the UI accepts requests
	Ready() <-chan struct{}

	// Start runs the UI until the user quits
	Start() error

	// Quit stops the UI from outside the event loop
	Quit()
}
