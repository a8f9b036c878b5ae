package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/MahdadGhasemian/mcp/internal/ui"
)

// ErrNoMoreInput is returned by ReadInput once the scripted inputs run out.
var ErrNoMoreInput = errors.New("no more scripted input")

// MockUI implements ui.UserInterface with a scripted input sequence. It
// records everything written to it so driver-level tests can assert on the
// conversation flow.
type MockUI struct {
	mu       sync.Mutex
	inputs   []string
	inputIdx int

	Messages  []string
	Statuses  []string
	ToolLists [][]string
	Provider  string

	StartErr error

	commands chan ui.UICommand
	ready    chan struct{}
	quit     chan struct{}
	quitOnce sync.Once
}

// NewMockUI creates a MockUI that serves the given inputs in order. The UI
// reports ready immediately.
func NewMockUI(inputs ...string) *MockUI {
	m := &MockUI{
		inputs:   inputs,
		commands: make(chan ui.UICommand, 8),
		ready:    make(chan struct{}),
		quit:     make(chan struct{}),
	}
	close(m.ready)
	return m
}

func (m *MockUI) ReadInput(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inputIdx >= len(m.inputs) {
		// Script exhausted: behave like a closed UI so the driver winds
		// down instead of spinning.
		m.Quit()
		return "", ErrNoMoreInput
	}
	line := m.inputs[m.inputIdx]
	m.inputIdx++
	return line, nil
}

func (m *MockUI) WriteStatus(phase string, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Statuses = append(m.Statuses, phase)
}

func (m *MockUI) WriteMessage(content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, content)
}

func (m *MockUI) WriteToolList(tools []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ToolLists = append(m.ToolLists, tools)
}

func (m *MockUI) SetProvider(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Provider = name
}

func (m *MockUI) Commands() <-chan ui.UICommand {
	return m.commands
}

// SendCommand injects a slash command as if the user had typed it.
func (m *MockUI) SendCommand(cmd ui.UICommand) {
	m.commands <- cmd
}

func (m *MockUI) Ready() <-chan struct{} {
	return m.ready
}

// Start blocks until Quit, mirroring the real UI's event loop.
func (m *MockUI) Start() error {
	<-m.quit
	return m.StartErr
}

func (m *MockUI) Quit() {
	m.quitOnce.Do(func() { close(m.quit) })
}

// MessagesSnapshot returns a copy of the recorded messages.
func (m *MockUI) MessagesSnapshot() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Messages))
	copy(out, m.Messages)
	return out
}
