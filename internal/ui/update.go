package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MahdadGhasemian/mcp/internal/ui/models"
	"github.com/MahdadGhasemian/mcp/internal/ui/services"
	"github.com/MahdadGhasemian/mcp/internal/ui/views"
)

// BubbleTeaModel implements tea.Model
type BubbleTeaModel struct {
	state models.State

	// Dependencies
	renderer services.MarkdownRenderer

	// Channels for communication with the session driver
	inputReq     <-chan inputRequest
	inputResp    chan<- string
	statusChan   <-chan statusMsg
	messageChan  <-chan string
	toolListChan <-chan []string
	providerChan <-chan string

	// UI -> Driver
	commandChan chan<- UICommand

	// Ready signal
	readyChan chan<- struct{}
}

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// newBubbleTeaModel creates a new Bubble Tea model
func newBubbleTeaModel(
	inputReq <-chan inputRequest,
	inputResp chan<- string,
	statusChan <-chan statusMsg,
	messageChan <-chan string,
	toolListChan <-chan []string,
	providerChan <-chan string,
	commandChan chan<- UICommand,
	readyChan chan<- struct{},
	renderer services.MarkdownRenderer,
	spinnerFactory SpinnerFactory,
) BubbleTeaModel {
	ti := textinput.New()
	ti.Placeholder = "Ask a question..."
	ti.Focus()

	vp := viewport.New(80, 20)

	sp := spinnerFactory()

	return BubbleTeaModel{
		state: models.State{
			Input:    ti,
			Viewport: vp,
			Spinner:  sp,
			Messages: []models.Message{},
		},
		renderer:     renderer,
		inputReq:     inputReq,
		inputResp:    inputResp,
		statusChan:   statusChan,
		messageChan:  messageChan,
		toolListChan: toolListChan,
		providerChan: providerChan,
		commandChan:  commandChan,
		readyChan:    readyChan,
	}
}

// Internal messages
type tickMsg time.Time
type inputRequestMsg inputRequest
type statusUpdateMsg statusMsg
type messageReceivedMsg string
type toolListReceivedMsg []string
type providerReceivedMsg string

// Init initializes the model
func (m BubbleTeaModel) Init() tea.Cmd {
	// Signal that UI is ready
	if m.readyChan != nil {
		close(m.readyChan)
	}

	return tea.Batch(
		textinput.Blink,
		m.state.Spinner.Tick,
		tick(),
		listenForInputRequests(m.inputReq),
		listenForStatus(m.statusChan),
		listenForMessages(m.messageChan),
		listenForToolList(m.toolListChan),
		listenForProvider(m.providerChan),
	)
}

// View renders the UI
func (m BubbleTeaModel) View() string {
	return views.RenderRoot(m.state)
}

// Update handles messages
func (m BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.Viewport.Width = msg.Width
		m.state.Viewport.Height = msg.Height - 6 // Reserve space for input and status

	case tickMsg:
		m.state.DotCount = (m.state.DotCount + 1) % 4
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, tea.Batch(cmd, tick())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd

	case inputRequestMsg:
		m.state.CanSubmit = true
		return m, listenForInputRequests(m.inputReq)

	case statusUpdateMsg:
		m.state.StatusPhase = msg.phase
		m.state.StatusMessage = msg.message
		return m, listenForStatus(m.statusChan)

	case messageReceivedMsg:
		m.state.Messages = append(m.state.Messages, models.Message{
			Role:    "assistant",
			Content: string(msg),
		})
		m.updateViewport()
		return m, listenForMessages(m.messageChan)

	case toolListReceivedMsg:
		m.state.ToolList = []string(msg)
		m.state.ShowToolList = true
		m.state.ToolListIndex = 0
		return m, listenForToolList(m.toolListChan)

	case providerReceivedMsg:
		m.state.ProviderName = string(msg)
		return m, listenForProvider(m.providerChan)
	}

	// Update input
	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m BubbleTeaModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle tools popup navigation
	if m.state.ShowToolList {
		switch msg.String() {
		case "up", "k":
			if m.state.ToolListIndex > 0 {
				m.state.ToolListIndex--
			}
		case "down", "j":
			if m.state.ToolListIndex < len(m.state.ToolList)-1 {
				m.state.ToolListIndex++
			}
		case "esc", "enter", "q":
			m.state.ShowToolList = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		if m.state.CanSubmit && m.state.Input.Value() != "" {
			input := m.state.Input.Value()

			// Check for commands
			if strings.HasPrefix(input, "/") {
				return m.handleCommand(input)
			}

			// Show the user turn
			m.state.Messages = append(m.state.Messages, models.Message{
				Role:    "user",
				Content: input,
			})
			m.updateViewport()

			// Send to the driver
			m.inputResp <- input
			m.state.Input.SetValue("")
			m.state.CanSubmit = false
		}
	}

	return m, nil
}

// handleCommand handles slash commands
func (m BubbleTeaModel) handleCommand(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	cmd := parts[0]
	switch cmd {
	case "/tools":
		m.commandChan <- UICommand{Type: "list_tools"}
		m.state.Input.SetValue("")
	case "/help":
		m.state.Messages = append(m.state.Messages, models.Message{
			Role:    "assistant",
			Content: "Available commands:\n- /tools - Show the connected server's tools\n- /help - Show this help\n\nType quit or exit to leave.",
		})
		m.updateViewport()
		m.state.Input.SetValue("")
	}

	return m, nil
}

// updateViewport updates the viewport content
func (m *BubbleTeaModel) updateViewport() {
	content := views.FormatChatContent(m.state.Messages, m.state.Width-4, m.renderer)
	m.state.Viewport.SetContent(content)
	m.state.Viewport.GotoBottom()
}

// Helper commands for listening to channels
func listenForInputRequests(ch <-chan inputRequest) tea.Cmd {
	return func() tea.Msg {
		return inputRequestMsg(<-ch)
	}
}

func listenForStatus(ch <-chan statusMsg) tea.Cmd {
	return func() tea.Msg {
		return statusUpdateMsg(<-ch)
	}
}

func listenForMessages(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		return messageReceivedMsg(<-ch)
	}
}

func listenForToolList(ch <-chan []string) tea.Cmd {
	return func() tea.Msg {
		return toolListReceivedMsg(<-ch)
	}
}

func listenForProvider(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		return providerReceivedMsg(<-ch)
	}
}

func tick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
