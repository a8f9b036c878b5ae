package orchestrator

// Event is the interface for all session events.
// UI handles events via type switch.
type Event interface {
	isEvent()
}

// ThinkingEvent is emitted when a model exchange is in flight.
type ThinkingEvent struct{}

func (ThinkingEvent) isEvent() {}

// TextEvent is emitted when the model produces text output.
type TextEvent struct {
	Text string
}

func (TextEvent) isEvent() {}

// ToolCallEvent is emitted when a tool invocation begins.
type ToolCallEvent struct {
	ToolName   string
	Annotation string // e.g., "[Calling tool calculate_sum with args {...}]"
}

func (ToolCallEvent) isEvent() {}

// DoneEvent is emitted when a query's processing pass completes.
type DoneEvent struct{}

func (DoneEvent) isEvent() {}
