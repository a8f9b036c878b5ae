// Package orchestrator runs the per-query state machine: it feeds a user
// query to the active provider, resolves any requested tool invocations
// through the bridge, and folds the results back into the provider until a
// final text answer is produced.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MahdadGhasemian/mcp/internal/provider"
)

// State names the phase a query is in. One query moves
// Idle -> AwaitingModel -> (ToolRequested -> AwaitingToolResult -> AwaitingModel)* -> Done.
type State int

const (
	StateIdle State = iota
	StateAwaitingModel
	StateToolRequested
	StateAwaitingToolResult
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingModel:
		return "awaiting_model"
	case StateToolRequested:
		return "tool_requested"
	case StateAwaitingToolResult:
		return "awaiting_tool_result"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Session processes user queries one at a time against a fixed provider and
// tool bridge. It is not safe for concurrent use; the driver submits the
// next query only after the previous one completes.
type Session struct {
	strategy      strategy
	invoker       toolInvoker
	events        chan<- Event
	maxToolRounds int

	state State
}

// NewSession creates a Session. The events channel may be nil; events are
// then dropped. maxToolRounds bounds how many tool rounds a single query may
// consume before the session gives up.
func NewSession(s strategy, invoker toolInvoker, events chan<- Event, maxToolRounds int) *Session {
	return &Session{
		strategy:      s,
		invoker:       invoker,
		events:        events,
		maxToolRounds: maxToolRounds,
	}
}

// Process resolves one user query to a final display string, invoking tools
// as the provider requests them. Partial output accumulated before a failure
// is returned alongside the error.
func (s *Session) Process(ctx context.Context, query string) (string, error) {
	var output strings.Builder

	s.setState(StateIdle)
	defer func() {
		s.setState(StateDone)
		s.emit(DoneEvent{})
	}()

	s.setState(StateAwaitingModel)
	s.emit(ThinkingEvent{})

	resp, err := s.strategy.Respond(ctx, query)
	if err != nil {
		return output.String(), fmt.Errorf("%s: %w", s.strategy.Name(), err)
	}

	for round := 0; len(resp.ToolCalls) > 0; round++ {
		if round >= s.maxToolRounds {
			return output.String(), fmt.Errorf("tool round limit (%d) reached", s.maxToolRounds)
		}

		s.setState(StateToolRequested)
		outcomes := make([]provider.ToolOutcome, 0, len(resp.ToolCalls))
		for _, call := range resp.ToolCalls {
			annotation := annotate(call)
			output.WriteString(annotation)
			output.WriteString("\n")
			s.emit(ToolCallEvent{ToolName: call.Name, Annotation: annotation})

			s.setState(StateAwaitingToolResult)
			content, err := s.invoker.Invoke(ctx, call.Name, call.Args)
			if err != nil {
				return output.String(), fmt.Errorf("invoke %s: %w", call.Name, err)
			}
			outcomes = append(outcomes, provider.ToolOutcome{Call: call, Content: content})
		}

		s.setState(StateAwaitingModel)
		s.emit(ThinkingEvent{})

		resp, err = s.strategy.Continue(ctx, outcomes)
		if err != nil {
			return output.String(), fmt.Errorf("%s: %w", s.strategy.Name(), err)
		}
	}

	if resp.Text != "" {
		output.WriteString(resp.Text)
		s.emit(TextEvent{Text: resp.Text})
	}

	return output.String(), nil
}

func (s *Session) setState(next State) {
	if s.state != next {
		slog.Debug("state transition", "from", s.state, "to", next)
		s.state = next
	}
}

func (s *Session) emit(e Event) {
	if s.events != nil {
		s.events <- e
	}
}

// annotate renders the user-visible marker for one tool invocation.
func annotate(call provider.ToolCall) string {
	if call.Args == nil {
		return fmt.Sprintf("[Calling tool %s with args {}]", call.Name)
	}
	args, err := json.Marshal(call.Args)
	if err != nil {
		return fmt.Sprintf("[Calling tool %s with args %v]", call.Name, call.Args)
	}
	return fmt.Sprintf("[Calling tool %s with args %s]", call.Name, args)
}
