// Package main runs the interactive MCP chat host: it connects to a tool
// server over stdio, selects an LLM provider from the environment, and
// resolves user queries through the orchestration session.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	anthropicsdk "github.com/liushuangls/go-anthropic/v2"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"google.golang.org/genai"

	"github.com/MahdadGhasemian/mcp/internal/config"
	"github.com/MahdadGhasemian/mcp/internal/mcpbridge"
	"github.com/MahdadGhasemian/mcp/internal/orchestrator"
	"github.com/MahdadGhasemian/mcp/internal/provider"
	"github.com/MahdadGhasemian/mcp/internal/provider/anthropic"
	"github.com/MahdadGhasemian/mcp/internal/provider/gemini"
	"github.com/MahdadGhasemian/mcp/internal/provider/ollama"
	"github.com/MahdadGhasemian/mcp/internal/tool"
	"github.com/MahdadGhasemian/mcp/internal/ui"
	uiservices "github.com/MahdadGhasemian/mcp/internal/ui/services"
)

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config          *config.Config
	UI              ui.UserInterface
	ProviderFactory func(context.Context) (provider.Provider, error)
	Bridge          toolBridge
}

// toolBridge is the slice of the MCP bridge the driver uses.
type toolBridge interface {
	Tools() []tool.ManifestEntry
	Invoke(ctx context.Context, name string, args map[string]any) (string, error)
	Close() error
}

func createRealUI() ui.UserInterface {
	channels := ui.NewUIChannels()
	renderer := uiservices.NewGlamourRenderer()
	spinnerFactory := func() spinner.Model {
		return spinner.New(spinner.WithSpinner(spinner.Dot))
	}
	return ui.NewUI(channels, renderer, spinnerFactory)
}

func createRealProviderFactory(cfg *config.Config) func(context.Context) (provider.Provider, error) {
	return func(ctx context.Context) (provider.Provider, error) {
		switch cfg.Provider {
		case config.ProviderAnthropic:
			client := anthropicsdk.NewClient(cfg.Anthropic.APIKey)
			return anthropic.New(anthropic.NewRealAnthropicClient(client), cfg.Anthropic.Model, cfg.Anthropic.MaxTokens), nil

		case config.ProviderOllama:
			client := openai.NewClient(
				option.WithAPIKey("ollama"),
				option.WithBaseURL(strings.TrimSuffix(cfg.Ollama.Host, "/")+"/v1"),
			)
			return ollama.New(ollama.NewRealOllamaClient(&client), cfg.Ollama.Model), nil

		case config.ProviderGemini:
			genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.Gemini.APIKey})
			if err != nil {
				return nil, fmt.Errorf("create Gemini client: %w", err)
			}
			return gemini.New(gemini.NewRealGeminiClient(genaiClient), cfg.Gemini.Model), nil

		default:
			return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
		}
	}
}

// isSentinel reports whether a line ends the session.
func isSentinel(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.EqualFold(trimmed, "quit") || strings.EqualFold(trimmed, "exit")
}

// formatToolLines renders manifest entries for the /tools popup.
func formatToolLines(entries []tool.ManifestEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Description != "" {
			lines = append(lines, fmt.Sprintf("%s - %s", entry.Name, entry.Description))
		} else {
			lines = append(lines, entry.Name)
		}
	}
	return lines
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run owns the bridge lifetime; keeping os.Exit out of here means the
// deferred Close fires on every exit path, UI failures included.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The tool connection is a single long-lived resource: acquired before
	// the UI starts, released on every exit path.
	bridge, err := mcpbridge.Connect(context.Background(), cfg.Server.Command, cfg.Server.Args...)
	if err != nil {
		return fmt.Errorf("connecting to tool server: %w", err)
	}
	defer bridge.Close()

	deps := Dependencies{
		Config:          cfg,
		UI:              createRealUI(),
		ProviderFactory: createRealProviderFactory(cfg),
		Bridge:          bridge,
	}

	return runInteractive(context.Background(), deps)
}

func runInteractive(ctx context.Context, deps Dependencies) error {
	userInterface := deps.UI

	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	// Orchestrator events feed the status bar.
	events := make(chan orchestrator.Event, 16)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-sessionCtx.Done():
				return
			case e := <-events:
				switch e := e.(type) {
				case orchestrator.ThinkingEvent:
					userInterface.WriteStatus("thinking", "")
				case orchestrator.ToolCallEvent:
					userInterface.WriteStatus("executing", e.Annotation)
				case orchestrator.DoneEvent:
					userInterface.WriteStatus("done", "Query complete")
				}
			}
		}
	}()

	// Goroutine #1: Initialize & REPL
	wg.Add(1)
	go func() {
		defer wg.Done()

		<-userInterface.Ready() // Wait for UI to be ready

		userInterface.WriteStatus("thinking", "Initializing provider...")

		p, err := deps.ProviderFactory(sessionCtx)
		if err != nil {
			userInterface.WriteStatus("error", "Initialization failed")
			userInterface.WriteMessage(fmt.Sprintf("Error initializing provider: %v", err))
			userInterface.WriteMessage("The application cannot start. Press Ctrl+C to exit.")
			return // DEGRADED MODE: UI runs but queries are not accepted
		}

		p.DefineTools(deps.Bridge.Tools())
		userInterface.SetProvider(p.Name())

		session := orchestrator.NewSession(p, deps.Bridge, events, deps.Config.MaxToolRounds)

		userInterface.WriteStatus("ready", "")

		for {
			select {
			case <-sessionCtx.Done():
				return
			default:
				line, err := userInterface.ReadInput(sessionCtx, "Ask a question")
				if err != nil {
					return // UI closed or context cancelled
				}

				if isSentinel(line) {
					userInterface.Quit()
					return
				}
				if strings.TrimSpace(line) == "" {
					continue
				}

				out, err := session.Process(sessionCtx, line)
				if out != "" {
					userInterface.WriteMessage(out)
				}
				if err != nil {
					userInterface.WriteMessage(fmt.Sprintf("Error: %v", err))
				}

				userInterface.WriteStatus("ready", "")
			}
		}
	}()

	// Goroutine #2: Slash-command handler
	wg.Add(1)
	go func() {
		defer wg.Done()

		for {
			select {
			case <-sessionCtx.Done():
				return
			case cmd := <-userInterface.Commands():
				switch cmd.Type {
				case "list_tools":
					userInterface.WriteToolList(formatToolLines(deps.Bridge.Tools()))
				}
			}
		}
	}()

	// Run UI in main thread (blocks until exit)
	uiErr := userInterface.Start()

	// UI exited, trigger shutdown
	cancel()
	wg.Wait()

	if uiErr != nil {
		return fmt.Errorf("running UI: %w", uiErr)
	}
	return nil
}
