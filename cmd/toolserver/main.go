// Package main runs the demo MCP tool server over stdio. It exposes a small
// set of tools (arithmetic, clock, git history) for exercising the chat host
// end to end.
package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

func main() {
	s := server.NewMCPServer(
		"toolserver",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	sumTool := mcp.NewTool("calculate_sum",
		mcp.WithDescription("Adds a list of numbers and returns the total."),
		mcp.WithArray("numbers",
			mcp.Required(),
			mcp.Description("The numbers to add"),
		),
	)
	s.AddTool(sumTool, handleCalculateSum)

	timeTool := mcp.NewTool("current_time",
		mcp.WithDescription("Reports the current time."),
		mcp.WithString("format",
			mcp.Description("Go time layout to format with (default: RFC3339)"),
		),
	)
	s.AddTool(timeTool, handleCurrentTime)

	gitLogTool := mcp.NewTool("git_log",
		mcp.WithDescription("Lists recent commits of a local git repository."),
		mcp.WithString("path",
			mcp.Description("Path to the repository (default: current directory)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of commits to return (default: 5)"),
		),
	)
	s.AddTool(gitLogTool, handleGitLog)

	if err := server.ServeStdio(s); err != nil {
		fmt.Printf("Server error: %v\n", err)
	}
}

type sumArgs struct {
	Numbers []float64 `mapstructure:"numbers"`
}

func handleCalculateSum(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	var args sumArgs
	if err := mapstructure.Decode(raw, &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if len(args.Numbers) == 0 {
		return mcp.NewToolResultError("numbers parameter is required"), nil
	}

	var total float64
	for _, n := range args.Numbers {
		total += n
	}
	return mcp.NewToolResultText(formatNumber(total)), nil
}

type timeArgs struct {
	Format string `mapstructure:"format"`
}

func handleCurrentTime(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args timeArgs
	if raw, ok := request.Params.Arguments.(map[string]interface{}); ok {
		if err := mapstructure.Decode(raw, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
	}

	layout := args.Format
	if layout == "" {
		layout = time.RFC3339
	}
	return mcp.NewToolResultText(time.Now().Format(layout)), nil
}

type gitLogArgs struct {
	Path  string  `mapstructure:"path"`
	Limit float64 `mapstructure:"limit"`
}

func handleGitLog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args gitLogArgs
	if raw, ok := request.Params.Arguments.(map[string]interface{}); ok {
		if err := mapstructure.Decode(raw, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
	}

	path := args.Path
	if path == "" {
		path = "."
	}
	limit := int(args.Limit)
	if limit <= 0 {
		limit = 5
	}

	out, err := recentCommits(path, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("git log failed: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

// recentCommits renders the newest commits of the repository at path, one
// per line.
func recentCommits(path string, limit int) (string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("open repository %q: %w", path, err)
	}

	iter, err := repo.Log(&git.LogOptions{})
	if err != nil {
		return "", fmt.Errorf("read log: %w", err)
	}
	defer iter.Close()

	var lines []string
	for len(lines) < limit {
		commit, err := iter.Next()
		if err != nil {
			break
		}
		subject := strings.SplitN(commit.Message, "\n", 2)[0]
		lines = append(lines, fmt.Sprintf("%s %s (%s)",
			commit.Hash.String()[:7], subject, commit.Author.Name))
	}

	if len(lines) == 0 {
		return "no commits", nil
	}
	return strings.Join(lines, "\n"), nil
}

// formatNumber renders a float without a trailing .000000 when it is whole.
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
