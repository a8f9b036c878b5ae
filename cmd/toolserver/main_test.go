package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestCalculateSumAddsNumbers(t *testing.T) {
	result, err := handleCalculateSum(context.Background(), callRequest("calculate_sum", map[string]interface{}{
		"numbers": []interface{}{2.0, 2.0},
	}))

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "4", textOf(t, result))
}

func TestCalculateSumKeepsFractions(t *testing.T) {
	result, err := handleCalculateSum(context.Background(), callRequest("calculate_sum", map[string]interface{}{
		"numbers": []interface{}{1.5, 2.25},
	}))

	require.NoError(t, err)
	assert.Equal(t, "3.75", textOf(t, result))
}

func TestCalculateSumRequiresNumbers(t *testing.T) {
	result, err := handleCalculateSum(context.Background(), callRequest("calculate_sum", map[string]interface{}{}))

	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestCurrentTimeUsesRequestedFormat(t *testing.T) {
	result, err := handleCurrentTime(context.Background(), callRequest("current_time", map[string]interface{}{
		"format": "2006",
	}))

	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006"), textOf(t, result))
}

func TestCurrentTimeDefaultsToRFC3339(t *testing.T) {
	result, err := handleCurrentTime(context.Background(), callRequest("current_time", nil))

	require.NoError(t, err)
	_, parseErr := time.Parse(time.RFC3339, textOf(t, result))
	assert.NoError(t, parseErr)
}

func TestGitLogListsCommits(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	worktree, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello"), 0o644))
	_, err = worktree.Add("README.md")
	require.NoError(t, err)

	signature := &object.Signature{Name: "Tester", Email: "tester@example.com", When: time.Now()}
	_, err = worktree.Commit("initial commit", &git.CommitOptions{Author: signature})
	require.NoError(t, err)

	result, err := handleGitLog(context.Background(), callRequest("git_log", map[string]interface{}{
		"path": dir,
	}))

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, textOf(t, result), "initial commit")
	assert.Contains(t, textOf(t, result), "Tester")
}

func TestGitLogHonorsLimit(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	worktree, err := repo.Worktree()
	require.NoError(t, err)

	signature := &object.Signature{Name: "Tester", Email: "tester@example.com", When: time.Now()}
	for i, name := range []string{"a.txt", "b.txt", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
		_, err = worktree.Add(name)
		require.NoError(t, err)
		signature.When = time.Now().Add(time.Duration(i) * time.Second)
		_, err = worktree.Commit("commit "+name, &git.CommitOptions{Author: signature})
		require.NoError(t, err)
	}

	out, err := recentCommits(dir, 2)
	require.NoError(t, err)
	assert.Len(t, strings.Split(out, "\n"), 2)
}

func TestGitLogReportsMissingRepository(t *testing.T) {
	result, err := handleGitLog(context.Background(), callRequest("git_log", map[string]interface{}{
		"path": t.TempDir(),
	}))

	require.NoError(t, err)
	assert.True(t, result.IsError)
}
