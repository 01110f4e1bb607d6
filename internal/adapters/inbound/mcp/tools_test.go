package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/ragicss/sizebudget/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configWith(t *testing.T, files map[string]int) domain.Config {
	t.Helper()
	dir := t.TempDir()
	for name, size := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0644))
	}
	cfg := domain.DefaultConfig()
	cfg.OutputDir = dir
	return cfg
}

func callCheck(t *testing.T, cfg domain.Config, args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	req := mcplib.CallToolRequest{}
	req.Params.Name = "sizebudget_check"
	req.Params.Arguments = args
	res, err := handleCheck(cfg)(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	return res
}

func contentText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	tc, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func TestHandleCheck_JSON(t *testing.T) {
	cfg := configWith(t, map[string]int{"ragi.css": 20 * 1024})

	res := callCheck(t, cfg, nil)
	assert.False(t, res.IsError)

	var run domain.RunResult
	require.NoError(t, json.Unmarshal([]byte(contentText(t, res)), &run))
	assert.False(t, run.Passed)
	assert.Equal(t, domain.VerdictFail, run.Artifacts[0].Checks[0].Verdict)
	assert.False(t, run.Artifacts[1].Found)
}

func TestHandleCheck_Text(t *testing.T) {
	cfg := configWith(t, map[string]int{"ragi.min.css": 1024})

	res := callCheck(t, cfg, map[string]any{"format": "text"})
	assert.False(t, res.IsError)
	text := contentText(t, res)
	assert.Contains(t, text, "ragi.css - Not found (skipping)")
	assert.Contains(t, text, "All size checks passed!")
}

func TestHandleCheck_UnknownFormat(t *testing.T) {
	res := callCheck(t, configWith(t, nil), map[string]any{"format": "xml"})
	assert.True(t, res.IsError)
}

func TestHandleCheck_UnreadableArtifact(t *testing.T) {
	cfg := configWith(t, nil)
	require.NoError(t, os.Mkdir(filepath.Join(cfg.OutputDir, "ragi.css"), 0755))

	res := callCheck(t, cfg, nil)
	assert.True(t, res.IsError)
	assert.Contains(t, contentText(t, res), "check failed")
}

func TestHandleBudgetResource(t *testing.T) {
	cfg := domain.DefaultConfig()
	tighter := 3 * domain.KiB
	cfg.Artifacts[1].MaxCompressedBytes = &tighter

	contents, err := handleBudgetResource(cfg)(context.Background(), mcplib.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	trc, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, budgetURI, trc.URI)

	var view budgetView
	require.NoError(t, json.Unmarshal([]byte(trc.Text), &view))
	assert.Equal(t, "dist", view.OutputDir)
	require.Len(t, view.Artifacts, 2)
	assert.Equal(t, 5*domain.KiB, view.Artifacts[0].Budget.MaxCompressedBytes)
	assert.Equal(t, tighter, view.Artifacts[1].Budget.MaxCompressedBytes)
}
