package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"

	"github.com/swapscope/swapscope-mcp/internal/conv"
	"github.com/swapscope/swapscope-mcp/mcp/tool"
)

func newRegistry() *Service {
	return &Service{index: map[string]int{}}
}

func textEntry(name, text string) tool.Entry {
	return tool.Entry{
		Metadata: mcpschema.Tool{
			Name:        name,
			Description: conv.Pointer(name + " description"),
			InputSchema: tool.EmptyInputSchema(),
		},
		Handler: func(ctx context.Context, _ *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			return tool.TextResult(text), nil
		},
	}
}

func TestAddTools_KeepsFirstDefinition(t *testing.T) {
	svc := newRegistry()
	svc.AddTools(textEntry("alpha", "first"))
	svc.AddTools(textEntry("alpha", "second"), textEntry("beta", "b"))

	assert.EqualValues(t, []string{"alpha", "beta"}, svc.ToolNames())

	res, err := svc.CallTool(context.Background(), "alpha", nil)
	require.NoError(t, err)
	assert.EqualValues(t, "first", res.Content[0].Text)
}

func TestAddTools_SkipsNameless(t *testing.T) {
	svc := newRegistry()
	svc.AddTools(tool.Entry{}, textEntry("alpha", "a"))
	assert.EqualValues(t, []string{"alpha"}, svc.ToolNames())
}

func TestAddTools_WrapperAppliedOnce(t *testing.T) {
	var wrapped []string
	svc := newRegistry()
	svc.wrapper = func(name string, next tool.Handler) tool.Handler {
		wrapped = append(wrapped, name)
		return next
	}

	svc.AddTools(textEntry("alpha", "a"))
	svc.AddTools(textEntry("alpha", "a"), textEntry("beta", "b"))

	// Duplicates are rejected before wrapping.
	assert.EqualValues(t, []string{"alpha", "beta"}, wrapped)
}

func TestTools_SortedSnapshot(t *testing.T) {
	svc := newRegistry()
	svc.AddTools(textEntry("zeta", "z"), textEntry("alpha", "a"), textEntry("mid", "m"))

	assert.EqualValues(t, []string{"alpha", "mid", "zeta"}, svc.ToolNames())
}

func TestLookupToolAndMetadata(t *testing.T) {
	svc := newRegistry()
	svc.AddTools(textEntry("alpha", "a"))

	entry, ok := svc.LookupTool("alpha")
	require.True(t, ok)
	assert.EqualValues(t, "alpha", entry.Metadata.Name)

	desc, schema, ok := svc.ToolMetadata("alpha")
	require.True(t, ok)
	assert.EqualValues(t, "alpha description", desc)
	assert.NotNil(t, schema)

	_, _, ok = svc.ToolMetadata("missing")
	assert.False(t, ok)
}

func TestMatchTools(t *testing.T) {
	svc := newRegistry()
	svc.AddTools(textEntry("gitbook_search", "s"), textEntry("gitbook_health", "h"), textEntry("get_token", "t"))

	assert.Len(t, svc.MatchTools("*"), 3)
	assert.Len(t, svc.MatchTools("gitbook_*"), 2)
	assert.Len(t, svc.MatchTools("get_token"), 1)
	assert.Empty(t, svc.MatchTools(""))
}

func TestCallTool_Errors(t *testing.T) {
	svc := newRegistry()
	svc.AddTools(tool.Entry{
		Metadata: mcpschema.Tool{Name: "broken", InputSchema: tool.EmptyInputSchema()},
		Handler: func(ctx context.Context, _ *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			return nil, jsonrpc.NewError(jsonrpc.InternalError, "exploded", nil)
		},
	})

	_, err := svc.CallTool(context.Background(), "missing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tool")

	_, err = svc.CallTool(context.Background(), "broken", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exploded")
}
