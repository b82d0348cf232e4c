package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"

	"github.com/swapscope/swapscope-mcp/mcp/tool"
)

type eventCollector struct {
	mu     sync.Mutex
	events []Event
}

func (c *eventCollector) handler(w http.ResponseWriter, r *http.Request) {
	var event Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c.mu.Lock()
	c.events = append(c.events, event)
	c.mu.Unlock()
}

func (c *eventCollector) snapshot() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

func callRequest(name string) *mcpschema.CallToolRequest {
	return &mcpschema.CallToolRequest{
		Params: mcpschema.CallToolRequestParams{Name: name},
	}
}

func TestTracker_RecordsSuccessAndFailure(t *testing.T) {
	collector := &eventCollector{}
	server := httptest.NewServer(http.HandlerFunc(collector.handler))
	defer server.Close()

	tracker := NewTracker(server.URL)

	succeed := tracker.WrapTool("get_token_price", func(ctx context.Context, _ *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		return tool.TextResult("ok"), nil
	})
	fail := tracker.WrapTool("gitbook_search", func(ctx context.Context, _ *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		return tool.ErrorResult("boom"), nil
	})

	ctx := context.Background()
	res, jerr := succeed(ctx, callRequest("get_token_price"))
	require.Nil(t, jerr)
	assert.False(t, tool.IsError(res))

	res, jerr = fail(ctx, callRequest("gitbook_search"))
	require.Nil(t, jerr)
	assert.True(t, tool.IsError(res))

	// Close drains the queue, so every recorded event has been posted once it
	// returns.
	tracker.Close()

	events := collector.snapshot()
	require.Len(t, events, 2)

	assert.EqualValues(t, "get_token_price", events[0].Tool)
	assert.EqualValues(t, "tokens", events[0].Group)
	assert.True(t, events[0].Success)
	assert.NotEmpty(t, events[0].ID)
	assert.NotEmpty(t, events[0].Timestamp)

	assert.EqualValues(t, "gitbook_search", events[1].Tool)
	assert.EqualValues(t, "documentation", events[1].Group)
	assert.False(t, events[1].Success)
	assert.NotEqual(t, events[0].ID, events[1].ID)
}

func TestTracker_HandlerErrorCountsAsFailure(t *testing.T) {
	collector := &eventCollector{}
	server := httptest.NewServer(http.HandlerFunc(collector.handler))
	defer server.Close()

	tracker := NewTracker(server.URL)
	wrapped := tracker.WrapTool("list_pools", func(ctx context.Context, _ *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		return nil, jsonrpc.NewError(jsonrpc.InternalError, "exploded", nil)
	})

	_, jerr := wrapped(context.Background(), callRequest("list_pools"))
	require.NotNil(t, jerr)
	tracker.Close()

	events := collector.snapshot()
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.EqualValues(t, "pools", events[0].Group)
}

func TestTracker_InvocationAfterCloseIsDropped(t *testing.T) {
	collector := &eventCollector{}
	server := httptest.NewServer(http.HandlerFunc(collector.handler))
	defer server.Close()

	tracker := NewTracker(server.URL)
	wrapped := tracker.WrapTool("get_token", func(ctx context.Context, _ *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		return tool.TextResult("ok"), nil
	})

	tracker.Close()

	// A tool call draining after shutdown must still succeed; its event is
	// dropped instead of panicking on the closed queue.
	res, jerr := wrapped(context.Background(), callRequest("get_token"))
	require.Nil(t, jerr)
	assert.False(t, tool.IsError(res))
	assert.EqualValues(t, "ok", res.Content[0].Text)
	assert.Empty(t, collector.snapshot())
}

func TestTracker_CloseIsIdempotent(t *testing.T) {
	tracker := NewTracker("")
	tracker.Close()
	tracker.Close()
}

func TestTracker_EmptyEndpointDiscards(t *testing.T) {
	tracker := NewTracker("")
	wrapped := tracker.WrapTool("list_chains", func(ctx context.Context, _ *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		return tool.TextResult("ok"), nil
	})

	// No endpoint configured; the call must still go through untouched.
	res, jerr := wrapped(context.Background(), callRequest("list_chains"))
	require.Nil(t, jerr)
	assert.False(t, tool.IsError(res))
	tracker.Close()
}
