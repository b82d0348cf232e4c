package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mcpschema "github.com/viant/mcp-protocol/schema"

	"github.com/swapscope/swapscope-mcp/mcp/tool"
)

func invoke(t *testing.T, entries []tool.Entry, name string, args map[string]interface{}) *mcpschema.CallToolResult {
	t.Helper()
	for _, entry := range entries {
		if entry.Metadata.Name != name {
			continue
		}
		res, jerr := entry.Handler(context.Background(), &mcpschema.CallToolRequest{
			Params: mcpschema.CallToolRequestParams{
				Name:      name,
				Arguments: mcpschema.CallToolRequestParamsArguments(args),
			},
		})
		require.Nil(t, jerr)
		require.NotNil(t, res)
		return res
	}
	t.Fatalf("tool %s not found", name)
	return nil
}

func TestTools_Names(t *testing.T) {
	entries := Tools(NewClient())
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Metadata.Name)
	}
	assert.EqualValues(t, []string{
		"list_chains",
		"get_token",
		"get_token_price",
		"list_pools",
		"get_swap_quote",
		"get_gas_price",
		"search_tokens",
	}, names)
}

func TestTools_GetTokenPrice(t *testing.T) {
	client := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chain":"ethereum","address":"0xabc","priceUsd":2450.5,"change24h":1.3,"updatedAt":"2025-01-01T00:00:00Z"}`))
	})
	entries := Tools(client)

	res := invoke(t, entries, "get_token_price", map[string]interface{}{
		"chain":   "ethereum",
		"address": "0xabc",
	})
	assert.False(t, tool.IsError(res))
	assert.Contains(t, res.Content[0].Text, "2450.5")
}

func TestTools_MissingArguments(t *testing.T) {
	entries := Tools(NewClient())

	res := invoke(t, entries, "get_token_price", map[string]interface{}{"chain": "ethereum"})
	assert.True(t, tool.IsError(res))
	assert.Contains(t, res.Content[0].Text, "requires chain and address")

	res = invoke(t, entries, "get_swap_quote", map[string]interface{}{"chain": "ethereum"})
	assert.True(t, tool.IsError(res))

	res = invoke(t, entries, "search_tokens", map[string]interface{}{})
	assert.True(t, tool.IsError(res))
}

func TestTools_ListPoolsForwardsFilter(t *testing.T) {
	client := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.EqualValues(t, "ethereum", r.URL.Query().Get("chain"))
		assert.EqualValues(t, "10", r.URL.Query().Get("limit"))
		w.Write([]byte(`[]`))
	})
	entries := Tools(client)

	// JSON-decoded arguments arrive as float64.
	res := invoke(t, entries, "list_pools", map[string]interface{}{
		"chain": "ethereum",
		"limit": float64(10),
	})
	assert.False(t, tool.IsError(res))
}

func TestTools_APIFailureBecomesErrorResult(t *testing.T) {
	client := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	entries := Tools(client)

	res := invoke(t, entries, "list_chains", nil)
	assert.True(t, tool.IsError(res))
	assert.Contains(t, res.Content[0].Text, "SwapScope API request failed")
}
