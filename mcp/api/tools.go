package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/swapscope/swapscope-mcp/internal/conv"
	"github.com/swapscope/swapscope-mcp/mcp/tool"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// Tools returns the static tool entries exposing the REST API.  Each entry's
// handler shapes the typed response into a single JSON text block; client
// failures become error-flagged results, never handler errors.
func Tools(client *Client) []tool.Entry {
	return []tool.Entry{
		{
			Metadata: mcpschema.Tool{
				Name:        "list_chains",
				Description: conv.Pointer("List the blockchain networks supported by SwapScope"),
				InputSchema: tool.EmptyInputSchema(),
			},
			Handler: func(ctx context.Context, _ *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
				return shape(client.Chains(ctx))
			},
		},
		{
			Metadata: mcpschema.Tool{
				Name:        "get_token",
				Description: conv.Pointer("Get metadata for a token by chain and contract address"),
				InputSchema: objectSchema(map[string]map[string]interface{}{
					"chain":   {"type": "string", "description": "Chain identifier, e.g. ethereum"},
					"address": {"type": "string", "description": "Token contract address"},
				}, "chain", "address"),
			},
			Handler: func(ctx context.Context, req *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
				chain, address := stringArg(req, "chain"), stringArg(req, "address")
				if chain == "" || address == "" {
					return tool.ErrorResult("get_token requires chain and address"), nil
				}
				return shape(client.Token(ctx, chain, address))
			},
		},
		{
			Metadata: mcpschema.Tool{
				Name:        "get_token_price",
				Description: conv.Pointer("Get the current USD price and 24h change for a token"),
				InputSchema: objectSchema(map[string]map[string]interface{}{
					"chain":   {"type": "string", "description": "Chain identifier, e.g. ethereum"},
					"address": {"type": "string", "description": "Token contract address"},
				}, "chain", "address"),
			},
			Handler: func(ctx context.Context, req *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
				chain, address := stringArg(req, "chain"), stringArg(req, "address")
				if chain == "" || address == "" {
					return tool.ErrorResult("get_token_price requires chain and address"), nil
				}
				return shape(client.TokenPrice(ctx, chain, address))
			},
		},
		{
			Metadata: mcpschema.Tool{
				Name:        "list_pools",
				Description: conv.Pointer("List top liquidity pools, optionally filtered by chain and token"),
				InputSchema: objectSchema(map[string]map[string]interface{}{
					"chain": {"type": "string", "description": "Chain identifier to filter by"},
					"token": {"type": "string", "description": "Token address or symbol to filter by"},
					"limit": {"type": "number", "description": "Maximum number of pools to return"},
				}),
			},
			Handler: func(ctx context.Context, req *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
				filter := PoolsFilter{
					Chain: stringArg(req, "chain"),
					Token: stringArg(req, "token"),
					Limit: intArg(req, "limit"),
				}
				return shape(client.Pools(ctx, filter))
			},
		},
		{
			Metadata: mcpschema.Tool{
				Name:        "get_swap_quote",
				Description: conv.Pointer("Get an indicative swap quote for a token pair"),
				InputSchema: objectSchema(map[string]map[string]interface{}{
					"chain":    {"type": "string", "description": "Chain identifier, e.g. ethereum"},
					"tokenIn":  {"type": "string", "description": "Input token address"},
					"tokenOut": {"type": "string", "description": "Output token address"},
					"amountIn": {"type": "string", "description": "Input amount in the token's smallest unit"},
				}, "chain", "tokenIn", "tokenOut", "amountIn"),
			},
			Handler: func(ctx context.Context, req *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
				quoteReq := QuoteRequest{
					Chain:    stringArg(req, "chain"),
					TokenIn:  stringArg(req, "tokenIn"),
					TokenOut: stringArg(req, "tokenOut"),
					AmountIn: stringArg(req, "amountIn"),
				}
				if quoteReq.Chain == "" || quoteReq.TokenIn == "" || quoteReq.TokenOut == "" || quoteReq.AmountIn == "" {
					return tool.ErrorResult("get_swap_quote requires chain, tokenIn, tokenOut and amountIn"), nil
				}
				return shape(client.Quote(ctx, quoteReq))
			},
		},
		{
			Metadata: mcpschema.Tool{
				Name:        "get_gas_price",
				Description: conv.Pointer("Get current gas price tiers for a chain, in gwei"),
				InputSchema: objectSchema(map[string]map[string]interface{}{
					"chain": {"type": "string", "description": "Chain identifier, e.g. ethereum"},
				}, "chain"),
			},
			Handler: func(ctx context.Context, req *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
				chain := stringArg(req, "chain")
				if chain == "" {
					return tool.ErrorResult("get_gas_price requires chain"), nil
				}
				return shape(client.GasPrice(ctx, chain))
			},
		},
		{
			Metadata: mcpschema.Tool{
				Name:        "search_tokens",
				Description: conv.Pointer("Search tracked tokens by symbol or name"),
				InputSchema: objectSchema(map[string]map[string]interface{}{
					"query": {"type": "string", "description": "Symbol or name fragment to search for"},
					"limit": {"type": "number", "description": "Maximum number of results"},
				}, "query"),
			},
			Handler: func(ctx context.Context, req *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
				query := stringArg(req, "query")
				if query == "" {
					return tool.ErrorResult("search_tokens requires query"), nil
				}
				return shape(client.SearchTokens(ctx, query, intArg(req, "limit")))
			},
		},
	}
}

func objectSchema(properties map[string]map[string]interface{}, required ...string) mcpschema.ToolInputSchema {
	return mcpschema.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

func stringArg(req *mcpschema.CallToolRequest, name string) string {
	value, _ := req.Params.Arguments[name].(string)
	return value
}

func intArg(req *mcpschema.CallToolRequest, name string) int {
	switch v := req.Params.Arguments[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// shape folds a typed API response and error into a call result.
func shape[T any](value T, err error) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	if err != nil {
		return tool.ErrorResult(fmt.Sprintf("SwapScope API request failed: %v", err)), nil
	}
	data, merr := json.MarshalIndent(value, "", "  ")
	if merr != nil {
		return tool.ErrorResult(fmt.Sprintf("encoding response failed: %v", merr)), nil
	}
	return tool.TextResult(string(data)), nil
}
