package tool

import (
	"context"

	"github.com/swapscope/swapscope-mcp/internal/conv"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// Handler is the signature every locally registered tool handler implements.
// Handlers never propagate remote failures as errors; they fold them into the
// result's error flag so a tool invocation always yields a response object.
type Handler func(ctx context.Context, req *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error)

// Entry is one locally registrable tool: its advertised metadata plus the
// handler that serves invocations.
type Entry struct {
	Metadata mcpschema.Tool
	Handler  Handler
}

// Wrapper decorates a handler at registration time.  The registry applies it
// to every entry, which is how cross-cutting concerns such as analytics
// observe tool invocations without patching the registration mechanism.
type Wrapper func(name string, next Handler) Handler

// EmptyInputSchema declares a tool taking no parameters.
func EmptyInputSchema() mcpschema.ToolInputSchema {
	return mcpschema.ToolInputSchema{Type: "object", Properties: map[string]map[string]interface{}{}}
}

// TextResult wraps plain text in a successful call result.
func TextResult(text string) *mcpschema.CallToolResult {
	return &mcpschema.CallToolResult{
		Content: []mcpschema.CallToolResultContentElem{{Type: "text", Text: text}},
	}
}

// ErrorResult wraps plain text in a call result flagged as failed.
func ErrorResult(text string) *mcpschema.CallToolResult {
	res := TextResult(text)
	res.IsError = conv.Pointer(true)
	return res
}

// IsError reports whether a result carries the failure flag.
func IsError(res *mcpschema.CallToolResult) bool {
	return res != nil && conv.Dereference(res.IsError)
}
