package docs

import (
	"context"

	"github.com/viant/jsonrpc"
	protoclient "github.com/viant/mcp-protocol/client"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// noopHandler provides no-op implementations for server-initiated callbacks
// so that the outbound GitBook connection can be instantiated without wiring
// any client-side capability.
type noopHandler struct {
	implements map[string]bool
}

func (h *noopHandler) Init(ctx context.Context, capabilities *mcpschema.ClientCapabilities) {
	if len(h.implements) == 0 {
		h.implements = make(map[string]bool)
	}
	if capabilities.Elicitation != nil {
		h.implements[mcpschema.MethodElicitationCreate] = true
	}
	if capabilities.Roots != nil {
		h.implements[mcpschema.MethodRootsList] = true
	}
	if capabilities.UserInteraction != nil {
		h.implements[mcpschema.MethodInteractionCreate] = true
	}
	if capabilities.Sampling != nil {
		h.implements[mcpschema.MethodSamplingCreateMessage] = true
	}
}

func (*noopHandler) OnNotification(context.Context, *jsonrpc.Notification) {}

func (h *noopHandler) Implements(method string) bool {
	if len(h.implements) == 0 {
		h.implements = make(map[string]bool)
	}
	return h.implements[method]
}

func (*noopHandler) ListRoots(context.Context, *mcpschema.ListRootsRequestParams) (*mcpschema.ListRootsResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewError(jsonrpc.MethodNotFound, "not implemented", nil)
}

func (*noopHandler) CreateMessage(context.Context, *mcpschema.CreateMessageRequestParams) (*mcpschema.CreateMessageResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewError(jsonrpc.MethodNotFound, "not implemented", nil)
}

func (*noopHandler) Elicit(context.Context, *mcpschema.ElicitRequestParams) (*mcpschema.ElicitResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewError(jsonrpc.MethodNotFound, "not implemented", nil)
}

func (*noopHandler) CreateUserInteraction(context.Context, *mcpschema.CreateUserInteractionRequestParams) (*mcpschema.CreateUserInteractionResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewError(jsonrpc.MethodNotFound, "not implemented", nil)
}

// NewNoopHandler returns the client-side handler used for the outbound
// documentation connection.
func NewNoopHandler() protoclient.Handler { return &noopHandler{} }
