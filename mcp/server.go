package mcp

import (
	"context"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

// NewHandler returns an MCP implementer exposing the shared tool registry.
// The hosting library invokes it once per incoming connection; re-running the
// documentation registrar here picks up an upstream that came online after
// startup while its guards keep the meta tools registered exactly once.
func (s *Service) NewHandler(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	if s.registrar != nil {
		s.registrar.RegisterAll(ctx)
	}

	impl := serverproto.NewDefaultHandler(notifier, l, cli)
	for _, entry := range s.Tools() {
		handler := entry.Handler
		impl.Registry.ToolRegistry.Put(entry.Metadata.Name, &serverproto.ToolEntry{
			Metadata: entry.Metadata,
			Handler: func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
				return handler(ctx, request)
			},
		})
	}
	return impl, nil
}
