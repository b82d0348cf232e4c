package mcp

import (
	"context"
	"fmt"
	"sort"

	"github.com/swapscope/swapscope-mcp/internal/conv"
	"github.com/swapscope/swapscope-mcp/mcp/matcher"
	"github.com/swapscope/swapscope-mcp/mcp/tool"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// AddTools appends entries to the shared registry, applying the configured
// wrapper and skipping duplicates so that every registration path behaves
// consistently. It implements the documentation registrar's sink contract.
func (s *Service) AddTools(entries ...tool.Entry) {
	if len(entries) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range entries {
		name := entry.Metadata.Name
		if name == "" {
			continue
		}
		if _, dup := s.index[name]; dup {
			continue // keep first definition encountered
		}
		if s.wrapper != nil {
			entry.Handler = s.wrapper(name, entry.Handler)
		}
		s.index[name] = len(s.entries)
		s.entries = append(s.entries, entry)
	}
}

// Tools returns a snapshot of every registered entry ordered by name.
func (s *Service) Tools() []tool.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]tool.Entry, len(s.entries))
	copy(out, s.entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Metadata.Name < out[j].Metadata.Name })
	return out
}

// ToolNames returns all registered tool names.  The slice is a copy and
// therefore safe for callers to modify.
func (s *Service) ToolNames() []string {
	tools := s.Tools()
	names := make([]string, len(tools))
	for i, entry := range tools {
		names[i] = entry.Metadata.Name
	}
	return names
}

// LookupTool returns the entry registered under name.
func (s *Service) LookupTool(name string) (tool.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[name]
	if !ok {
		return tool.Entry{}, false
	}
	return s.entries[i], true
}

// ToolMetadata returns description and input schema for a named tool when
// present. The second return value is false when the tool does not exist.
func (s *Service) ToolMetadata(name string) (string, interface{}, bool) {
	entry, ok := s.LookupTool(name)
	if !ok {
		return "", nil, false
	}
	return conv.Dereference(entry.Metadata.Description), entry.Metadata.InputSchema, true
}

// MatchTools returns every entry whose name satisfies the pattern.
func (s *Service) MatchTools(pattern string) []tool.Entry {
	var out []tool.Entry
	for _, entry := range s.Tools() {
		if matcher.Match(pattern, entry.Metadata.Name) {
			out = append(out, entry)
		}
	}
	return out
}

// CallTool invokes a registered tool handler with the supplied arguments.
// Used by the CLI; the MCP serving path dispatches through the handler
// registry directly.
func (s *Service) CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcpschema.CallToolResult, error) {
	entry, ok := s.LookupTool(name)
	if !ok {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}
	req := &mcpschema.CallToolRequest{
		Params: mcpschema.CallToolRequestParams{
			Name:      name,
			Arguments: mcpschema.CallToolRequestParamsArguments(args),
		},
	}
	res, jerr := entry.Handler(ctx, req)
	if jerr != nil {
		return nil, fmt.Errorf("tool %q failed: %s", name, jerr.Message)
	}
	return res, nil
}
