package docs

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/swapscope/swapscope-mcp/internal/conv"
	"github.com/swapscope/swapscope-mcp/mcp/tool"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// ToolSink receives built entries.  Implementations must deduplicate by tool
// name so that repeated RegisterAll runs stay idempotent.
type ToolSink interface {
	AddTools(entries ...tool.Entry)
}

// ToolCaller abstracts the subset of Client the registrar forwards calls to.
type ToolCaller interface {
	CallTool(ctx context.Context, name string, args map[string]interface{}) *mcpschema.CallToolResult
}

// Registrar exposes the remote documentation tools as prefixed local tools
// plus three meta tools (health, refresh, list_tools) that keep functioning
// when the upstream is unreachable.
type Registrar struct {
	caller      ToolCaller
	cache       *Cache
	sink        ToolSink
	prefix      string
	fallbackURL string
	logger      zerolog.Logger

	// Guards the one-time meta tool registration.  Set synchronously before
	// the first network suspension so concurrent RegisterAll calls cannot
	// both observe "not yet registered".
	metaRegistered atomic.Bool
}

// RegistrarOption customises a Registrar.
type RegistrarOption func(*Registrar)

// WithPrefix overrides the gitbook namespace prefix.
func WithPrefix(prefix string) RegistrarOption {
	return func(r *Registrar) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// WithFallbackURL sets the documentation URL suggested when proxied calls
// fail.
func WithFallbackURL(url string) RegistrarOption {
	return func(r *Registrar) { r.fallbackURL = url }
}

// WithRegistrarLogger attaches a logger; the default discards everything.
func WithRegistrarLogger(logger zerolog.Logger) RegistrarOption {
	return func(r *Registrar) { r.logger = logger }
}

// NewRegistrar builds a registrar that publishes tools into sink.
func NewRegistrar(caller ToolCaller, cache *Cache, sink ToolSink, opts ...RegistrarOption) *Registrar {
	r := &Registrar{
		caller:      caller,
		cache:       cache,
		sink:        sink,
		prefix:      DefaultPrefix,
		fallbackURL: "https://docs.swapscope.io",
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterAll publishes the three meta tools (first run only) and one proxy
// entry per currently known remote tool.  It is safe to call once per
// incoming connection; the sink deduplicates proxy entries and the meta tools
// are guarded explicitly.  It returns the number of proxied tools.
func (r *Registrar) RegisterAll(ctx context.Context) int {
	if r.metaRegistered.CompareAndSwap(false, true) {
		r.sink.AddTools(r.metaEntries()...)
	}
	return r.registerProxies(ctx)
}

func (r *Registrar) registerProxies(ctx context.Context) int {
	tools := r.cache.Tools(ctx)
	entries := make([]tool.Entry, 0, len(tools))
	for i := range tools {
		entry, err := r.buildEntry(&tools[i])
		if err != nil {
			r.logger.Warn().Err(err).Str("tool", tools[i].Name).Msg("skipping remote tool")
			continue
		}
		entries = append(entries, entry)
	}
	r.sink.AddTools(entries...)
	return len(entries)
}

// buildEntry converts one remote definition into a local entry.  Failures are
// contained per tool so one malformed definition never aborts the batch.
func (r *Registrar) buildEntry(remote *mcpschema.Tool) (entry tool.Entry, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("build tool entry: %v", rec)
		}
	}()
	if remote.Name == "" {
		return tool.Entry{}, fmt.Errorf("remote tool has no name")
	}

	fields := TranslateSchema(remote.InputSchema)
	localName := LocalName(r.prefix, remote.Name)
	remoteName := remote.Name

	handler := func(ctx context.Context, req *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		args := map[string]interface{}(req.Params.Arguments)
		if verr := ValidateArguments(fields, args); verr != nil {
			return tool.ErrorResult(fmt.Sprintf("invalid arguments for %s: %v", localName, verr)), nil
		}
		res := r.caller.CallTool(ctx, remoteName, args)
		if tool.IsError(res) {
			res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
				Type: "text",
				Text: r.remediationText(),
			})
		}
		return res, nil
	}

	return tool.Entry{
		Metadata: mcpschema.Tool{
			Name:        localName,
			Description: remote.Description,
			InputSchema: BuildInputSchema(fields),
		},
		Handler: handler,
	}, nil
}

func (r *Registrar) remediationText() string {
	return fmt.Sprintf("If this keeps failing, run %s_refresh to re-discover the documentation tools, or browse the documentation directly: %s", r.prefix, r.fallbackURL)
}

// ToolNames returns every currently proxyable local tool name.  When the
// remote catalogue cannot be fetched it degrades to just the three fixed meta
// tool names.
func (r *Registrar) ToolNames(ctx context.Context) []string {
	names := []string{
		LocalName(r.prefix, "health"),
		LocalName(r.prefix, "refresh"),
		LocalName(r.prefix, "list_tools"),
	}
	for _, remote := range r.cache.Tools(ctx) {
		if remote.Name == "" {
			continue
		}
		names = append(names, LocalName(r.prefix, remote.Name))
	}
	return names
}

func (r *Registrar) metaEntries() []tool.Entry {
	meta := func(name, description string, handler tool.Handler) tool.Entry {
		return tool.Entry{
			Metadata: mcpschema.Tool{
				Name:        LocalName(r.prefix, name),
				Description: conv.Pointer(description),
				InputSchema: tool.EmptyInputSchema(),
			},
			Handler: handler,
		}
	}
	return []tool.Entry{
		meta("health", "Report reachability of the documentation server and the number of discovered tools", r.healthHandler),
		meta("refresh", "Invalidate the cached documentation tool list and re-discover it from the server", r.refreshHandler),
		meta("list_tools", "List every proxied documentation tool with its parameters", r.listToolsHandler),
	}
}

func (r *Registrar) healthHandler(ctx context.Context, _ *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	tools := r.cache.Tools(ctx)
	if len(tools) == 0 {
		return tool.TextResult(fmt.Sprintf(
			"Documentation proxy degraded: no tools discovered. The GitBook server may be unreachable. Run %s_refresh to retry, or browse %s.",
			r.prefix, r.fallbackURL)), nil
	}
	return tool.TextResult(fmt.Sprintf("Documentation proxy healthy: %d tool(s) discovered.", len(tools))), nil
}

func (r *Registrar) refreshHandler(ctx context.Context, _ *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	r.cache.Invalidate()
	count := r.registerProxies(ctx)
	if count == 0 {
		return tool.TextResult(fmt.Sprintf(
			"Refresh finished but no documentation tools were discovered. The GitBook server may be down; the documentation remains available at %s.",
			r.fallbackURL)), nil
	}
	names := make([]string, 0, count)
	for _, remote := range r.cache.Tools(ctx) {
		if remote.Name != "" {
			names = append(names, LocalName(r.prefix, remote.Name))
		}
	}
	sort.Strings(names)
	return tool.TextResult(fmt.Sprintf("Refreshed documentation tools (%d): %s", count, strings.Join(names, ", "))), nil
}

func (r *Registrar) listToolsHandler(ctx context.Context, _ *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	tools := r.cache.Tools(ctx)
	if len(tools) == 0 {
		return tool.TextResult(fmt.Sprintf(
			"No documentation tools are currently proxied. Run %s_refresh to re-discover them, or browse %s.",
			r.prefix, r.fallbackURL)), nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Proxied documentation tools (%d):\n", len(tools))
	for _, remote := range tools {
		if remote.Name == "" {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n", LocalName(r.prefix, remote.Name))
		if desc := conv.Dereference(remote.Description); desc != "" {
			fmt.Fprintf(&b, "  %s\n", desc)
		}
		fields := TranslateSchema(remote.InputSchema)
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			field := fields[name]
			requirement := "optional"
			if field.Required {
				requirement = "required"
			}
			fmt.Fprintf(&b, "  - %s (%s, %s)\n", name, field.Kind, requirement)
		}
	}
	return tool.TextResult(b.String()), nil
}
