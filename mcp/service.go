package mcp

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/swapscope/swapscope-mcp/mcp/analytics"
	"github.com/swapscope/swapscope-mcp/mcp/api"
	"github.com/swapscope/swapscope-mcp/mcp/config"
	"github.com/swapscope/swapscope-mcp/mcp/docs"
	"github.com/swapscope/swapscope-mcp/mcp/tool"
	mcpclient "github.com/viant/mcp/client"
)

// Service bundles configuration, the REST API tool set and the documentation
// proxy behind one tool registry.  All heavy lifting during instantiation
// lives in bootstrap.go to keep this file focused on the public surface.
type Service struct {
	config  *config.Config
	logger  zerolog.Logger
	wrapper tool.Wrapper

	apiClient *api.Client
	tracker   *analytics.Tracker
	registrar *docs.Registrar

	// docsOperations overrides the outbound documentation connection,
	// primarily for tests that run an in-process upstream.
	docsOperations mcpclient.Interface

	// guard concurrent registry modifications.
	mu      sync.RWMutex
	entries []tool.Entry
	index   map[string]int

	shutdown atomic.Bool
}

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted a zero value
// config is assumed.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) { s.config = cfg }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithToolWrapper decorates every handler at registration time.  It replaces
// the default analytics wrapper.
func WithToolWrapper(wrapper tool.Wrapper) Option {
	return func(s *Service) { s.wrapper = wrapper }
}

// WithDocsConnection overrides the outbound connection to the documentation
// MCP server.
func WithDocsConnection(cli mcpclient.Interface) Option {
	return func(s *Service) { s.docsOperations = cli }
}

// WithAPIClient overrides the REST API client.
func WithAPIClient(client *api.Client) Option {
	return func(s *Service) { s.apiClient = client }
}

// New constructs a new service instance. The actual bootstrap is handled by
// init() in bootstrap.go so that callers do not need to care about the
// internal initialisation sequence.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{index: map[string]int{}, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// Config returns the effective configuration instance passed to the service
// at construction time.  Callers must treat the returned object as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Registrar exposes the documentation proxy registrar; nil when the docs
// proxy is not configured.
func (s *Service) Registrar() *docs.Registrar { return s.registrar }

// ProxyToolNames returns the locally proxyable documentation tool names
// (remote-derived plus the three fixed meta tools).  Without a configured
// documentation proxy the list is empty.
func (s *Service) ProxyToolNames(ctx context.Context) []string {
	if s.registrar == nil {
		return nil
	}
	return s.registrar.ToolNames(ctx)
}

// Shutdown releases background resources (analytics worker).  Repeated calls
// are no-ops.
func (s *Service) Shutdown(ctx context.Context) error {
	if !s.shutdown.CompareAndSwap(false, true) {
		return nil
	}
	if s.tracker != nil {
		s.tracker.Close()
	}
	return nil
}
