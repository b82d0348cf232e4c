package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/swapscope/swapscope-mcp/mcp/analytics"
	"github.com/swapscope/swapscope-mcp/mcp/api"
	"github.com/swapscope/swapscope-mcp/mcp/config"
	"github.com/swapscope/swapscope-mcp/mcp/docs"
	mcp "github.com/viant/mcp"
)

// init is the main bootstrap routine invoked by New once all options have
// been applied.  It orchestrates the individual preparation steps so that the
// logic stays easy to read and to maintain.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	// Validate configuration early to fail fast when possible.
	if err := s.config.Validate(); err != nil {
		return err
	}

	// The wrapper must exist before any entry is registered - it is applied
	// at registration time, not retroactively.
	s.initAnalytics()
	s.initAPITools()

	if err := s.initDocsProxy(ctx); err != nil {
		return fmt.Errorf("documentation proxy: %w", err)
	}
	return nil
}

// initDefaults applies fall-back values for optional dependencies that were
// not supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	s.config.Init()
}

func (s *Service) initAnalytics() {
	if s.wrapper != nil || s.config.Analytics.Disabled {
		return
	}
	groups := analytics.DefaultGroups()
	for name, group := range s.config.Analytics.Groups {
		groups.Override(name, group)
	}
	s.tracker = analytics.NewTracker(s.config.Analytics.Endpoint,
		analytics.WithGroups(groups),
		analytics.WithLogger(s.logger.With().Str("component", "analytics").Logger()))
	s.wrapper = s.tracker.WrapTool
}

func (s *Service) initAPITools() {
	if s.apiClient == nil {
		opts := []api.Option{
			api.WithBaseURL(s.config.API.BaseURL),
			api.WithAPIKey(s.config.API.APIKey),
		}
		if timeout := s.config.APITimeout(); timeout > 0 {
			opts = append(opts, api.WithTimeout(timeout))
		}
		s.apiClient = api.NewClient(opts...)
	}
	s.AddTools(api.Tools(s.apiClient)...)
}

// initDocsProxy wires the GitBook proxy subsystem and warms its catalogue.
// Exhausting the warm-up attempts is not fatal: the service starts with the
// three meta tools live and zero proxied tools.
func (s *Service) initDocsProxy(ctx context.Context) error {
	operations := s.docsOperations
	if operations == nil {
		if s.config.Docs.URL == "" {
			return nil // docs proxy not configured
		}
		clientOptions := &mcp.ClientOptions{
			Name:    "swapscope-mcp",
			Version: Version,
			Transport: mcp.ClientTransport{
				Type:                "sse",
				ClientTransportHTTP: mcp.ClientTransportHTTP{URL: s.config.Docs.URL},
			},
		}
		clientOptions.Init()
		cli, err := mcp.NewClient(docs.NewNoopHandler(), clientOptions)
		if err != nil {
			return fmt.Errorf("create client %q: %w", s.config.Docs.URL, err)
		}
		operations = cli
	}

	docsLogger := s.logger.With().Str("component", "docs").Logger()
	clientOpts := []docs.ClientOption{docs.WithClientLogger(docsLogger)}
	if timeout := s.config.DocsCallTimeout(); timeout > 0 {
		clientOpts = append(clientOpts, docs.WithCallTimeout(timeout))
	}
	client := docs.NewClient(operations, clientOpts...)
	cache := docs.NewCache(client,
		docs.WithTTL(s.config.DocsTTL()),
		docs.WithCacheLogger(docsLogger))

	registrarOpts := []docs.RegistrarOption{
		docs.WithPrefix(s.config.Docs.Prefix),
		docs.WithRegistrarLogger(docsLogger),
	}
	if s.config.Docs.FallbackURL != "" {
		registrarOpts = append(registrarOpts, docs.WithFallbackURL(s.config.Docs.FallbackURL))
	}
	s.registrar = docs.NewRegistrar(client, cache, s, registrarOpts...)

	s.warmDocs(ctx)
	return nil
}

// warmDocs retries the initial catalogue discovery with a fixed delay.
func (s *Service) warmDocs(ctx context.Context) {
	attempts := s.config.Docs.WarmupAttempts
	delay := s.config.WarmupDelay()
	for attempt := 1; attempt <= attempts; attempt++ {
		if count := s.registrar.RegisterAll(ctx); count > 0 {
			s.logger.Info().Int("tools", count).Msg("documentation tools discovered")
			return
		}
		if attempt < attempts {
			time.Sleep(delay)
		}
	}
	s.logger.Warn().Int("attempts", attempts).
		Msg("no documentation tools discovered, serving meta tools only")
}
