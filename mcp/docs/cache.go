package docs

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// defaultCacheTTL is the freshness window for the remote tool catalogue.
const defaultCacheTTL = 10 * time.Minute

// ToolLister abstracts the subset of Client the cache depends on.
type ToolLister interface {
	ListTools(ctx context.Context) ([]mcpschema.Tool, error)
}

// Cache keeps the last successfully fetched tool catalogue so that local
// invocations do not hit the remote server on every call.  The (tools,
// fetchedAt) pair is replaced wholesale under the lock - readers never
// observe a half-updated set.
//
// Concurrent Tools calls racing an expired entry may each trigger an
// independent upstream fetch.  There is deliberately no single-flight
// coalescing; the duplicate fetches are harmless and the last writer wins.
type Cache struct {
	lister ToolLister
	ttl    time.Duration
	logger zerolog.Logger

	mu        sync.RWMutex
	tools     []mcpschema.Tool
	fetchedAt time.Time
}

// CacheOption customises a Cache.
type CacheOption func(*Cache)

// WithTTL overrides the default 10 minute freshness window.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithCacheLogger attaches a logger; the default discards everything.
func WithCacheLogger(logger zerolog.Logger) CacheOption {
	return func(c *Cache) { c.logger = logger }
}

// NewCache builds a cache backed by the supplied lister.
func NewCache(lister ToolLister, opts ...CacheOption) *Cache {
	c := &Cache{lister: lister, ttl: defaultCacheTTL, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tools returns the cached catalogue when fresh, otherwise refetches from the
// remote server.  A failed refetch falls back to the previous catalogue when
// one exists and to an empty slice otherwise. Tools never returns an error.
func (c *Cache) Tools(ctx context.Context) []mcpschema.Tool {
	c.mu.RLock()
	if !c.fetchedAt.IsZero() && time.Since(c.fetchedAt) < c.ttl {
		cached := copyTools(c.tools)
		c.mu.RUnlock()
		return cached
	}
	previous := copyTools(c.tools)
	hadFetch := !c.fetchedAt.IsZero()
	c.mu.RUnlock()

	tools, err := c.lister.ListTools(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("tool catalogue refresh failed, serving previous state")
		if hadFetch {
			return previous
		}
		return []mcpschema.Tool{}
	}

	c.mu.Lock()
	c.tools = copyTools(tools)
	c.fetchedAt = time.Now()
	c.mu.Unlock()
	return tools
}

// Invalidate clears the catalogue and timestamp unconditionally so the next
// Tools call performs a live fetch.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.tools = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

func copyTools(tools []mcpschema.Tool) []mcpschema.Tool {
	if tools == nil {
		return nil
	}
	out := make([]mcpschema.Tool, len(tools))
	copy(out, tools)
	return out
}
