package docs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

type countingLister struct {
	calls int
	tools []mcpschema.Tool
	err   error
}

func (l *countingLister) ListTools(ctx context.Context) ([]mcpschema.Tool, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return l.tools, nil
}

func TestCache_FreshHitSkipsUpstream(t *testing.T) {
	lister := &countingLister{tools: []mcpschema.Tool{{Name: "search"}}}
	cache := NewCache(lister)
	ctx := context.Background()

	first := cache.Tools(ctx)
	second := cache.Tools(ctx)

	assert.EqualValues(t, 1, lister.calls)
	assert.Len(t, first, 1)
	assert.EqualValues(t, first, second)
}

func TestCache_ExpiryTriggersRefetch(t *testing.T) {
	lister := &countingLister{tools: []mcpschema.Tool{{Name: "search"}}}
	cache := NewCache(lister, WithTTL(time.Millisecond))
	ctx := context.Background()

	cache.Tools(ctx)
	time.Sleep(5 * time.Millisecond)
	cache.Tools(ctx)

	assert.EqualValues(t, 2, lister.calls)
}

func TestCache_InvalidateForcesLiveFetch(t *testing.T) {
	lister := &countingLister{tools: []mcpschema.Tool{{Name: "search"}}}
	cache := NewCache(lister)
	ctx := context.Background()

	cache.Tools(ctx)
	cache.Invalidate()
	cache.Tools(ctx)

	assert.EqualValues(t, 2, lister.calls)
}

func TestCache_FailureFallsBackToPrevious(t *testing.T) {
	lister := &countingLister{tools: []mcpschema.Tool{{Name: "search"}, {Name: "page"}}}
	cache := NewCache(lister, WithTTL(time.Millisecond))
	ctx := context.Background()

	cache.Tools(ctx)
	time.Sleep(5 * time.Millisecond)
	lister.err = errors.New("upstream down")

	tools := cache.Tools(ctx)
	assert.Len(t, tools, 2)
	assert.EqualValues(t, "search", tools[0].Name)
}

func TestCache_ColdFailureReturnsEmpty(t *testing.T) {
	lister := &countingLister{err: errors.New("upstream down")}
	cache := NewCache(lister)

	tools := cache.Tools(context.Background())
	assert.NotNil(t, tools)
	assert.Empty(t, tools)
}
