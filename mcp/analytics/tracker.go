package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/swapscope/swapscope-mcp/mcp/tool"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// Event is one recorded tool invocation.
type Event struct {
	ID         string `json:"id"`
	Tool       string `json:"tool"`
	Group      string `json:"group"`
	DurationMS int64  `json:"durationMs"`
	Success    bool   `json:"success"`
	Timestamp  string `json:"timestamp"`
}

// Tracker emits usage events for every wrapped tool invocation.  Events are
// queued into a bounded channel and posted by a single background worker; a
// full queue drops the event rather than blocking the tool call.  Events
// recorded after Close are dropped the same way, so wrapped handlers stay
// callable during shutdown while in-flight requests drain.
type Tracker struct {
	endpoint   string
	groups     *Groups
	httpClient *http.Client
	logger     zerolog.Logger
	events     chan Event
	done       chan struct{}

	// closed guards the events channel: record holds the read lock while
	// sending and Close flips the flag under the write lock before closing.
	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
}

// TrackerOption customises a Tracker.
type TrackerOption func(*Tracker)

// WithGroups substitutes the tool-to-group mapping.
func WithGroups(groups *Groups) TrackerOption {
	return func(t *Tracker) {
		if groups != nil {
			t.groups = groups
		}
	}
}

// WithHTTPClient substitutes the client used to post events.
func WithHTTPClient(httpClient *http.Client) TrackerOption {
	return func(t *Tracker) {
		if httpClient != nil {
			t.httpClient = httpClient
		}
	}
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(logger zerolog.Logger) TrackerOption {
	return func(t *Tracker) { t.logger = logger }
}

// NewTracker creates a tracker posting to endpoint and starts its worker.
// An empty endpoint disables posting; events are then counted and dropped.
func NewTracker(endpoint string, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		endpoint:   endpoint,
		groups:     DefaultGroups(),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     zerolog.Nop(),
		events:     make(chan Event, 256),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	go t.worker()
	return t
}

// WrapTool decorates a handler so that each invocation records one event.
// It satisfies the registry's tool.Wrapper contract.
func (t *Tracker) WrapTool(name string, next tool.Handler) tool.Handler {
	return func(ctx context.Context, req *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		started := time.Now()
		res, err := next(ctx, req)
		t.record(Event{
			ID:         uuid.NewString(),
			Tool:       name,
			Group:      t.groups.Group(name),
			DurationMS: time.Since(started).Milliseconds(),
			Success:    err == nil && !tool.IsError(res),
			Timestamp:  started.UTC().Format(time.RFC3339),
		})
		return res, err
	}
}

func (t *Tracker) record(event Event) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		t.logger.Debug().Str("tool", event.Tool).Msg("analytics tracker closed, dropping event")
		return
	}
	select {
	case t.events <- event:
	default:
		t.logger.Debug().Str("tool", event.Tool).Msg("analytics queue full, dropping event")
	}
}

func (t *Tracker) worker() {
	for event := range t.events {
		t.post(event)
	}
	close(t.done)
}

func (t *Tracker) post(event Event) {
	if t.endpoint == "" {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	req, err := http.NewRequest(http.MethodPost, t.endpoint, bytes.NewReader(data))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.logger.Debug().Err(err).Msg("posting analytics event failed")
		return
	}
	_ = resp.Body.Close()
}

// Close stops the worker after draining queued events.  It is safe to call
// more than once and safe to race with wrapped handlers, whose events are
// then dropped.
func (t *Tracker) Close() {
	t.closeOnce.Do(func() {
		t.mu.Lock()
		t.closed = true
		t.mu.Unlock()
		close(t.events)
		<-t.done
	})
}
