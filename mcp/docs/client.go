package docs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/swapscope/swapscope-mcp/mcp/tool"
	mcpschema "github.com/viant/mcp-protocol/schema"
	mcpclient "github.com/viant/mcp/client"
)

// ErrUpstreamUnavailable indicates that the GitBook MCP endpoint could not be
// reached or answered with a protocol-level error.  Callers treat it as "zero
// tools" rather than a fatal condition.
var ErrUpstreamUnavailable = errors.New("documentation server unavailable")

const (
	defaultCallTimeout      = 30 * time.Second
	defaultHandshakeTimeout = 5 * time.Second
)

// Client speaks to a single remote MCP endpoint.  It performs an optional
// initialize handshake before each logical operation; servers that do not
// require the handshake simply fail it and the failure is logged, not raised.
type Client struct {
	cli     mcpclient.Interface
	timeout time.Duration
	logger  zerolog.Logger
}

// ClientOption customises a Client.
type ClientOption func(*Client)

// WithCallTimeout overrides the per-operation transport timeout.
func WithCallTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithClientLogger attaches a logger; the default discards everything.
func WithClientLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient wraps an established MCP client connection.
func NewClient(cli mcpclient.Interface, opts ...ClientOption) *Client {
	c := &Client{cli: cli, timeout: defaultCallTimeout, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// handshake runs the initialize exchange.  It is idempotent and cheap; a
// failure is non-fatal because some servers skip the handshake entirely.
func (c *Client) handshake(ctx context.Context) {
	hctx, cancel := context.WithTimeout(ctx, defaultHandshakeTimeout)
	defer cancel()
	if _, err := c.cli.Initialize(hctx); err != nil {
		c.logger.Warn().Err(err).Msg("initialize handshake failed, proceeding anyway")
	}
}

// ListTools fetches the full remote tool catalogue following pagination
// cursors. A transport or protocol failure after the handshake is reported as
// ErrUpstreamUnavailable.
func (c *Client) ListTools(ctx context.Context) ([]mcpschema.Tool, error) {
	c.handshake(ctx)

	lctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var tools []mcpschema.Tool
	var cursor *string
	for {
		res, err := c.cli.ListTools(lctx, cursor)
		if err != nil {
			return nil, fmt.Errorf("%w: list tools: %v", ErrUpstreamUnavailable, err)
		}
		tools = append(tools, res.Tools...)
		if res.NextCursor == nil || *res.NextCursor == "" {
			break
		}
		cursor = res.NextCursor
	}
	return tools, nil
}

// CallTool forwards one invocation to the remote server.  It never returns a
// Go error: transport and protocol failures are folded into a result carrying
// the error flag and a single text block, so tool handlers can always produce
// a user-visible response.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]interface{}) *mcpschema.CallToolResult {
	c.handshake(ctx)

	cctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := &mcpschema.CallToolRequestParams{
		Name:      name,
		Arguments: mcpschema.CallToolRequestParamsArguments(args),
	}
	res, err := c.cli.CallTool(cctx, params)
	if err != nil {
		c.logger.Warn().Err(err).Str("tool", name).Msg("remote tool call failed")
		return tool.ErrorResult(fmt.Sprintf("calling documentation tool %q failed: %v", name, err))
	}
	if res == nil {
		return tool.ErrorResult(fmt.Sprintf("documentation tool %q returned an empty response", name))
	}
	return res
}
