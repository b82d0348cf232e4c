package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.swapscope.io"
	defaultTimeout = 30 * time.Second
)

// Client calls the SwapScope REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL overrides the API origin.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithAPIKey sets the key sent in the X-API-Key header.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout overrides the default 30s request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient creates an API client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Chains lists the supported networks.
func (c *Client) Chains(ctx context.Context) ([]Chain, error) {
	var out []Chain
	if err := c.get(ctx, "/v1/chains", nil, &out); err != nil {
		return nil, fmt.Errorf("list chains: %w", err)
	}
	return out, nil
}

// Token fetches metadata for one token.
func (c *Client) Token(ctx context.Context, chain, address string) (*Token, error) {
	var out Token
	path := fmt.Sprintf("/v1/tokens/%s/%s", url.PathEscape(chain), url.PathEscape(address))
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, fmt.Errorf("get token %s/%s: %w", chain, address, err)
	}
	return &out, nil
}

// TokenPrice fetches the current spot price for one token.
func (c *Client) TokenPrice(ctx context.Context, chain, address string) (*TokenPrice, error) {
	var out TokenPrice
	path := fmt.Sprintf("/v1/tokens/%s/%s/price", url.PathEscape(chain), url.PathEscape(address))
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, fmt.Errorf("get token price %s/%s: %w", chain, address, err)
	}
	return &out, nil
}

// Pools lists the top liquidity pools matching the filter.
func (c *Client) Pools(ctx context.Context, filter PoolsFilter) ([]Pool, error) {
	query := url.Values{}
	if filter.Chain != "" {
		query.Set("chain", filter.Chain)
	}
	if filter.Token != "" {
		query.Set("token", filter.Token)
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	var out []Pool
	if err := c.get(ctx, "/v1/pools", query, &out); err != nil {
		return nil, fmt.Errorf("list pools: %w", err)
	}
	return out, nil
}

// Quote fetches an indicative swap quote.
func (c *Client) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	query := url.Values{}
	query.Set("chain", req.Chain)
	query.Set("tokenIn", req.TokenIn)
	query.Set("tokenOut", req.TokenOut)
	query.Set("amountIn", req.AmountIn)
	var out Quote
	if err := c.get(ctx, "/v1/quote", query, &out); err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &out, nil
}

// GasPrice fetches the current gas price tiers for one chain.
func (c *Client) GasPrice(ctx context.Context, chain string) (*GasPrice, error) {
	var out GasPrice
	if err := c.get(ctx, "/v1/gas/"+url.PathEscape(chain), nil, &out); err != nil {
		return nil, fmt.Errorf("get gas price %s: %w", chain, err)
	}
	return &out, nil
}

// SearchTokens looks tokens up by symbol or name.
func (c *Client) SearchTokens(ctx context.Context, queryText string, limit int) ([]Token, error) {
	query := url.Values{}
	query.Set("query", queryText)
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out []Token
	if err := c.get(ctx, "/v1/search", query, &out); err != nil {
		return nil, fmt.Errorf("search tokens: %w", err)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("api error %s: %s", apiErr.Error.Code, apiErr.Error.Message)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
