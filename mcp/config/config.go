package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/viant/afs"
	mcp "github.com/viant/mcp"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration document.
type Config struct {
	Server    *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	API       API                `yaml:"api,omitempty" json:"api,omitempty"`
	Docs      Docs               `yaml:"docs,omitempty" json:"docs,omitempty"`
	Analytics Analytics          `yaml:"analytics,omitempty" json:"analytics,omitempty"`
}

// API configures the SwapScope REST API client.
type API struct {
	BaseURL    string `yaml:"baseURL,omitempty" json:"baseURL,omitempty"`
	APIKey     string `yaml:"apiKey,omitempty" json:"apiKey,omitempty"`
	TimeoutSec int    `yaml:"timeoutSec,omitempty" json:"timeoutSec,omitempty"`
}

// Docs configures the GitBook documentation proxy.
type Docs struct {
	URL            string `yaml:"url,omitempty" json:"url,omitempty"`
	Prefix         string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	FallbackURL    string `yaml:"fallbackURL,omitempty" json:"fallbackURL,omitempty"`
	TTLSec         int    `yaml:"ttlSec,omitempty" json:"ttlSec,omitempty"`
	CallTimeoutSec int    `yaml:"callTimeoutSec,omitempty" json:"callTimeoutSec,omitempty"`
	WarmupAttempts int    `yaml:"warmupAttempts,omitempty" json:"warmupAttempts,omitempty"`
	WarmupDelaySec int    `yaml:"warmupDelaySec,omitempty" json:"warmupDelaySec,omitempty"`
}

// Analytics configures usage event tracking.
type Analytics struct {
	Endpoint string            `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`
	Disabled bool              `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Groups   map[string]string `yaml:"groups,omitempty" json:"groups,omitempty"`
}

// Load reads configuration from a local path or URL.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", URL, err)
	}
	return &cfg, nil
}

// Init applies defaults for optional settings.
func (c *Config) Init() {
	if c.API.APIKey == "" {
		c.API.APIKey = os.Getenv("SWAPSCOPE_API_KEY")
	}
	if c.Docs.Prefix == "" {
		c.Docs.Prefix = "gitbook"
	}
	if c.Docs.TTLSec == 0 {
		c.Docs.TTLSec = 600
	}
	if c.Docs.WarmupAttempts == 0 {
		c.Docs.WarmupAttempts = 3
	}
	if c.Docs.WarmupDelaySec == 0 {
		c.Docs.WarmupDelaySec = 2
	}
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	if c.Docs.TTLSec < 0 || c.Docs.WarmupAttempts < 0 || c.Docs.WarmupDelaySec < 0 {
		return fmt.Errorf("docs settings must not be negative")
	}
	if c.API.TimeoutSec < 0 {
		return fmt.Errorf("api.timeoutSec must not be negative")
	}
	return nil
}

// DocsTTL returns the catalogue freshness window.
func (c *Config) DocsTTL() time.Duration { return time.Duration(c.Docs.TTLSec) * time.Second }

// DocsCallTimeout returns the remote call timeout, zero when unset.
func (c *Config) DocsCallTimeout() time.Duration {
	return time.Duration(c.Docs.CallTimeoutSec) * time.Second
}

// APITimeout returns the REST client timeout, zero when unset.
func (c *Config) APITimeout() time.Duration { return time.Duration(c.API.TimeoutSec) * time.Second }

// WarmupDelay returns the fixed pause between catalogue warm-up attempts.
func (c *Config) WarmupDelay() time.Duration {
	return time.Duration(c.Docs.WarmupDelaySec) * time.Second
}
