package flatlayer

import (
	"strings"
	"time"

	"github.com/flatlayer/flatlayer-go/images"
)

// Config holds the configuration for the Flatlayer client.
// All fields except BaseURL are optional and have sensible defaults.
//
// Configuration is built using the fluent builder pattern:
//
//	config := flatlayer.DefaultConfig().
//	    WithBaseURL("https://cms.example.com/api").
//	    WithTimeout(10 * time.Second).
//	    WithDefaultTransform(images.Transform{"q": 80})
//
//	client, err := flatlayer.NewClient(config)
type Config struct {
	// BaseURL is the base URL of the Flatlayer API, including any path
	// prefix but without a trailing slash.
	BaseURL string

	// ImageEndpoint is the base URL of the image transformation endpoint.
	// Default: BaseURL + "/image"
	ImageEndpoint string

	// Timeout is the HTTP request timeout, covering connection time,
	// redirects, and reading the response body.
	// Default: 30s
	Timeout time.Duration

	// Headers are custom headers to include in all requests.
	// Useful for API tokens, correlation IDs, etc.
	Headers map[string]string

	// TransportConfig holds HTTP connection pooling settings.
	TransportConfig TransportConfig

	// Breakpoints maps breakpoint names to pixel thresholds for responsive
	// size descriptors ("md:50vw"). Nil means images.DefaultBreakpoints.
	Breakpoints map[string]int

	// DefaultTransform holds transformation parameters applied to every
	// image URL unless overridden per call.
	DefaultTransform images.Transform

	// Observer receives hooks for monitoring requests.
	// If nil, NoopObserver is used.
	Observer Observer
}

// TransportConfig holds HTTP transport configuration for connection pooling.
type TransportConfig struct {
	// MaxIdleConns controls the maximum number of idle connections
	// across all hosts. Zero means no limit.
	// Default: 100
	MaxIdleConns int

	// MaxConnsPerHost controls the maximum connections per host.
	// Default: 10
	MaxConnsPerHost int

	// IdleConnTimeout is the maximum time an idle connection stays open.
	// Default: 90s
	IdleConnTimeout time.Duration
}

// DefaultConfig returns a Config with defaults suitable for local development.
// Production callers should at minimum set the base URL:
//
//	config := flatlayer.DefaultConfig().
//	    WithBaseURL("https://cms.example.com/api")
func DefaultConfig() *Config {
	return &Config{
		BaseURL: "http://localhost:8000/api",
		Timeout: 30 * time.Second,
		TransportConfig: TransportConfig{
			MaxIdleConns:    100,
			MaxConnsPerHost: 10,
			IdleConnTimeout: 90 * time.Second,
		},
		Headers:  make(map[string]string),
		Observer: &NoopObserver{},
	}
}

// WithBaseURL sets the base URL of the Flatlayer API.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = strings.TrimRight(url, "/")
	return c
}

// WithImageEndpoint sets the image transformation endpoint. Use this when
// images are served from a CDN host different from the API.
func (c *Config) WithImageEndpoint(url string) *Config {
	c.ImageEndpoint = strings.TrimRight(url, "/")
	return c
}

// WithTimeout sets the request timeout for all operations.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithHeader adds a custom header to be sent with all requests.
//
// Example:
//
//	config := flatlayer.DefaultConfig().
//	    WithHeader("X-API-Key", "your-api-key")
func (c *Config) WithHeader(key, value string) *Config {
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	c.Headers[key] = value
	return c
}

// WithBreakpoints sets the breakpoint-name table used when parsing
// responsive size descriptors.
//
// Example:
//
//	config := flatlayer.DefaultConfig().
//	    WithBreakpoints(map[string]int{"tablet": 900, "desktop": 1200})
func (c *Config) WithBreakpoints(breakpoints map[string]int) *Config {
	c.Breakpoints = breakpoints
	return c
}

// WithDefaultTransform sets transformation parameters applied to every image
// URL. Per-call transforms override these on key collision.
func (c *Config) WithDefaultTransform(t images.Transform) *Config {
	c.DefaultTransform = t
	return c
}

// WithObserver sets a custom observer for monitoring SDK operations.
func (c *Config) WithObserver(observer Observer) *Config {
	c.Observer = observer
	return c
}

// Validate validates the configuration and fills in defaults for missing
// values. Called automatically by NewClient.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrInvalidConfig
	}
	if c.ImageEndpoint == "" {
		c.ImageEndpoint = c.BaseURL + "/image"
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.TransportConfig.MaxIdleConns <= 0 {
		c.TransportConfig.MaxIdleConns = 100
	}
	if c.TransportConfig.MaxConnsPerHost <= 0 {
		c.TransportConfig.MaxConnsPerHost = 10
	}
	if c.TransportConfig.IdleConnTimeout <= 0 {
		c.TransportConfig.IdleConnTimeout = 90 * time.Second
	}
	if c.Observer == nil {
		c.Observer = &NoopObserver{}
	}
	return nil
}
