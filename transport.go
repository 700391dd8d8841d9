package flatlayer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// userAgent identifies the SDK in requests.
const userAgent = "flatlayer-go-sdk/1.0.0"

// httpTransport handles HTTP communication with the Flatlayer API. It owns
// the underlying http.Client, applies configured headers, decodes JSON
// responses, maps non-2xx responses to typed errors, and notifies the
// observer around each request.
type httpTransport struct {
	// client is the underlying HTTP client
	client *http.Client
	// config holds the SDK configuration
	config *Config
	// baseURL is the parsed base URL for the API
	baseURL *url.URL
	// observer for monitoring operations
	observer Observer
}

// newHTTPTransport creates a transport from a validated config.
func newHTTPTransport(config *Config) (*httpTransport, error) {
	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base URL: %v", ErrInvalidConfig, err)
	}

	transport := &http.Transport{
		MaxIdleConns:    config.TransportConfig.MaxIdleConns,
		MaxConnsPerHost: config.TransportConfig.MaxConnsPerHost,
		IdleConnTimeout: config.TransportConfig.IdleConnTimeout,
	}

	return &httpTransport{
		client: &http.Client{
			Transport: transport,
			Timeout:   config.Timeout,
		},
		config:   config,
		baseURL:  baseURL,
		observer: config.Observer,
	}, nil
}

// get performs a GET request against path with the given query, decoding the
// JSON response into result.
func (t *httpTransport) get(ctx context.Context, path string, query url.Values, result any) error {
	t.observer.OnRequestStart(http.MethodGet, path)

	start := time.Now()
	err := t.performRequest(ctx, path, query, result)
	t.observer.OnRequestEnd(http.MethodGet, path, time.Since(start), err)
	return err
}

// performRequest executes a single HTTP request.
func (t *httpTransport) performRequest(ctx context.Context, path string, query url.Values, result any) error {
	// path segments are already escaped by buildPath, so the URL is
	// assembled textually rather than through url.URL.Path, which would
	// re-escape the percent signs.
	fullURL := strings.TrimRight(t.baseURL.String(), "/") + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	for key, value := range t.config.Headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return &NetworkError{Op: http.MethodGet + " " + path, Err: err}
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return &NetworkError{Op: "reading response", Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if result != nil && len(body) > 0 {
			if err := json.Unmarshal(body, result); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
			}
		}
		return nil
	}

	return parseAPIError(resp.StatusCode, body)
}

// close releases the transport's idle connections.
func (t *httpTransport) close() {
	if tr, ok := t.client.Transport.(*http.Transport); ok {
		tr.CloseIdleConnections()
	}
}

// buildPath builds a URL path with proper escaping for path parameters,
// replacing {0}, {1}, ... placeholders with the escaped arguments. Slugs may
// contain slashes ("docs/getting-started"), which must not split the path.
//
// Example:
//
//	buildPath("/entries/{0}/{1}", "posts", "hello world")
//	// "/entries/posts/hello%20world"
func buildPath(pattern string, args ...string) string {
	path := pattern
	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		escaped := url.QueryEscape(arg)
		escaped = strings.Replace(escaped, "+", "%20", -1)
		path = strings.Replace(path, placeholder, escaped, 1)
	}
	return path
}
