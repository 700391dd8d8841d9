package flatlayer

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/flatlayer/flatlayer-go/images"
)

// Client is a Flatlayer CMS client. All methods are safe for concurrent use.
//
// Example:
//
//	client, err := flatlayer.NewClient(
//	    flatlayer.DefaultConfig().WithBaseURL("https://cms.example.com/api"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	entry, err := client.GetEntry(ctx, "posts", "hello-world", nil)
//	if flatlayer.IsNotFound(err) {
//	    // no such entry
//	}
type Client interface {
	// GetEntry retrieves a single entry by collection and slug.
	// Returns an error matching ErrNotFound when the entry does not exist.
	GetEntry(ctx context.Context, collection, slug string, opts *GetOptions) (*Entry, error)

	// ListEntries retrieves a page of entries, optionally filtered and
	// searched. A nil opts lists everything with API-default pagination.
	ListEntries(ctx context.Context, collection string, opts *ListOptions) (*EntryList, error)

	// BatchEntries retrieves multiple entries by slug in a single request.
	// Entries that do not exist are omitted from the result; the order of
	// returned entries follows the requested slugs.
	BatchEntries(ctx context.Context, collection string, slugs []string, opts *GetOptions) ([]Entry, error)

	// ImageURL builds a transformation URL for an image with the given
	// per-call transform parameters merged over the configured defaults.
	ImageURL(img *ImageRef, transform images.Transform) string

	// ResponsiveImage generates the complete <img> attribute set for an
	// image: src, srcset, sizes, width, height and alt. sizeTokens follow
	// the size descriptor grammar ("100vw", "md:50vw",
	// "calc(100vw - 20px)"); htmlOverrides are merged last.
	ResponsiveImage(img *ImageRef, sizeTokens []string, htmlOverrides map[string]string, opts *images.Options) (images.AttributeSet, error)

	// Close releases the client's resources. The client must not be used
	// after Close; Close is safe to call multiple times.
	Close() error
}

// client implements Client.
type client struct {
	config    *Config
	transport *httpTransport
	assembler images.Assembler

	mu     sync.RWMutex
	closed bool
}

// NewClient creates a new Flatlayer client with the given configuration.
// A nil config uses DefaultConfig. The configuration is validated and missing
// values are filled with defaults.
func NewClient(config *Config) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	transport, err := newHTTPTransport(config)
	if err != nil {
		return nil, err
	}

	return &client{
		config:    config,
		transport: transport,
		assembler: images.Assembler{
			Endpoint:    config.ImageEndpoint,
			Breakpoints: config.Breakpoints,
			Defaults:    config.DefaultTransform,
		},
	}, nil
}

func (c *client) GetEntry(ctx context.Context, collection, slug string, opts *GetOptions) (*Entry, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	query := url.Values{}
	if opts != nil && len(opts.Fields) > 0 {
		query.Set("fields", strings.Join(opts.Fields, ","))
	}

	var entry Entry
	path := buildPath("/entries/{0}/{1}", collection, slug)
	if err := c.transport.get(ctx, path, query, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *client) ListEntries(ctx context.Context, collection string, opts *ListOptions) (*EntryList, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	query := url.Values{}
	if opts != nil {
		if len(opts.Filter) > 0 {
			filter, err := json.Marshal(opts.Filter)
			if err != nil {
				return nil, err
			}
			query.Set("filter", string(filter))
		}
		if opts.Search != "" {
			query.Set("search", opts.Search)
		}
		if len(opts.Fields) > 0 {
			query.Set("fields", strings.Join(opts.Fields, ","))
		}
		if opts.Page > 0 {
			query.Set("page", strconv.Itoa(opts.Page))
		}
		if opts.PerPage > 0 {
			query.Set("per_page", strconv.Itoa(opts.PerPage))
		}
	}

	var list EntryList
	path := buildPath("/entries/{0}", collection)
	if err := c.transport.get(ctx, path, query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *client) BatchEntries(ctx context.Context, collection string, slugs []string, opts *GetOptions) ([]Entry, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if len(slugs) == 0 {
		return nil, nil
	}

	query := url.Values{}
	query.Set("slugs", strings.Join(slugs, ","))
	if opts != nil && len(opts.Fields) > 0 {
		query.Set("fields", strings.Join(opts.Fields, ","))
	}

	var resp struct {
		Data []Entry `json:"data"`
	}
	path := buildPath("/entries/{0}/batch", collection)
	if err := c.transport.get(ctx, path, query, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *client) ImageURL(img *ImageRef, transform images.Transform) string {
	return c.assembler.URL(img.engineImage(), transform)
}

func (c *client) ResponsiveImage(img *ImageRef, sizeTokens []string, htmlOverrides map[string]string, opts *images.Options) (images.AttributeSet, error) {
	return c.assembler.Attributes(img.engineImage(), sizeTokens, htmlOverrides, opts)
}

func (c *client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.transport.close()
	return nil
}

func (c *client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// engineImage converts the API image metadata into the image engine's input.
func (r *ImageRef) engineImage() images.Image {
	return images.Image{
		ID:        r.ID.String(),
		Filename:  r.Filename,
		Extension: r.Extension,
		Width:     r.Width,
		Height:    r.Height,
		Alt:       r.Meta.Alt,
		Thumbhash: r.Thumbhash,
	}
}
