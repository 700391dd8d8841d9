package flatlayer

import (
	"encoding/json"
	"time"
)

// Entry represents a single content entry from the CMS: a markdown document
// with front-matter metadata and attached images.
//
// Fields the caller did not request (see GetOptions.Fields) are left at their
// zero values.
type Entry struct {
	// ID is the entry's numeric identifier
	ID int64 `json:"id,omitempty"`
	// Slug is the entry's URL slug, unique within its collection
	Slug string `json:"slug"`
	// Title is the entry title
	Title string `json:"title,omitempty"`
	// Content is the raw markdown body, including any embedded components
	Content string `json:"content,omitempty"`
	// Excerpt is the short summary derived from the body
	Excerpt string `json:"excerpt,omitempty"`
	// PublishedAt is the publication timestamp, nil for drafts
	PublishedAt *time.Time `json:"published_at,omitempty"`
	// Meta holds arbitrary front-matter fields
	Meta map[string]any `json:"meta,omitempty"`
	// Images maps front-matter image roles ("featured", "gallery") to the
	// images attached under that role
	Images map[string][]ImageRef `json:"images,omitempty"`
	// Tags are the entry's tags
	Tags []string `json:"tags,omitempty"`
}

// ImageRef is the CMS metadata for one attached image. It is the input to the
// responsive image engine: natural dimensions may be zero when the CMS does
// not know them, and generation degrades gracefully.
type ImageRef struct {
	// ID is the opaque image identifier. The API sends either a number or a
	// string; json.Number accepts both.
	ID json.Number `json:"id"`
	// Filename is the original upload filename
	Filename string `json:"filename,omitempty"`
	// Extension is the file extension without the dot
	Extension string `json:"extension,omitempty"`
	// Width and Height are the natural pixel dimensions, zero when unknown
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
	// Thumbhash is the low-resolution placeholder payload
	Thumbhash string `json:"thumbhash,omitempty"`
	// Meta holds accessible-text metadata
	Meta ImageMeta `json:"meta,omitempty"`
}

// ImageMeta holds per-image metadata.
type ImageMeta struct {
	// Alt is the accessible text for the image
	Alt string `json:"alt,omitempty"`
}

// EntryList is a page of entries plus pagination state.
type EntryList struct {
	// Data holds the entries of the current page
	Data []Entry `json:"data"`
	// Pagination describes the page window
	Pagination Pagination `json:"pagination"`
}

// Pagination describes the page window of an EntryList.
type Pagination struct {
	// CurrentPage is the 1-based page number
	CurrentPage int `json:"current_page"`
	// PerPage is the page size
	PerPage int `json:"per_page"`
	// Total is the total number of entries matching the query
	Total int `json:"total"`
	// LastPage is the number of the final page
	LastPage int `json:"last_page"`
}

// GetOptions control single-entry and batch retrieval.
type GetOptions struct {
	// Fields selects which entry fields the API should return.
	// Empty means all fields.
	Fields []string
}

// ListOptions control entry listing and search.
//
// Example:
//
//	list, err := client.ListEntries(ctx, "posts", &flatlayer.ListOptions{
//	    Filter:  map[string]any{"meta.category": "engineering"},
//	    Search:  "responsive images",
//	    Fields:  []string{"slug", "title", "excerpt"},
//	    Page:    1,
//	    PerPage: 20,
//	})
type ListOptions struct {
	// Filter is a CMS filter document, passed through JSON-encoded. The
	// filter language is defined by the CMS, not interpreted by the SDK.
	Filter map[string]any

	// Search is a full-text search query.
	Search string

	// Fields selects which entry fields the API should return.
	Fields []string

	// Page is the 1-based page number. Zero means the API default.
	Page int

	// PerPage is the page size. Zero means the API default.
	PerPage int
}
