// Package flatlayer provides a Go client library for the Flatlayer headless
// CMS. It wraps the CMS REST API (entry retrieval, filtered listing and
// search, batch fetch) and generates responsive image markup through the
// images subpackage.
//
// # Basic Usage
//
// Create a client and retrieve content:
//
//	package main
//
//	import (
//	    "context"
//	    "log"
//
//	    "github.com/flatlayer/flatlayer-go"
//	)
//
//	func main() {
//	    client, err := flatlayer.NewClient(
//	        flatlayer.DefaultConfig().WithBaseURL("https://cms.example.com/api"))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer client.Close()
//
//	    ctx := context.Background()
//
//	    entry, err := client.GetEntry(ctx, "posts", "hello-world", nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    log.Println(entry.Title)
//	}
//
// # Listing and Search
//
// ListEntries supports CMS-side filtering, full-text search, field selection
// and pagination:
//
//	list, err := client.ListEntries(ctx, "posts", &flatlayer.ListOptions{
//	    Filter:  map[string]any{"meta.category": "engineering"},
//	    Search:  "responsive images",
//	    Fields:  []string{"slug", "title", "excerpt"},
//	    PerPage: 20,
//	})
//
// # Responsive Images
//
// ResponsiveImage turns CMS image metadata into a complete attribute set for
// a native <img> element:
//
//	img := entry.Images["featured"][0]
//	attrs, err := client.ResponsiveImage(&img,
//	    []string{"100vw", "md:50vw", "lg:33vw"}, nil, nil)
//	// attrs["src"], attrs["srcset"], attrs["sizes"], attrs["alt"], ...
//
// See the images package for the sizing engine itself and the markdown
// package for parsing entry content with embedded components.
//
// # Error Handling
//
// Errors are typed and match the package sentinels via errors.Is:
//
//	entry, err := client.GetEntry(ctx, "posts", "missing", nil)
//	if flatlayer.IsNotFound(err) {
//	    // render a 404 instead of failing
//	}
//
// # Observability
//
// The SDK never logs on its own. Monitor operations with the Observer
// interface, or use the logrus-backed LogObserver:
//
//	config.WithObserver(flatlayer.NewLogObserver(nil))
package flatlayer
