package images

import (
	"path"
	"strconv"
	"strings"
)

// Image describes the source image an attribute set is generated for. It is
// the caller-supplied metadata from the CMS, treated as immutable for the
// lifetime of one call. Width and Height are the natural dimensions; either
// may be zero when the CMS does not know them, which degrades gracefully (see
// EnumerateCandidates).
type Image struct {
	// ID is the opaque image identifier used in transformation URLs.
	ID string

	// Filename is the original upload filename, used as an alt-text fallback.
	Filename string

	// Extension is the original file extension, without the dot.
	Extension string

	// Width and Height are the natural pixel dimensions, zero when unknown.
	Width  int
	Height int

	// Alt is explicit accessible text from the image's metadata.
	Alt string

	// Thumbhash is the low-resolution placeholder payload, passed through
	// for rendering layers that overlay a blurred preview.
	Thumbhash string
}

// AttributeSet is the final HTML attribute map for an <img> element: "src",
// "alt", "srcset", "sizes", "width", "height", plus any caller overrides.
type AttributeSet map[string]string

// Assembler holds the static configuration shared by attribute generation
// calls: the image endpoint, the breakpoint-name table and the default
// transformation parameters. It is a plain value with no mutable state; every
// method is a pure function of the assembler and its arguments, so a single
// Assembler is safe for concurrent use.
type Assembler struct {
	// Endpoint is the base URL of the image transformation endpoint.
	Endpoint string

	// Breakpoints maps breakpoint names to pixel thresholds for size
	// descriptor parsing. Nil means DefaultBreakpoints.
	Breakpoints map[string]int

	// Defaults are transformation parameters applied to every URL unless
	// overridden per call.
	Defaults Transform
}

// URL builds a transformation URL for the image with the merged parameters
// and no candidate dimensions. When the merged parameters carry an "fm"
// format override it also becomes the URL's extension.
func (a Assembler) URL(img Image, overrides Transform) string {
	return BuildURL(a.Endpoint, img.ID, a.extension(img, overrides), a.Defaults, overrides, 0, 0)
}

// Attributes generates the complete attribute set for an image.
//
// sizeTokens are parsed into the sizes attribute (see ParseSizeDescriptors);
// a parse failure fails the whole call. opts select fluid or fixed candidate
// generation and the target display size; explicit target dimensions take
// precedence over the image's natural dimensions for the width/height
// attributes. htmlOverrides are merged last and win over everything.
//
// Example:
//
//	a := images.Assembler{Endpoint: "https://cms.example.com/image"}
//	attrs, err := a.Attributes(img, []string{"100vw", "md:50vw"}, nil, nil)
//	// attrs["srcset"], attrs["sizes"], attrs["src"], attrs["alt"], ...
func (a Assembler) Attributes(img Image, sizeTokens []string, htmlOverrides map[string]string, opts *Options) (AttributeSet, error) {
	if opts == nil {
		opts = &Options{}
	}

	bm, err := ParseSizeDescriptors(sizeTokens, a.Breakpoints)
	if err != nil {
		return nil, err
	}

	ext := a.extension(img, opts.Transform)
	urlFor := func(w, h int) string {
		return BuildURL(a.Endpoint, img.ID, ext, a.Defaults, opts.Transform, w, h)
	}

	attrs := AttributeSet{
		"src": urlFor(0, 0),
		"alt": altText(img),
	}
	if srcset := GenerateSrcset(img.Width, img.Height, opts, urlFor); srcset != "" {
		attrs["srcset"] = srcset
	}
	if sizes := bm.SizesAttribute(); sizes != "" {
		attrs["sizes"] = sizes
	}

	width, height := img.Width, img.Height
	if opts.Width > 0 {
		width = opts.Width
	}
	if opts.Height > 0 {
		height = opts.Height
	}
	if width > 0 {
		attrs["width"] = strconv.Itoa(width)
	}
	if height > 0 {
		attrs["height"] = strconv.Itoa(height)
	}

	for k, v := range htmlOverrides {
		attrs[k] = v
	}
	return attrs, nil
}

// extension resolves the URL extension: an explicit "fm" format override from
// the per-call or default transforms, else the image's original extension.
func (a Assembler) extension(img Image, overrides Transform) string {
	if fm, ok := overrides["fm"]; ok {
		return paramValue(fm)
	}
	if fm, ok := a.Defaults["fm"]; ok {
		return paramValue(fm)
	}
	if img.Extension != "" {
		return img.Extension
	}
	return "jpg"
}

// altText resolves accessible text: explicit metadata first, then a label
// derived from the filename, then a generic fallback.
func altText(img Image) string {
	if img.Alt != "" {
		return img.Alt
	}
	if label := filenameLabel(img.Filename); label != "" {
		return label
	}
	return "Image"
}

// filenameLabel turns "hero-image_final.jpg" into "hero image final".
func filenameLabel(filename string) string {
	base := path.Base(filename)
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return strings.Join(strings.Fields(base), " ")
}
