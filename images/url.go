package images

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Transform is a flat map of image transformation parameters sent to the CMS
// image endpoint: "w", "h", "q", "fm", plus arbitrary passthrough keys. Values
// are rendered with their natural string form, so ints, floats and strings all
// work.
//
// Example:
//
//	images.Transform{"q": 85, "fm": "webp", "blur": 10}
type Transform map[string]any

// Merge returns a new Transform combining t with overrides, overrides winning
// on key collision. Either side may be nil.
func (t Transform) Merge(overrides Transform) Transform {
	out := make(Transform, len(t)+len(overrides))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// BuildURL composes a transformation URL for one srcset candidate, or for the
// base src when width and height are zero.
//
// Parameter precedence, lowest to highest: defaults, overrides, then the
// candidate width/height. The candidate always wins because the generator, not
// the caller, decides candidate dimensions. A zero width or height leaves the
// corresponding parameter to whatever the merged maps contain.
//
// The result has the form "<endpoint>/<id>.<ext>?<query>". The query is
// key-sorted so output is stable for a given parameter set, and the "?" is
// omitted entirely when there are no parameters.
//
// Example:
//
//	images.BuildURL("https://cms.example.com/image", "42", "jpg",
//	    images.Transform{"q": 80}, images.Transform{"q": 90}, 500, 0)
//	// "https://cms.example.com/image/42.jpg?q=90&w=500"
func BuildURL(endpoint, id, ext string, defaults, overrides Transform, width, height int) string {
	merged := defaults.Merge(overrides)
	if width > 0 {
		merged["w"] = width
	}
	if height > 0 {
		merged["h"] = height
	}

	base := fmt.Sprintf("%s/%s.%s", strings.TrimRight(endpoint, "/"), url.PathEscape(id), ext)
	if len(merged) == 0 {
		return base
	}

	query := url.Values{}
	for k, v := range merged {
		query.Set(k, paramValue(v))
	}
	// url.Values.Encode sorts by key, giving the stable ordering we promise.
	return base + "?" + query.Encode()
}

// paramValue renders a transform value for the query string.
func paramValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
