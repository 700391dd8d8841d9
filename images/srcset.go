package images

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	// decayFactor is the multiplicative shrink applied at each step of fluid
	// candidate generation.
	decayFactor = 0.9

	// minCandidateWidth is the floor below which no ladder candidate is
	// emitted. The force-appended target width is exempt.
	minCandidateWidth = 100

	// maxCandidates caps the decay loop. The loop terminates on its own
	// (each step multiplies by 0.9 and floors), so this only guards against
	// future parameter changes breaking that argument. A 100000px image
	// needs 66 steps to reach the floor.
	maxCandidates = 96
)

// Candidate is one srcset entry: a width the image should be offered at and
// its companion height (0 when no aspect ratio is known). Candidates are
// created during generation and never mutated.
type Candidate struct {
	Width  int
	Height int
}

// URLFunc renders a candidate's dimensions into a final transformation URL.
// Width and height of zero request the base image with no size constraint.
type URLFunc func(width, height int) string

// Options control srcset and attribute generation for one image.
//
// The zero value requests fluid generation with no target display size, which
// ladders down from the image's natural width.
type Options struct {
	// Width is the target display width in CSS pixels. Zero means no target.
	Width int

	// Height is the target display height. Together with Width it fixes the
	// aspect ratio of every candidate.
	Height int

	// Fixed selects fixed-size generation: only the exact target and, when
	// the natural width allows, a 2x retina variant. Default is fluid, a
	// descending ladder of widths for percentage-based layouts. Fixed is
	// ignored when no target width is set.
	Fixed bool

	// Transform holds per-call transformation overrides merged over the
	// configured defaults (see BuildURL).
	Transform Transform
}

// GenerateSrcset enumerates candidates for an image and renders them into the
// srcset wire format: "<url> <width>w" entries joined by ", ", widths strictly
// descending with no duplicates. A candidate with no width (unknown natural
// size and no target) renders as a bare URL with no width descriptor.
//
// Example:
//
//	srcset := images.GenerateSrcset(1600, 900, nil, func(w, h int) string {
//	    return images.BuildURL(endpoint, "42", "jpg", nil, nil, w, h)
//	})
func GenerateSrcset(naturalWidth, naturalHeight int, opts *Options, buildURL URLFunc) string {
	candidates := EnumerateCandidates(naturalWidth, naturalHeight, opts)
	parts := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.Width > 0 {
			parts = append(parts, fmt.Sprintf("%s %dw", buildURL(c.Width, c.Height), c.Width))
		} else {
			parts = append(parts, buildURL(0, 0))
		}
	}
	return strings.Join(parts, ", ")
}

// EnumerateCandidates produces the deduplicated, descending candidate list for
// an image.
//
// Fluid mode starts at min(2*base, naturalWidth), where base is the target
// width if given and the natural width otherwise, and repeatedly shrinks by
// decayFactor while the current width exceeds minCandidateWidth. A supplied
// target width is always offered exactly, appended if the ladder missed it.
//
// Fixed mode offers the exact target plus a 2x variant when the natural width
// covers it.
//
// Degenerate inputs never yield an empty list: an image narrower than the
// floor gets a single candidate at its starting width, and an unknown (zero)
// natural width gets a single candidate at the target width, or a single
// unconstrained candidate when there is no target either.
func EnumerateCandidates(naturalWidth, naturalHeight int, opts *Options) []Candidate {
	if opts == nil {
		opts = &Options{}
	}
	targetW, targetH := opts.Width, opts.Height
	ratio := aspectRatio(naturalWidth, naturalHeight, targetW, targetH)

	if naturalWidth <= 0 {
		// Natural width unknown: no ladder to build.
		if targetW > 0 {
			return []Candidate{{Width: targetW, Height: heightFor(targetW, targetH, ratio)}}
		}
		return []Candidate{{}}
	}

	if opts.Fixed && targetW > 0 {
		out := []Candidate{{Width: targetW, Height: heightFor(targetW, targetH, ratio)}}
		if 2*targetW <= naturalWidth {
			out = append(out, Candidate{Width: 2 * targetW, Height: heightFor(2*targetW, 2*targetH, ratio)})
		}
		return finalize(out)
	}

	base := targetW
	if base <= 0 {
		base = naturalWidth
	}
	start := 2 * base
	if naturalWidth < start {
		start = naturalWidth
	}

	var out []Candidate
	for w := start; w > minCandidateWidth && len(out) < maxCandidates; w = int(float64(w) * decayFactor) {
		out = append(out, Candidate{Width: w, Height: heightFor(w, 0, ratio)})
	}
	if len(out) == 0 {
		// Narrower than the floor: still offer the image at its own size.
		out = append(out, Candidate{Width: start, Height: heightFor(start, 0, ratio)})
	}
	if targetW > 0 && !hasWidth(out, targetW) {
		out = append(out, Candidate{Width: targetW, Height: heightFor(targetW, targetH, ratio)})
	}
	return finalize(out)
}

// aspectRatio returns height/width from the target dimensions when both are
// known, falling back to the natural dimensions, else 0 (unknown).
func aspectRatio(naturalW, naturalH, targetW, targetH int) float64 {
	if targetW > 0 && targetH > 0 {
		return float64(targetH) / float64(targetW)
	}
	if naturalW > 0 && naturalH > 0 {
		return float64(naturalH) / float64(naturalW)
	}
	return 0
}

// heightFor computes a candidate's height: the explicit height when given,
// otherwise width scaled by the aspect ratio, otherwise 0.
func heightFor(width, explicit int, ratio float64) int {
	if explicit > 0 {
		return explicit
	}
	if ratio <= 0 || width <= 0 {
		return 0
	}
	return int(math.Round(float64(width) * ratio))
}

func hasWidth(cands []Candidate, width int) bool {
	for _, c := range cands {
		if c.Width == width {
			return true
		}
	}
	return false
}

// finalize deduplicates by width (first occurrence wins) and sorts descending,
// restoring strict ordering after a force-appended target.
func finalize(cands []Candidate) []Candidate {
	seen := make(map[int]bool, len(cands))
	out := cands[:0]
	for _, c := range cands {
		if seen[c.Width] {
			continue
		}
		seen[c.Width] = true
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Width > out[j].Width })
	return out
}
