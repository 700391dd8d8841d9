package images

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Errors returned by the size descriptor parser. These can be used with
// errors.Is() to check for specific failure conditions.
//
// Example:
//
//	_, err := images.ParseSizeDescriptors([]string{"10em"}, nil)
//	if errors.Is(err, images.ErrInvalidSizeFormat) {
//	    // The token matched none of the supported grammars
//	}
var (
	// ErrInvalidSizeFormat is returned when a size token matches none of the
	// supported grammars ("<n>vw", "<n>px", "calc(<n>vw - <m>px)").
	ErrInvalidSizeFormat = errors.New("invalid size format")

	// ErrInvalidSizeKind is returned when formatting a SizeSpec whose Kind is
	// outside the closed set. The parser can never produce such a value, so
	// hitting this indicates a programming error, not bad user input.
	ErrInvalidSizeKind = errors.New("invalid size kind")
)

// ParseError describes a size token that failed to parse. It wraps one of the
// sentinel errors above and carries the offending token.
type ParseError struct {
	// Token is the size descriptor that failed to parse.
	Token string
	// Err is the underlying sentinel error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid size descriptor %q: %v", e.Token, e.Err)
}

// Unwrap returns the wrapped sentinel error.
func (e *ParseError) Unwrap() error { return e.Err }

// SizeKind identifies one of the supported size descriptor forms. The set is
// closed: the parser only ever produces the three kinds below, and formatting
// switches over them exhaustively.
type SizeKind int

const (
	// KindViewport is a percentage of the viewport width, e.g. "100vw".
	KindViewport SizeKind = iota
	// KindFixed is an absolute pixel length, e.g. "500px".
	KindFixed
	// KindCalc is a viewport percentage minus a fixed pixel offset,
	// e.g. "calc(100vw - 20px)". This is the only supported calc form.
	KindCalc
)

// SizeSpec is a parsed size descriptor.
//
// Percent is set for KindViewport and KindCalc; Pixels is set for KindFixed
// and KindCalc. Both are always non-negative: the grammar has no sign and no
// fractional values (a real limitation — "33.3vw" is rejected rather than
// rounded).
type SizeSpec struct {
	Kind    SizeKind
	Percent int
	Pixels  int
}

// Format renders the spec back to its canonical textual form. It returns
// ErrInvalidSizeKind for a Kind outside the closed set.
func (s SizeSpec) Format() (string, error) {
	switch s.Kind {
	case KindViewport:
		return strconv.Itoa(s.Percent) + "vw", nil
	case KindFixed:
		return strconv.Itoa(s.Pixels) + "px", nil
	case KindCalc:
		return fmt.Sprintf("calc(%dvw - %dpx)", s.Percent, s.Pixels), nil
	default:
		return "", fmt.Errorf("%w: %d", ErrInvalidSizeKind, s.Kind)
	}
}

// String implements fmt.Stringer. An out-of-range Kind renders as "<invalid>";
// use Format to observe the error.
func (s SizeSpec) String() string {
	out, err := s.Format()
	if err != nil {
		return "<invalid>"
	}
	return out
}

// BreakpointMap maps a minimum-width threshold in pixels to the size that
// applies at and above it. Threshold 0 is the mobile-first default with no
// media condition. Insertion order is irrelevant: rendering always processes
// thresholds in descending order, because CSS evaluates the sizes attribute
// top to bottom and takes the first matching condition.
type BreakpointMap map[int]SizeSpec

// DefaultBreakpoints is the default breakpoint-name table, matching the
// conventional sm/md/lg/xl/2xl tiers.
var DefaultBreakpoints = map[string]int{
	"sm":  640,
	"md":  768,
	"lg":  1024,
	"xl":  1280,
	"2xl": 1536,
}

// calcInner matches the body of the single supported calc form,
// "<n>vw - <m>px", with tolerance for whitespace around the minus.
var calcInner = regexp.MustCompile(`^(\d+)vw\s*-\s*(\d+)px$`)

// ParseSizeDescriptors converts human-authored size tokens into a
// BreakpointMap.
//
// Each token is either a bare size ("100vw", "500px", "calc(100vw - 20px)"),
// which applies at threshold 0, or a prefixed size ("md:50vw") whose prefix is
// looked up in the breakpoints table. A nil table means DefaultBreakpoints.
//
// Tokens whose prefix is not a known breakpoint name are silently dropped.
// Any other failure aborts the whole parse: the returned map is never partial.
//
// Example:
//
//	bm, err := images.ParseSizeDescriptors([]string{"100vw", "md:50vw", "lg:33vw"}, nil)
//	// bm == {0: 100vw, 768: 50vw, 1024: 33vw}
func ParseSizeDescriptors(tokens []string, breakpoints map[string]int) (BreakpointMap, error) {
	if breakpoints == nil {
		breakpoints = DefaultBreakpoints
	}
	out := make(BreakpointMap, len(tokens))
	for _, token := range tokens {
		threshold := 0
		body := strings.TrimSpace(token)
		if idx := strings.Index(body, ":"); idx >= 0 {
			px, known := breakpoints[strings.TrimSpace(body[:idx])]
			if !known {
				// Lenient by contract: unknown breakpoint names drop the
				// entry instead of failing the parse.
				continue
			}
			threshold = px
			body = strings.TrimSpace(body[idx+1:])
		}
		spec, err := ParseSize(body)
		if err != nil {
			return nil, &ParseError{Token: token, Err: ErrInvalidSizeFormat}
		}
		out[threshold] = spec
	}
	return out, nil
}

// ParseSize parses a single bare size token. The grammars are tried in order:
// the calc form (any token containing "calc" or "-" must match it), then a
// "vw" suffix, then a "px" suffix. Anything else fails with a *ParseError
// wrapping ErrInvalidSizeFormat.
func ParseSize(token string) (SizeSpec, error) {
	t := strings.TrimSpace(token)
	if strings.Contains(t, "calc") || strings.Contains(t, "-") {
		inner := t
		if strings.HasPrefix(inner, "calc(") && strings.HasSuffix(inner, ")") {
			inner = strings.TrimSpace(inner[len("calc(") : len(inner)-1])
		} else if strings.Contains(inner, "calc") {
			return SizeSpec{}, &ParseError{Token: token, Err: ErrInvalidSizeFormat}
		}
		m := calcInner.FindStringSubmatch(inner)
		if m == nil {
			return SizeSpec{}, &ParseError{Token: token, Err: ErrInvalidSizeFormat}
		}
		percent, _ := strconv.Atoi(m[1])
		pixels, _ := strconv.Atoi(m[2])
		return SizeSpec{Kind: KindCalc, Percent: percent, Pixels: pixels}, nil
	}
	if n, ok := leadingInt(t, "vw"); ok {
		return SizeSpec{Kind: KindViewport, Percent: n}, nil
	}
	if n, ok := leadingInt(t, "px"); ok {
		return SizeSpec{Kind: KindFixed, Pixels: n}, nil
	}
	return SizeSpec{}, &ParseError{Token: token, Err: ErrInvalidSizeFormat}
}

// leadingInt parses a token of the form "<int><suffix>". The numeric part must
// be the whole prefix: fractional values are rejected, not rounded.
func leadingInt(t, suffix string) (int, bool) {
	if !strings.HasSuffix(t, suffix) {
		return 0, false
	}
	n, err := strconv.Atoi(t[:len(t)-len(suffix)])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// SizesAttribute renders the map into the wire-format sizes string: entries
// sorted by threshold descending, each as "(min-width: <t>px) <size>", with
// the threshold-0 entry rendered bare and therefore last.
//
// Example:
//
//	bm, _ := images.ParseSizeDescriptors([]string{"100vw", "md:50vw", "lg:33vw"}, nil)
//	bm.SizesAttribute() // "(min-width: 1024px) 33vw, (min-width: 768px) 50vw, 100vw"
func (m BreakpointMap) SizesAttribute() string {
	thresholds := make([]int, 0, len(m))
	for t := range m {
		thresholds = append(thresholds, t)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(thresholds)))

	parts := make([]string, 0, len(thresholds))
	for _, t := range thresholds {
		if t == 0 {
			parts = append(parts, m[t].String())
		} else {
			parts = append(parts, fmt.Sprintf("(min-width: %dpx) %s", t, m[t]))
		}
	}
	return strings.Join(parts, ", ")
}
