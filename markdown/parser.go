package markdown

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Errors returned by the parser, usable with errors.Is().
var (
	// ErrUnclosedTag is returned when a component tag has no matching
	// closing tag before the end of input.
	ErrUnclosedTag = errors.New("unclosed component tag")

	// ErrMalformedProps is returned when a component's props cannot be
	// parsed.
	ErrMalformedProps = errors.New("malformed component props")
)

// ParseError describes where and why parsing failed.
type ParseError struct {
	// Line is the 1-based line number of the failure
	Line int
	// Err is the underlying sentinel error
	Err error
	// Detail describes the specific failure
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("markdown: line %d: %v: %s", e.Line, e.Err, e.Detail)
}

// Unwrap returns the wrapped sentinel error.
func (e *ParseError) Unwrap() error { return e.Err }

// Node is one parsed content node: either a Text run of markdown or an
// embedded Component.
type Node interface {
	node()
}

// Text is a verbatim run of markdown source.
type Text struct {
	Content string
}

func (Text) node() {}

// Component is an embedded component tag: a capitalized element with props
// and optional children.
//
// Prop values follow JSON semantics: quoted props are strings, braced props
// decode to bool, float64, string, map[string]any or []any, and bare props
// are boolean true.
type Component struct {
	// Name is the component name, always starting with an uppercase letter
	Name string
	// Props holds the component's attributes
	Props map[string]any
	// Children are the parsed nodes between the opening and closing tags,
	// nil for self-closing components
	Children []Node
}

func (*Component) node() {}

// Parse tokenizes mixed markdown and component syntax into an ordered node
// list. Component tags are capitalized elements (<Alert>, <Video />); anything
// else, including lowercase HTML, stays markdown text. Component syntax inside
// fenced code blocks and inline code spans is preserved verbatim.
//
// Example:
//
//	nodes, err := markdown.Parse("# Title\n\n<Alert type=\"info\">Be *careful*.</Alert>\n")
//	// nodes[0] = Text("# Title\n\n")
//	// nodes[1] = &Component{Name: "Alert", Props: {"type": "info"},
//	//            Children: [Text("Be *careful*.")]}
func Parse(src string) ([]Node, error) {
	p := &parser{src: src, line: 1, lineStart: true}
	nodes, err := p.parseNodes("")
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

type parser struct {
	src       string
	pos       int
	line      int
	lineStart bool
}

// advance consumes n bytes, tracking line numbers and line starts.
func (p *parser) advance(n int) {
	for i := 0; i < n && p.pos < len(p.src); i++ {
		p.lineStart = p.src[p.pos] == '\n'
		if p.lineStart {
			p.line++
		}
		p.pos++
	}
}

func (p *parser) errorf(err error, format string, args ...any) *ParseError {
	return &ParseError{Line: p.line, Err: err, Detail: fmt.Sprintf(format, args...)}
}

// parseNodes parses until EOF, or until the closing tag for parent when
// parent is non-empty.
func (p *parser) parseNodes(parent string) ([]Node, error) {
	var nodes []Node
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, Text{Content: text.String()})
			text.Reset()
		}
	}

	for p.pos < len(p.src) {
		// Fenced code blocks are copied through untouched.
		if p.lineStart {
			if fence := p.fenceMarker(); fence != "" {
				text.WriteString(p.consumeFencedBlock(fence))
				continue
			}
		}

		c := p.src[p.pos]

		// Inline code spans are copied through untouched.
		if c == '`' {
			text.WriteString(p.consumeCodeSpan())
			continue
		}

		if c == '<' {
			// Closing tag for the component we are inside?
			if parent != "" && p.hasClosingTag(parent) {
				flush()
				p.advance(len("</" + parent + ">"))
				return nodes, nil
			}
			// Opening component tag?
			if p.pos+1 < len(p.src) && isUpper(p.src[p.pos+1]) {
				flush()
				comp, err := p.parseComponent()
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, comp)
				continue
			}
		}

		text.WriteByte(c)
		p.advance(1)
	}

	if parent != "" {
		return nil, p.errorf(ErrUnclosedTag, "missing </%s>", parent)
	}
	flush()
	return nodes, nil
}

// fenceMarker returns the fence marker ("```" or "~~~") opening at the
// current position, or "".
func (p *parser) fenceMarker() string {
	rest := p.src[p.pos:]
	if strings.HasPrefix(rest, "```") {
		return "```"
	}
	if strings.HasPrefix(rest, "~~~") {
		return "~~~"
	}
	return ""
}

// consumeFencedBlock consumes a fenced code block verbatim, through its
// closing fence line or to EOF.
func (p *parser) consumeFencedBlock(fence string) string {
	start := p.pos
	p.consumeLine()
	for p.pos < len(p.src) {
		if strings.HasPrefix(p.src[p.pos:], fence) {
			p.consumeLine()
			break
		}
		p.consumeLine()
	}
	return p.src[start:p.pos]
}

// consumeLine consumes through the next newline inclusive.
func (p *parser) consumeLine() {
	for p.pos < len(p.src) {
		isNL := p.src[p.pos] == '\n'
		p.advance(1)
		if isNL {
			return
		}
	}
}

// consumeCodeSpan consumes an inline code span: a backtick run and everything
// through a matching run. An unmatched opener is consumed as literal text.
func (p *parser) consumeCodeSpan() string {
	start := p.pos
	n := 0
	for p.pos+n < len(p.src) && p.src[p.pos+n] == '`' {
		n++
	}
	delim := strings.Repeat("`", n)
	if idx := strings.Index(p.src[p.pos+n:], delim); idx >= 0 {
		p.advance(n + idx + n)
	} else {
		p.advance(n)
	}
	return p.src[start:p.pos]
}

// hasClosingTag reports whether the closing tag for name starts at the
// current position.
func (p *parser) hasClosingTag(name string) bool {
	return strings.HasPrefix(p.src[p.pos:], "</"+name+">")
}

// parseComponent parses an opening component tag at the current position,
// then its children when the tag is not self-closing.
func (p *parser) parseComponent() (*Component, error) {
	p.advance(1) // "<"

	name := p.parseName()
	props, selfClosing, err := p.parseProps(name)
	if err != nil {
		return nil, err
	}

	comp := &Component{Name: name, Props: props}
	if selfClosing {
		return comp, nil
	}

	children, err := p.parseNodes(name)
	if err != nil {
		return nil, err
	}
	comp.Children = children
	return comp, nil
}

// parseName consumes a component name: an uppercase letter followed by
// letters and digits.
func (p *parser) parseName() string {
	start := p.pos
	for p.pos < len(p.src) && isNameChar(p.src[p.pos]) {
		p.advance(1)
	}
	return p.src[start:p.pos]
}

// parseProps parses attributes up to ">" or "/>". It returns the props map
// (nil when there are none) and whether the tag was self-closing.
func (p *parser) parseProps(name string) (map[string]any, bool, error) {
	var props map[string]any

	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, false, p.errorf(ErrUnclosedTag, "<%s tag never closed", name)
		}
		if p.src[p.pos] == '>' {
			p.advance(1)
			return props, false, nil
		}
		if strings.HasPrefix(p.src[p.pos:], "/>") {
			p.advance(2)
			return props, true, nil
		}

		key := p.parseIdent()
		if key == "" {
			return nil, false, p.errorf(ErrMalformedProps, "unexpected %q in <%s>", p.src[p.pos], name)
		}

		value := any(true) // bare props are boolean
		if p.pos < len(p.src) && p.src[p.pos] == '=' {
			p.advance(1)
			var err error
			value, err = p.parsePropValue(name, key)
			if err != nil {
				return nil, false, err
			}
		}

		if props == nil {
			props = make(map[string]any)
		}
		props[key] = value
	}
}

// parsePropValue parses a prop value: a quoted string or a braced JSON
// literal.
func (p *parser) parsePropValue(name, key string) (any, error) {
	if p.pos >= len(p.src) {
		return nil, p.errorf(ErrMalformedProps, "missing value for %s in <%s>", key, name)
	}
	switch p.src[p.pos] {
	case '"', '\'':
		return p.parseQuoted(name, key)
	case '{':
		return p.parseBraced(name, key)
	}
	return nil, p.errorf(ErrMalformedProps, "unquoted value for %s in <%s>", key, name)
}

// parseQuoted parses a quoted string value.
func (p *parser) parseQuoted(name, key string) (string, error) {
	quote := p.src[p.pos]
	p.advance(1)
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != quote {
		p.advance(1)
	}
	if p.pos >= len(p.src) {
		return "", p.errorf(ErrMalformedProps, "unterminated string for %s in <%s>", key, name)
	}
	value := p.src[start:p.pos]
	p.advance(1)
	return value, nil
}

// parseBraced parses a {…} prop value as a JSON literal. Brace balancing
// skips over braces inside JSON strings.
func (p *parser) parseBraced(name, key string) (any, error) {
	p.advance(1) // "{"
	start := p.pos
	depth := 1
	inString := false
	escaped := false

	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case escaped:
			escaped = false
		case inString:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '{':
			depth++
		case c == '}':
			depth--
		}
		if depth == 0 {
			break
		}
		p.advance(1)
	}
	if depth != 0 {
		return nil, p.errorf(ErrMalformedProps, "unbalanced braces for %s in <%s>", key, name)
	}

	literal := strings.TrimSpace(p.src[start:p.pos])
	p.advance(1) // "}"

	var value any
	if err := json.Unmarshal([]byte(literal), &value); err != nil {
		return nil, p.errorf(ErrMalformedProps, "invalid literal for %s in <%s>: %v", key, name, err)
	}
	return value, nil
}

// parseIdent consumes a prop name.
func (p *parser) parseIdent() string {
	start := p.pos
	for p.pos < len(p.src) && isIdentChar(p.src[p.pos]) {
		p.advance(1)
	}
	return p.src[start:p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.advance(1)
		default:
			return
		}
	}
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isNameChar(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}

func isIdentChar(c byte) bool {
	return isNameChar(c) || c == '_' || c == '-'
}
