package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ComponentRenderer renders one embedded component to HTML. children is the
// already-rendered HTML of the component's child nodes ("" for self-closing
// components).
type ComponentRenderer func(c *Component, children string) (string, error)

// md is the shared goldmark instance for text nodes. GFM matches what the
// CMS authors write (tables, strikethrough, autolinks).
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// RenderHTML renders a parsed node list to HTML. Markdown text nodes go
// through goldmark; components go through renderComponent. A nil
// renderComponent drops components silently, mirroring the image engine's
// lenient handling of unknown breakpoint names.
//
// Example:
//
//	nodes, _ := markdown.Parse(entry.Content)
//	out, err := markdown.RenderHTML(nodes, func(c *markdown.Component, children string) (string, error) {
//	    return fmt.Sprintf(`<div class="cmp-%s">%s</div>`, strings.ToLower(c.Name), children), nil
//	})
func RenderHTML(nodes []Node, renderComponent ComponentRenderer) (string, error) {
	var out strings.Builder
	for _, n := range nodes {
		switch n := n.(type) {
		case Text:
			var buf bytes.Buffer
			if err := md.Convert([]byte(n.Content), &buf); err != nil {
				return "", err
			}
			out.Write(buf.Bytes())
		case *Component:
			if renderComponent == nil {
				continue
			}
			children, err := RenderHTML(n.Children, renderComponent)
			if err != nil {
				return "", err
			}
			rendered, err := renderComponent(n, children)
			if err != nil {
				return "", err
			}
			out.WriteString(rendered)
		}
	}
	return out.String(), nil
}
