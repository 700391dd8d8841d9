package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlainMarkdown(t *testing.T) {
	src := "# Title\n\nSome *emphasis* and a [link](https://example.com).\n"
	nodes, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, Text{Content: src}, nodes[0])
}

func TestParseSelfClosingComponent(t *testing.T) {
	nodes, err := Parse(`Before <Video id="abc" autoplay /> after.`)
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	assert.Equal(t, Text{Content: "Before "}, nodes[0])

	comp, ok := nodes[1].(*Component)
	require.True(t, ok)
	assert.Equal(t, "Video", comp.Name)
	assert.Equal(t, map[string]any{"id": "abc", "autoplay": true}, comp.Props)
	assert.Nil(t, comp.Children)

	assert.Equal(t, Text{Content: " after."}, nodes[2])
}

func TestParseComponentWithChildren(t *testing.T) {
	nodes, err := Parse("<Alert type=\"info\">Be *careful*.</Alert>")
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	comp := nodes[0].(*Component)
	assert.Equal(t, "Alert", comp.Name)
	assert.Equal(t, map[string]any{"type": "info"}, comp.Props)
	require.Len(t, comp.Children, 1)
	assert.Equal(t, Text{Content: "Be *careful*."}, comp.Children[0])
}

func TestParseNestedComponents(t *testing.T) {
	src := "<Tabs>\n<Tab label=\"One\">first</Tab>\n<Tab label=\"Two\">second</Tab>\n</Tabs>"
	nodes, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	tabs := nodes[0].(*Component)
	assert.Equal(t, "Tabs", tabs.Name)

	var inner []*Component
	for _, child := range tabs.Children {
		if c, ok := child.(*Component); ok {
			inner = append(inner, c)
		}
	}
	require.Len(t, inner, 2)
	assert.Equal(t, map[string]any{"label": "One"}, inner[0].Props)
	assert.Equal(t, []Node{Text{Content: "first"}}, inner[0].Children)
	assert.Equal(t, map[string]any{"label": "Two"}, inner[1].Props)
}

func TestParseNestedSameName(t *testing.T) {
	nodes, err := Parse("<Box><Box>inner</Box></Box>")
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	outer := nodes[0].(*Component)
	require.Len(t, outer.Children, 1)
	inner := outer.Children[0].(*Component)
	assert.Equal(t, "Box", inner.Name)
	assert.Equal(t, []Node{Text{Content: "inner"}}, inner.Children)
}

func TestParseJSONProps(t *testing.T) {
	nodes, err := Parse(`<Gallery columns={2} ratio={1.5} captions={false} images={["a.jpg", "b.jpg"]} layout={{"gap": 8}} />`)
	require.NoError(t, err)

	comp := nodes[0].(*Component)
	assert.Equal(t, map[string]any{
		"columns":  float64(2),
		"ratio":    1.5,
		"captions": false,
		"images":   []any{"a.jpg", "b.jpg"},
		"layout":   map[string]any{"gap": float64(8)},
	}, comp.Props)
}

func TestParseJSONPropWithBracesInString(t *testing.T) {
	nodes, err := Parse(`<Code snippet={"if x { y }"} />`)
	require.NoError(t, err)
	comp := nodes[0].(*Component)
	assert.Equal(t, map[string]any{"snippet": "if x { y }"}, comp.Props)
}

func TestParseFencedCodeBlockPreserved(t *testing.T) {
	src := "Text.\n\n```html\n<Alert>not a component</Alert>\n```\n\nMore text.\n"
	nodes, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, nodes, 1, "component syntax inside a fence must stay text")
	assert.Equal(t, Text{Content: src}, nodes[0])
}

func TestParseTildeFencePreserved(t *testing.T) {
	src := "~~~\n<X />\n~~~\n"
	nodes, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, Text{Content: src}, nodes[0])
}

func TestParseInlineCodePreserved(t *testing.T) {
	src := "Use `<Alert />` to warn."
	nodes, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, Text{Content: src}, nodes[0])
}

func TestParseLowercaseHTMLIsText(t *testing.T) {
	src := "A <div>plain html</div> element and a < sign."
	nodes, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, Text{Content: src}, nodes[0])
}

func TestParseUnclosedComponent(t *testing.T) {
	_, err := Parse("line one\n<Alert>never closed")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnclosedTag)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Error(), "Alert")
}

func TestParseMalformedProps(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "unquoted value", src: `<Alert type=info />`},
		{name: "unterminated string", src: `<Alert type="info />`},
		{name: "invalid JSON literal", src: `<Gallery columns={2,} />`},
		{name: "unbalanced braces", src: `<Gallery layout={{"gap": 8} />`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedProps)
		})
	}
}

func TestParseErrorLineNumber(t *testing.T) {
	_, err := Parse("one\ntwo\n<Alert type=bad />\n")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Line)
}

func TestRenderHTML(t *testing.T) {
	nodes, err := Parse("# Hi\n\n<Badge label=\"new\" />\n\ndone\n")
	require.NoError(t, err)

	out, err := RenderHTML(nodes, func(c *Component, children string) (string, error) {
		return `<span class="badge">` + c.Props["label"].(string) + `</span>`, nil
	})
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Hi</h1>")
	assert.Contains(t, out, `<span class="badge">new</span>`)
	assert.Contains(t, out, "done")
}

func TestRenderHTMLNestedChildren(t *testing.T) {
	nodes, err := Parse("<Panel>inner *text*</Panel>")
	require.NoError(t, err)

	out, err := RenderHTML(nodes, func(c *Component, children string) (string, error) {
		return "<section>" + children + "</section>", nil
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<section>"))
	assert.Contains(t, out, "<em>text</em>")
}

func TestRenderHTMLNilRendererDropsComponents(t *testing.T) {
	nodes, err := Parse("before <Badge /> after")
	require.NoError(t, err)

	out, err := RenderHTML(nodes, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "before")
	assert.Contains(t, out, "after")
	assert.NotContains(t, out, "Badge")
}

func TestRenderHTMLGFMTable(t *testing.T) {
	nodes, err := Parse("| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	out, err := RenderHTML(nodes, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
}
