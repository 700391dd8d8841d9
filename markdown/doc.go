// Package markdown parses Flatlayer entry content: markdown with embedded
// component tags.
//
// Components are capitalized elements mixed into the markdown, with
// JSON-like prop literals and optional children:
//
//	Intro paragraph.
//
//	<Alert type="warning" dismissible>
//	  Mind the *gap*.
//	</Alert>
//
//	<Gallery images={["a.jpg", "b.jpg"]} columns={2} />
//
// Parse splits such content into Text and Component nodes, leaving fenced
// code blocks and inline code spans untouched. RenderHTML turns the node
// list back into HTML, rendering markdown through goldmark and components
// through a caller-supplied renderer.
package markdown
