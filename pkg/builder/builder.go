// Package builder provides a fluent API for constructing vdom trees.
package builder

import (
	"strings"

	"github.com/recera/codebuilder/pkg/vdom"
)

// ElementBuilder accumulates the props and children of one element
type ElementBuilder struct {
	tag      string
	props    vdom.Props
	children []*vdom.VNode
}

// El starts a builder for an arbitrary tag
func El(tag string) *ElementBuilder {
	return &ElementBuilder{
		tag:   tag,
		props: make(vdom.Props),
	}
}

// Element shortcuts
func Html() *ElementBuilder     { return El("html") }
func Head() *ElementBuilder     { return El("head") }
func Body() *ElementBuilder     { return El("body") }
func Meta() *ElementBuilder     { return El("meta") }
func Link() *ElementBuilder     { return El("link") }
func Title() *ElementBuilder    { return El("title") }
func Script() *ElementBuilder   { return El("script") }
func Style() *ElementBuilder    { return El("style") }
func Div() *ElementBuilder      { return El("div") }
func Span() *ElementBuilder     { return El("span") }
func P() *ElementBuilder        { return El("p") }
func A() *ElementBuilder        { return El("a") }
func H1() *ElementBuilder       { return El("h1") }
func H2() *ElementBuilder       { return El("h2") }
func H3() *ElementBuilder       { return El("h3") }
func Nav() *ElementBuilder      { return El("nav") }
func Header() *ElementBuilder   { return El("header") }
func Footer() *ElementBuilder   { return El("footer") }
func Main() *ElementBuilder     { return El("main") }
func Section() *ElementBuilder  { return El("section") }
func Button() *ElementBuilder   { return El("button") }
func Textarea() *ElementBuilder { return El("textarea") }
func I() *ElementBuilder        { return El("i") }

// Class appends class names; empty names are ignored
func (b *ElementBuilder) Class(names ...string) *ElementBuilder {
	var parts []string
	if existing, ok := b.props["class"].(string); ok && existing != "" {
		parts = append(parts, existing)
	}
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			parts = append(parts, n)
		}
	}
	if len(parts) > 0 {
		b.props["class"] = strings.Join(parts, " ")
	}
	return b
}

// ID sets the id attribute
func (b *ElementBuilder) ID(id string) *ElementBuilder {
	b.props["id"] = id
	return b
}

// Attr sets an arbitrary attribute
func (b *ElementBuilder) Attr(name string, value any) *ElementBuilder {
	b.props[name] = value
	return b
}

// Data sets a data-* attribute
func (b *ElementBuilder) Data(name, value string) *ElementBuilder {
	b.props["data-"+name] = value
	return b
}

// Aria sets an aria-* attribute
func (b *ElementBuilder) Aria(name, value string) *ElementBuilder {
	b.props["aria-"+name] = value
	return b
}

// Role sets the role attribute
func (b *ElementBuilder) Role(role string) *ElementBuilder {
	b.props["role"] = role
	return b
}

// TitleAttr sets the title attribute
func (b *ElementBuilder) TitleAttr(title string) *ElementBuilder {
	b.props["title"] = title
	return b
}

// Text appends a text child
func (b *ElementBuilder) Text(text string) *ElementBuilder {
	b.children = append(b.children, vdom.NewText(text))
	return b
}

// Raw appends trusted HTML as a child
func (b *ElementBuilder) Raw(html string) *ElementBuilder {
	b.children = append(b.children, vdom.NewRaw(html))
	return b
}

// Children appends child nodes
func (b *ElementBuilder) Children(children ...*vdom.VNode) *ElementBuilder {
	b.children = append(b.children, children...)
	return b
}

// Build creates the VNode
func (b *ElementBuilder) Build() *vdom.VNode {
	return vdom.NewElement(b.tag, b.props, b.children...)
}
