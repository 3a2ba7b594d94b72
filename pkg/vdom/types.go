package vdom

// VKind represents the type of virtual node
type VKind uint8

const (
	// KindElement represents a DOM element node
	KindElement VKind = iota
	// KindText represents an escaped text node
	KindText
	// KindFragment groups children without a parent element
	KindFragment
	// KindRaw holds trusted, already rendered HTML
	KindRaw
)

// Props represents the attributes of a VNode
type Props map[string]any

// VNode represents a virtual DOM node.
// Once built it should never be modified.
type VNode struct {
	Kind VKind

	// Tag is the element tag name, only used when Kind == KindElement
	Tag string

	Props Props

	Kids []VNode

	// Text content for KindText and KindRaw
	Text string
}

// NewElement creates a new element VNode. Nil children are skipped.
func NewElement(tag string, props Props, children ...*VNode) *VNode {
	return &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: props,
		Kids:  collect(children),
	}
}

// NewText creates a new text VNode
func NewText(text string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: text,
	}
}

// NewRaw creates a node whose HTML is written as is. Only use it for markup
// produced by a trusted renderer.
func NewRaw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// NewFragment creates a new fragment VNode
func NewFragment(children ...*VNode) *VNode {
	return &VNode{
		Kind: KindFragment,
		Kids: collect(children),
	}
}

func collect(children []*VNode) []VNode {
	kids := make([]VNode, 0, len(children))
	for _, child := range children {
		if child != nil {
			kids = append(kids, *child)
		}
	}
	return kids
}

// IsElement returns true if this is an element node
func (v VNode) IsElement() bool {
	return v.Kind == KindElement
}

// Attr returns the string form of an attribute, if present.
func (v VNode) Attr(name string) (string, bool) {
	if v.Props == nil {
		return "", false
	}
	val, ok := v.Props[name]
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// Find returns the first node in the tree, depth first, for which match
// returns true.
func (v *VNode) Find(match func(*VNode) bool) *VNode {
	if match(v) {
		return v
	}
	for i := range v.Kids {
		if found := v.Kids[i].Find(match); found != nil {
			return found
		}
	}
	return nil
}

// ByID is a Find matcher for the id attribute.
func ByID(id string) func(*VNode) bool {
	return func(n *VNode) bool {
		got, ok := n.Attr("id")
		return ok && got == id
	}
}

// TextContent concatenates the text of all descendant text nodes.
func (v VNode) TextContent() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindRaw:
		return ""
	}
	var out []byte
	for _, kid := range v.Kids {
		out = append(out, kid.TextContent()...)
	}
	return string(out)
}
