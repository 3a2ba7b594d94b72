package components

import (
	"sort"
	"strconv"

	"github.com/recera/codebuilder/pkg/builder"
	"github.com/recera/codebuilder/pkg/vdom"
)

// IconProps names an icon from the page's icon set
type IconProps struct {
	Name  string
	Size  int
	Class string
}

// Icon renders a placeholder element the icon stylesheet fills in by name
func Icon(props IconProps) *vdom.VNode {
	if props.Size == 0 {
		props.Size = 24
	}
	return builder.I().
		Class("icon", props.Class).
		Data("icon", props.Name).
		Data("size", strconv.Itoa(props.Size)).
		Aria("hidden", "true").
		Build()
}

// Badge renders a small rounded label
func Badge(text, class string) *vdom.VNode {
	return builder.Span().
		Class("badge text-xs px-3 py-1 rounded-full border", class).
		Text(text).
		Build()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
