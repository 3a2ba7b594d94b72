package components

import (
	"github.com/recera/codebuilder/pkg/builder"
	"github.com/recera/codebuilder/pkg/vdom"
)

// TabItem is one trigger in a tab list
type TabItem struct {
	Value string
	Label string
	Icon  string
}

// TabsProps defines a tab list with one active value
type TabsProps struct {
	ID     string
	Items  []TabItem
	Active string
	// OnSelect is inline script called with the tab value bound to `this.dataset.value`
	OnSelect string
}

// Tabs renders the trigger row; the panel content is owned by the caller
func Tabs(props TabsProps) *vdom.VNode {
	list := builder.Div().
		Class("tabs-list inline-flex h-10 items-center justify-center rounded-md bg-muted p-1").
		Role("tablist")
	if props.ID != "" {
		list.ID(props.ID)
	}

	for _, item := range props.Items {
		active := item.Value == props.Active
		state := "inactive"
		selected := "false"
		if active {
			state = "active"
			selected = "true"
		}

		trigger := builder.Button().
			Type("button").
			Role("tab").
			Class("tabs-trigger inline-flex items-center gap-2 rounded-sm px-3 py-1.5 text-sm font-medium").
			Data("value", item.Value).
			Data("state", state).
			Aria("selected", selected)
		if props.OnSelect != "" {
			trigger.OnClick(props.OnSelect)
		}
		if item.Icon != "" {
			trigger.Children(Icon(IconProps{Name: item.Icon, Size: 16}))
		}
		list.Children(trigger.Text(item.Label).Build())
	}

	return list.Build()
}
