package components

import (
	"github.com/recera/codebuilder/pkg/builder"
	"github.com/recera/codebuilder/pkg/vdom"
)

// CardProps defines the properties for the Card component
type CardProps struct {
	Hoverable bool
	Class     string
	ID        string
	Children  []*vdom.VNode
}

// Card creates a bordered surface for grouped content
func Card(props CardProps) *vdom.VNode {
	card := builder.Div().Class("card rounded-lg border bg-card text-card-foreground shadow-sm")

	if props.Hoverable {
		card.Class("hover:shadow-lg transition-all duration-300 hover:-translate-y-1")
	}
	card.Class(props.Class)

	if props.ID != "" {
		card.ID(props.ID)
	}

	return card.Children(props.Children...).Build()
}

// CardGridProps describes a responsive grid of cards
type CardGridProps struct {
	Cards []*vdom.VNode
	Class string
}

// CardGrid lays cards out in a grid
func CardGrid(props CardGridProps) *vdom.VNode {
	return builder.Div().
		Class("grid gap-6", props.Class).
		Children(props.Cards...).
		Build()
}

// IconTile is the rounded square holding an icon at the top of a card
func IconTile(icon string, size int, class string) *vdom.VNode {
	return builder.Div().
		Class("rounded-lg flex items-center justify-center", class).
		Children(Icon(IconProps{Name: icon, Size: size, Class: "text-primary"})).
		Build()
}
