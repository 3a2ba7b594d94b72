package components

import (
	"github.com/recera/codebuilder/pkg/builder"
	"github.com/recera/codebuilder/pkg/vdom"
)

// ButtonVariant defines the visual style of the button
type ButtonVariant string

const (
	ButtonPrimary ButtonVariant = "primary"
	ButtonOutline ButtonVariant = "outline"
	ButtonGhost   ButtonVariant = "ghost"
)

// ButtonSize defines the size of the button
type ButtonSize string

const (
	ButtonSmall  ButtonSize = "sm"
	ButtonMedium ButtonSize = "md"
	ButtonLarge  ButtonSize = "lg"
	ButtonIcon   ButtonSize = "icon"
)

var buttonVariantClasses = map[ButtonVariant]string{
	ButtonPrimary: "bg-primary text-primary-foreground hover:bg-primary/90",
	ButtonOutline: "border border-input bg-background hover:bg-accent hover:text-accent-foreground",
	ButtonGhost:   "hover:bg-accent hover:text-accent-foreground",
}

var buttonSizeClasses = map[ButtonSize]string{
	ButtonSmall:  "h-9 rounded-md px-3",
	ButtonMedium: "h-10 px-4 py-2",
	ButtonLarge:  "h-11 rounded-md px-8",
	ButtonIcon:   "h-10 w-10",
}

// ButtonProps defines the properties for the Button component
type ButtonProps struct {
	Text     string
	Variant  ButtonVariant
	Size     ButtonSize
	Icon     string
	IconSize int
	Disabled bool
	// OnClick is inline script source
	OnClick string
	Class   string
	ID      string
	Data    map[string]string
}

// Button creates a reusable button component
func Button(props ButtonProps) *vdom.VNode {
	if props.Variant == "" {
		props.Variant = ButtonPrimary
	}
	if props.Size == "" {
		props.Size = ButtonMedium
	}
	if props.IconSize == 0 {
		props.IconSize = 16
	}

	btn := builder.Button().
		Type("button").
		Class(
			"btn inline-flex items-center justify-center gap-2 text-sm font-medium transition-colors",
			buttonVariantClasses[props.Variant],
			buttonSizeClasses[props.Size],
			props.Class,
		).
		Disabled(props.Disabled)

	if props.ID != "" {
		btn.ID(props.ID)
	}
	if props.OnClick != "" && !props.Disabled {
		btn.OnClick(props.OnClick)
	}
	for _, k := range sortedKeys(props.Data) {
		btn.Data(k, props.Data[k])
	}

	if props.Icon != "" {
		iconClass := ""
		if props.Text != "" {
			iconClass = "mr-2"
		}
		btn.Children(Icon(IconProps{Name: props.Icon, Size: props.IconSize, Class: iconClass}))
	}
	if props.Text != "" {
		btn.Children(builder.Span().Text(props.Text).Build())
	}

	return btn.Build()
}
