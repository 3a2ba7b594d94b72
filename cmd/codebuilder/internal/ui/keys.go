package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/recera/codebuilder/internal/editor"
)

// KeyMap defines the editor's keyboard shortcuts. Everything not bound here
// goes to the text area.
type KeyMap struct {
	NextLanguage key.Binding
	PrevLanguage key.Binding
	JavaScript   key.Binding
	Python       key.Binding
	TypeScript   key.Binding
	Export       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap keeps printable keys free for typing code
var DefaultKeyMap = KeyMap{
	NextLanguage: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "next language"),
	),
	PrevLanguage: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous language"),
	),
	JavaScript: key.NewBinding(
		key.WithKeys("alt+1"),
		key.WithHelp("alt+1", "JavaScript"),
	),
	Python: key.NewBinding(
		key.WithKeys("alt+2"),
		key.WithHelp("alt+2", "Python"),
	),
	TypeScript: key.NewBinding(
		key.WithKeys("alt+3"),
		key.WithHelp("alt+3", "TypeScript"),
	),
	Export: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "export"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextLanguage, k.Export, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextLanguage, k.PrevLanguage},
		{k.JavaScript, k.Python, k.TypeScript},
		{k.Export, k.Help, k.Quit},
	}
}

// direct maps the direct-selection bindings to their language
func (k KeyMap) direct() []struct {
	binding key.Binding
	lang    editor.Language
} {
	return []struct {
		binding key.Binding
		lang    editor.Language
	}{
		{k.JavaScript, editor.JavaScript},
		{k.Python, editor.Python},
		{k.TypeScript, editor.TypeScript},
	}
}
