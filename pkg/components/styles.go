package components

import "github.com/recera/codebuilder/pkg/styling"

// Style block names registered by RegisterStyles
const (
	ButtonStyle = "components/button"
	CardStyle   = "components/card"
	TabsStyle   = "components/tabs"
	IconStyle   = "components/icon"
)

// RegisterStyles adds the CSS the components in this package rely on.
// Colors come from the page theme's custom properties.
func RegisterStyles(s *styling.Sheet) {
	s.Add(ButtonStyle, `
.btn { cursor: pointer; border-radius: var(--radius); border: 1px solid transparent; }
.btn:disabled { opacity: .5; pointer-events: none; }
.btn:focus-visible { outline: 2px solid var(--ring); outline-offset: 2px; }`)

	s.Add(CardStyle, `
.card { background: var(--card); color: var(--card-foreground); border: 1px solid var(--border); }`)

	s.Add(TabsStyle, `
.tabs-trigger { cursor: pointer; border: 0; background: transparent; color: var(--muted-foreground); }
.tabs-trigger[data-state="active"] { background: var(--background); color: var(--foreground); box-shadow: 0 1px 2px rgb(0 0 0 / .1); }`)

	s.Add(IconStyle, `
.icon { display: inline-block; width: 1em; height: 1em; vertical-align: middle; }`)
}
