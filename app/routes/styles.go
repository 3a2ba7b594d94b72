package routes

import (
	"github.com/recera/codebuilder/pkg/components"
	"github.com/recera/codebuilder/pkg/styling"
)

const (
	themeStyle  = "theme"
	editorStyle = "editor"
)

// Stylesheet collects the theme, component and editor CSS for the page
func Stylesheet() *styling.Sheet {
	s := styling.NewSheet()
	s.Add(themeStyle, `
:root {
  --background: #0b1020; --foreground: #e6e9f2;
  --card: #121833; --card-foreground: #e6e9f2;
  --muted: #1a2140; --muted-foreground: #98a1bd;
  --primary: #7c5cff; --primary-foreground: #ffffff;
  --secondary: #22d3ee; --accent: #f472b6;
  --border: #262f55; --ring: #7c5cff; --radius: .5rem;
}
* { box-sizing: border-box; }
body { margin: 0; background: var(--background); color: var(--foreground); font-family: system-ui, sans-serif; }
a { color: inherit; }`)
	components.RegisterStyles(s)
	s.Add(editorStyle, `
#`+CodeInputID+` { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; tab-size: 2; background: transparent; color: inherit; border: 0; }`)
	return s
}
