package routes

import (
	"strconv"

	"github.com/recera/codebuilder/internal/content"
	"github.com/recera/codebuilder/internal/editor"
	"github.com/recera/codebuilder/pkg/builder"
	"github.com/recera/codebuilder/pkg/components"
	"github.com/recera/codebuilder/pkg/vdom"
)

// Element ids the client script binds to
const (
	EditorWidgetID = "editor-widget"
	CodeInputID    = "code-input"
	LineCountID    = "line-count"
	CharCountID    = "char-count"
	LanguageTabsID = "language-tabs"
)

// editorRows keeps the textarea height when the stylesheet is missing
const editorRows = 16

// EditorSection renders the snippet switcher for state: the active tab, the
// buffer in the textarea and the counters derived from it.
func EditorSection(labels content.Editor, state *editor.State) *vdom.VNode {
	tabs := make([]components.TabItem, 0, 3)
	for _, lang := range editor.Languages() {
		tabs = append(tabs, components.TabItem{
			Value: lang.String(),
			Label: lang.Label(),
			Icon:  lang.Icon(),
		})
	}
	stats := state.Stats()

	toolbar := builder.Div().
		Class("bg-card/80 backdrop-blur border-b border-border p-3 flex items-center justify-between").
		Children(
			components.Tabs(components.TabsProps{
				ID:     LanguageTabsID,
				Items:  tabs,
				Active: state.Language().String(),
			}),
			components.Button(components.ButtonProps{
				Text: labels.ExportLabel,
				Icon: "Download",
				Size: components.ButtonSmall,
				Data: map[string]string{"action": "export"},
			}),
		).Build()

	windowDots := builder.Div().
		Class("absolute top-4 left-4 flex gap-2").
		Children(
			builder.Div().Class("w-3 h-3 rounded-full bg-red-500").Build(),
			builder.Div().Class("w-3 h-3 rounded-full bg-yellow-500").Build(),
			builder.Div().Class("w-3 h-3 rounded-full bg-green-500").Build(),
		).Build()

	counters := builder.Div().
		Class("absolute bottom-4 right-4 flex gap-2 text-xs text-muted-foreground").
		Children(
			builder.Span().
				Text(labels.LinesLabel+": ").
				Children(builder.Span().ID(LineCountID).Text(strconv.Itoa(stats.Lines)).Build()).
				Build(),
			builder.Span().Text("•").Build(),
			builder.Span().
				Text(labels.CharsLabel+": ").
				Children(builder.Span().ID(CharCountID).Text(strconv.Itoa(stats.Chars)).Build()).
				Build(),
		).Build()

	return builder.Section().
		ID("editor").
		Class("py-16 px-4 bg-muted/20").
		Children(
			builder.Div().
				Class("container mx-auto max-w-6xl").
				Children(
					sectionHeading(labels.Title, labels.Subtitle),
					components.Card(components.CardProps{
						ID:    EditorWidgetID,
						Class: "overflow-hidden border-border/50 glow-purple",
						Children: []*vdom.VNode{
							toolbar,
							builder.Div().
								Class("relative").
								Children(
									windowDots,
									builder.Textarea().
										ID(CodeInputID).
										Name("code").
										Aria("label", labels.Title).
										SpellCheck(false).
										Rows(editorRows).
										Class("w-full h-96 bg-background/50 p-8 pt-12 font-mono text-sm resize-none focus:outline-none text-foreground").
										Text(state.Buffer()).
										Build(),
									counters,
								).Build(),
						},
					}),
				).Build(),
		).Build()
}
