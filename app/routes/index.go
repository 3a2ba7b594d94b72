package routes

import (
	"strings"

	"github.com/recera/codebuilder/internal/content"
	"github.com/recera/codebuilder/internal/editor"
	"github.com/recera/codebuilder/pkg/builder"
	"github.com/recera/codebuilder/pkg/components"
	"github.com/recera/codebuilder/pkg/vdom"
)

// IndexPage is the landing page. The editor section shows state as it is;
// callers own the state and pass a fresh one per render.
func IndexPage(site *content.Site, state *editor.State) (*vdom.VNode, error) {
	faq, err := faqSection(site.FAQ)
	if err != nil {
		return nil, err
	}

	return builder.Div().
		Class("min-h-screen bg-background").
		Children(
			siteHeader(site),
			builder.Main().
				Children(
					heroSection(site.Hero, site.Features),
					EditorSection(site.Editor, state),
					projectsSection(site.Projects),
					faq,
				).Build(),
			siteFooter(site),
		).Build(), nil
}

func siteHeader(site *content.Site) *vdom.VNode {
	nav := builder.Nav().Class("hidden md:flex items-center gap-6")
	for _, link := range site.Nav {
		nav.Children(
			builder.A().
				Href(link.Href).
				Class("text-muted-foreground hover:text-foreground transition-colors").
				Text(link.Label).
				Build(),
		)
	}
	nav.Children(components.Button(components.ButtonProps{
		Text:  site.Editor.ExportLabel,
		Icon:  "Download",
		Size:  components.ButtonSmall,
		Class: "glow",
		Data:  map[string]string{"action": "export"},
	}))

	return builder.Header().
		Class("border-b border-border bg-card/50 backdrop-blur-sm sticky top-0 z-50").
		Children(
			builder.Div().
				Class("container mx-auto px-4 py-4").
				Children(
					builder.Div().
						Class("flex items-center justify-between").
						Children(
							brand(site.Brand, 24, "w-10 h-10", builder.H1().Class("text-2xl font-bold")),
							nav.Build(),
							components.Button(components.ButtonProps{
								Icon:     "Menu",
								IconSize: 24,
								Variant:  components.ButtonGhost,
								Size:     components.ButtonIcon,
								Class:    "md:hidden",
							}),
						).Build(),
				).Build(),
		).Build()
}

func brand(name string, iconSize int, tileClass string, label *builder.ElementBuilder) *vdom.VNode {
	return builder.Div().
		Class("flex items-center gap-3").
		Children(
			builder.Div().
				Class(tileClass, "bg-gradient-to-br from-primary to-secondary rounded-lg flex items-center justify-center").
				Children(components.Icon(components.IconProps{Name: "Code2", Size: iconSize, Class: "text-background"})).
				Build(),
			label.Text(name).Build(),
		).Build()
}

func heroSection(hero content.Hero, features []content.Feature) *vdom.VNode {
	cards := make([]*vdom.VNode, 0, len(features))
	for _, f := range features {
		cards = append(cards, components.Card(components.CardProps{
			Hoverable: true,
			Class:     "p-6 border-border/50 bg-card/50 backdrop-blur",
			Children: []*vdom.VNode{
				components.IconTile(f.Icon, 24, "w-12 h-12 bg-primary/10 mb-4"),
				builder.H3().Class("text-xl font-semibold mb-2").Text(f.Title).Build(),
				builder.P().Class("text-muted-foreground").Text(f.Description).Build(),
			},
		}))
	}

	return builder.Section().
		Class("py-20 px-4").
		Children(
			builder.Div().
				Class("container mx-auto max-w-6xl").
				Children(
					builder.Div().
						Class("text-center mb-16 animate-fade-in").
						Children(
							builder.Div().
								Class("inline-block mb-4").
								Children(components.Badge(hero.Badge, "px-4 py-2 bg-primary/10 text-primary text-sm font-medium border-primary/20")).
								Build(),
							builder.H2().
								Class("text-5xl md:text-6xl font-bold mb-6 bg-gradient-to-r from-primary via-secondary to-primary bg-clip-text text-transparent").
								Text(hero.Title).
								Build(),
							builder.P().
								Class("text-xl text-muted-foreground max-w-2xl mx-auto mb-8").
								Text(hero.Subtitle).
								Build(),
							builder.Div().
								Class("flex gap-4 justify-center flex-wrap").
								Children(
									components.Button(components.ButtonProps{
										Text:     hero.PrimaryAction,
										Icon:     "Play",
										IconSize: 20,
										Size:     components.ButtonLarge,
										Class:    "glow",
										OnClick:  "location.hash='#editor'",
									}),
									components.Button(components.ButtonProps{
										Text:     hero.SecondaryAction,
										Icon:     "BookOpen",
										IconSize: 20,
										Size:     components.ButtonLarge,
										Variant:  components.ButtonOutline,
										OnClick:  "location.hash='#docs'",
									}),
								).Build(),
						).Build(),
					components.CardGrid(components.CardGridProps{
						Cards: cards,
						Class: "md:grid-cols-3 mb-16",
					}),
				).Build(),
		).Build()
}

func sectionHeading(title, subtitle string) *vdom.VNode {
	return builder.Div().
		Class("text-center mb-12").
		Children(
			builder.H2().Class("text-4xl font-bold mb-4").Text(title).Build(),
			builder.P().Class("text-muted-foreground text-lg").Text(subtitle).Build(),
		).Build()
}

func projectsSection(projects content.Projects) *vdom.VNode {
	cards := make([]*vdom.VNode, 0, len(projects.Templates))
	for _, tpl := range projects.Templates {
		cards = append(cards, components.Card(components.CardProps{
			Hoverable: true,
			Class:     "project-card p-6 cursor-pointer border-border/50 bg-card/50 backdrop-blur group",
			Children: []*vdom.VNode{
				components.IconTile(tpl.Icon, 28, "w-14 h-14 bg-gradient-to-br from-primary/20 to-secondary/20 rounded-xl mb-4 group-hover:scale-110 transition-transform glow"),
				builder.H3().Class("text-lg font-semibold mb-2").Text(tpl.Title).Build(),
				builder.P().Class("text-sm text-muted-foreground mb-4").Text(tpl.Description).Build(),
				builder.Div().
					Class("flex items-center justify-between").
					Children(
						components.Badge(tpl.Language, "bg-primary/10 text-primary border-primary/20"),
						components.Icon(components.IconProps{Name: "ArrowRight", Size: 16, Class: "text-muted-foreground group-hover:text-primary transition-colors"}),
					).Build(),
			},
		}))
	}

	return builder.Section().
		ID("projects").
		Class("py-16 px-4").
		Children(
			builder.Div().
				Class("container mx-auto max-w-6xl").
				Children(
					sectionHeading(projects.Title, projects.Subtitle),
					components.CardGrid(components.CardGridProps{
						Cards: cards,
						Class: "md:grid-cols-2 lg:grid-cols-4",
					}),
				).Build(),
		).Build()
}

func faqSection(faq content.FAQ) (*vdom.VNode, error) {
	entries := builder.Div().Class("space-y-4")
	for i, entry := range faq.Entries {
		answer, err := entry.AnswerHTML()
		if err != nil {
			return nil, err
		}
		tone := "primary"
		if i%2 == 1 {
			tone = "secondary"
		}
		entries.Children(components.Card(components.CardProps{
			Class: "faq-entry p-6 border-border/50 bg-card/50 backdrop-blur",
			Children: []*vdom.VNode{
				builder.Div().
					Class("flex items-start gap-4").
					Children(
						builder.Div().
							Class("w-10 h-10 bg-"+tone+"/10 rounded-lg flex items-center justify-center flex-shrink-0").
							Children(components.Icon(components.IconProps{Name: "HelpCircle", Size: 20, Class: "text-" + tone})).
							Build(),
						builder.Div().
							Children(
								builder.H3().Class("font-semibold mb-2").Text(entry.Question).Build(),
								builder.Div().Class("text-muted-foreground text-sm").Raw(answer).Build(),
							).Build(),
					).Build(),
			},
		}))
	}

	return builder.Section().
		ID("docs").
		Class("py-16 px-4 bg-muted/20").
		Children(
			builder.Div().
				Class("container mx-auto max-w-4xl").
				Children(
					sectionHeading(faq.Title, faq.Subtitle),
					entries.Build(),
				).Build(),
		).Build(), nil
}

func siteFooter(site *content.Site) *vdom.VNode {
	links := builder.Div().Class("flex gap-4")
	for _, link := range site.Footer.Links {
		label := link.Label
		if label == "" {
			label = link.Icon
		}
		a := builder.A().
			Href(link.Href).
			Aria("label", label).
			TitleAttr(label).
			Class("text-muted-foreground hover:text-foreground transition-colors").
			Children(components.Icon(components.IconProps{Name: link.Icon, Size: 20}))
		if isExternal(link.Href) {
			a.Target("_blank").Rel("noopener noreferrer")
		}
		links.Children(a.Build())
	}

	return builder.Footer().
		Class("border-t border-border bg-card/50 backdrop-blur py-8 px-4 mt-16").
		Children(
			builder.Div().
				Class("container mx-auto max-w-6xl").
				Children(
					builder.Div().
						Class("flex flex-col md:flex-row items-center justify-between gap-4").
						Children(
							brand(site.Brand, 20, "w-8 h-8", builder.Span().Class("font-semibold")),
							builder.P().Class("text-sm text-muted-foreground").Text(site.Footer.Copyright).Build(),
							links.Build(),
						).Build(),
				).Build(),
		).Build()
}

// isExternal reports whether href leaves the site
func isExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}
