package routes

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recera/codebuilder/internal/content"
	"github.com/recera/codebuilder/internal/editor"
	"github.com/recera/codebuilder/pkg/renderer/html"
	"github.com/recera/codebuilder/pkg/vdom"
)

func activeTab(t *testing.T, page *vdom.VNode) string {
	t.Helper()
	tabs := page.Find(vdom.ByID(LanguageTabsID))
	require.NotNil(t, tabs)

	var active []string
	for _, tab := range tabs.Kids {
		if tab.Props["data-state"] == "active" {
			active = append(active, tab.Props["data-value"].(string))
		}
	}
	require.Len(t, active, 1)
	return active[0]
}

func TestIndexPage_InitialEditor(t *testing.T) {
	page, err := IndexPage(content.Default(), editor.New())
	require.NoError(t, err)

	area := page.Find(vdom.ByID(CodeInputID))
	require.NotNil(t, area)
	assert.Equal(t, "textarea", area.Tag)
	assert.Equal(t, editor.Sample(editor.JavaScript), area.TextContent())
	assert.Equal(t, "javascript", activeTab(t, page))

	stats := editor.New().Stats()
	assert.Equal(t, "6", page.Find(vdom.ByID(LineCountID)).TextContent())
	assert.Equal(t, strconv.Itoa(stats.Chars), page.Find(vdom.ByID(CharCountID)).TextContent())
}

func TestIndexPage_ReflectsState(t *testing.T) {
	state := editor.New()
	require.NoError(t, state.SelectLanguage(editor.Python))
	state.Edit("print('hi')\nprint('bye')")

	page, err := IndexPage(content.Default(), state)
	require.NoError(t, err)

	assert.Equal(t, "python", activeTab(t, page))
	assert.Equal(t, "print('hi')\nprint('bye')", page.Find(vdom.ByID(CodeInputID)).TextContent())
	assert.Equal(t, "2", page.Find(vdom.ByID(LineCountID)).TextContent())
	assert.Equal(t, "24", page.Find(vdom.ByID(CharCountID)).TextContent())
}

func TestIndexPage_StaticSections(t *testing.T) {
	site := content.Default()
	page, err := IndexPage(site, editor.New())
	require.NoError(t, err)

	out, err := html.RenderToString(page)
	require.NoError(t, err)

	assert.Equal(t, 4, strings.Count(out, "project-card"))
	assert.Equal(t, 3, strings.Count(out, "faq-entry"))
	for _, tpl := range site.Projects.Templates {
		assert.Contains(t, out, tpl.Title)
		assert.Contains(t, out, `data-icon="`+tpl.Icon+`"`)
	}
	for _, f := range site.Features {
		assert.Contains(t, out, f.Title)
	}
	assert.Contains(t, out, `id="projects"`)
	assert.Contains(t, out, `id="docs"`)
	assert.Contains(t, out, "<strong>«Экспорт»</strong>")
	assert.Equal(t, 2, strings.Count(out, `data-action="export"`), "header and editor export buttons")
}

func TestPage_Document(t *testing.T) {
	doc, err := Page(content.Default(), editor.New(), DocumentOptions{})
	require.NoError(t, err)

	out, err := html.RenderToString(doc)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<html lang="ru"><head><meta charset="utf-8">`))
	assert.Contains(t, out, `<body data-language="javascript">`)
	assert.Contains(t, out, "URL.revokeObjectURL(url)")
	assert.NotContains(t, out, "WebSocket")

	samplesNode := doc.Find(vdom.ByID(SamplesScriptID))
	require.NotNil(t, samplesNode)
	require.Len(t, samplesNode.Kids, 1)

	var samples map[string]string
	require.NoError(t, json.Unmarshal([]byte(samplesNode.Kids[0].Text), &samples))
	assert.Equal(t, editor.Samples(), samples)
	assert.NotContains(t, samplesNode.Kids[0].Text, "<", "samples must not be able to close the script tag")
}

func TestPage_LiveReload(t *testing.T) {
	doc, err := Page(content.Default(), editor.New(), DocumentOptions{ReloadPath: "/__reload", Stylesheet: "/styles.css"})
	require.NoError(t, err)

	out, err := html.RenderToString(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "location.host + '/__reload'")
	assert.Contains(t, out, `<link href="/styles.css" rel="stylesheet">`)
}

func TestDocument_InlineStylesheet(t *testing.T) {
	doc, err := Page(content.Default(), editor.New(), DocumentOptions{Stylesheet: "/app.css"})
	require.NoError(t, err)

	out, err := html.RenderToString(doc)
	require.NoError(t, err)

	styleAt := strings.Index(out, "<style>")
	linkAt := strings.Index(out, `<link href="/app.css" rel="stylesheet">`)
	require.NotEqual(t, -1, styleAt)
	require.NotEqual(t, -1, linkAt)
	assert.Less(t, styleAt, linkAt)
	assert.Contains(t, out, "--primary:")
	assert.Contains(t, out, "#code-input {")
}

func TestSiteFooter_Links(t *testing.T) {
	site := content.Default()
	site.Footer.Links = []content.Link{
		{Icon: "Github", Href: "https://github.com/codebuilder"},
		{Icon: "Mail", Label: "Contact", Href: "#contact"},
	}

	out, err := html.RenderToString(siteFooter(site))
	require.NoError(t, err)

	assert.Contains(t, out, `href="https://github.com/codebuilder" rel="noopener noreferrer" target="_blank" title="Github"`)
	assert.Contains(t, out, `href="#contact" title="Contact">`)
	assert.Equal(t, 1, strings.Count(out, `target="_blank"`))
}

func TestEditorSection_TextareaRows(t *testing.T) {
	section := EditorSection(content.Default().Editor, editor.New())

	input := section.Find(vdom.ByID(CodeInputID))
	require.NotNil(t, input)
	assert.Equal(t, editorRows, input.Props["rows"])
}

func TestEditorScript_MatchesEditor(t *testing.T) {
	doc, err := Page(content.Default(), editor.New(), DocumentOptions{})
	require.NoError(t, err)
	out, err := html.RenderToString(doc)
	require.NoError(t, err)

	// The browser maps extensions the same way as Language.Extension
	for _, lang := range editor.Languages() {
		if lang == editor.JavaScript {
			continue
		}
		assert.Contains(t, out, fmt.Sprintf("if (language === '%s') return '%s';", lang, lang.Extension()))
	}
	assert.Contains(t, out, "return 'js';")
	assert.Contains(t, out, "a.download = '"+editor.FilenameBase+".' + extension(state.language);")

	// Counters follow LineCount and CharCount
	assert.Contains(t, out, "lines.textContent = String(state.buffer.split('\\n').length);")
	assert.Contains(t, out, "chars.textContent = String(state.buffer.length);")

	// Switching a tab resets the buffer to the sample
	assert.Contains(t, out, "state.buffer = samples[language];")
	assert.Contains(t, out, "area.value = state.buffer;")

	for _, id := range []string{SamplesScriptID, CodeInputID, LineCountID, CharCountID} {
		assert.Contains(t, out, "document.getElementById('"+id+"')")
	}
	assert.Contains(t, out, "#"+LanguageTabsID+" [role=\"tab\"]")
}
