package routes

import (
	"encoding/json"
	"fmt"

	"github.com/recera/codebuilder/internal/content"
	"github.com/recera/codebuilder/internal/editor"
	"github.com/recera/codebuilder/pkg/builder"
	"github.com/recera/codebuilder/pkg/vdom"
)

// SamplesScriptID is the id of the JSON block carrying the code samples
const SamplesScriptID = "code-samples"

// DocumentOptions tweak the surrounding HTML document
type DocumentOptions struct {
	// ReloadPath enables the live reload client when set, e.g. "/__reload"
	ReloadPath string
	// Stylesheet is linked from the head when set, after the inline styles
	Stylesheet string
}

// Document wraps body in a complete HTML document with the editor client
// script and the sample table it reads.
func Document(site *content.Site, state *editor.State, body *vdom.VNode, opts DocumentOptions) (*vdom.VNode, error) {
	samples, err := json.Marshal(editor.Samples())
	if err != nil {
		return nil, fmt.Errorf("failed to encode samples: %w", err)
	}

	head := builder.Head().Children(
		builder.Meta().Charset("utf-8").Build(),
		builder.Meta().Name("viewport").Content("width=device-width, initial-scale=1").Build(),
		builder.Title().Text(site.Title).Build(),
	)
	if sheet := Stylesheet(); sheet.Len() > 0 {
		head.Children(builder.Style().Raw(sheet.String()).Build())
	}
	if opts.Stylesheet != "" {
		head.Children(builder.Link().Rel("stylesheet").Href(opts.Stylesheet).Build())
	}

	bodyEl := builder.Body().
		Data("language", state.Language().String()).
		Children(
			body,
			builder.Script().
				Type("application/json").
				ID(SamplesScriptID).
				Raw(string(samples)).
				Build(),
			builder.Script().Raw(editorScript).Build(),
		)
	if opts.ReloadPath != "" {
		bodyEl.Children(builder.Script().Raw(fmt.Sprintf(reloadScript, opts.ReloadPath)).Build())
	}

	lang := site.Lang
	if lang == "" {
		lang = "en"
	}
	return builder.Html().Lang(lang).Children(head.Build(), bodyEl.Build()).Build(), nil
}

// Page renders the landing page for state as a full document
func Page(site *content.Site, state *editor.State, opts DocumentOptions) (*vdom.VNode, error) {
	body, err := IndexPage(site, state)
	if err != nil {
		return nil, err
	}
	return Document(site, state, body, opts)
}
