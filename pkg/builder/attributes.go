package builder

// === Form Attributes ===

// Disabled sets the disabled attribute
func (b *ElementBuilder) Disabled(disabled bool) *ElementBuilder {
	if disabled {
		b.props["disabled"] = true
	}
	return b
}

// Name sets the name attribute
func (b *ElementBuilder) Name(name string) *ElementBuilder {
	b.props["name"] = name
	return b
}

// Type sets the type attribute
func (b *ElementBuilder) Type(t string) *ElementBuilder {
	b.props["type"] = t
	return b
}

// SpellCheck sets the spellcheck attribute
func (b *ElementBuilder) SpellCheck(on bool) *ElementBuilder {
	if on {
		b.props["spellcheck"] = "true"
	} else {
		b.props["spellcheck"] = "false"
	}
	return b
}

// Rows sets the rows attribute of a textarea
func (b *ElementBuilder) Rows(rows int) *ElementBuilder {
	b.props["rows"] = rows
	return b
}

// === Link & Meta Attributes ===

// Href sets the href attribute
func (b *ElementBuilder) Href(href string) *ElementBuilder {
	b.props["href"] = href
	return b
}

// Target sets the target attribute
func (b *ElementBuilder) Target(target string) *ElementBuilder {
	b.props["target"] = target
	return b
}

// Rel sets the rel attribute
func (b *ElementBuilder) Rel(rel string) *ElementBuilder {
	b.props["rel"] = rel
	return b
}

// Lang sets the lang attribute
func (b *ElementBuilder) Lang(lang string) *ElementBuilder {
	b.props["lang"] = lang
	return b
}

// Charset sets the charset attribute
func (b *ElementBuilder) Charset(charset string) *ElementBuilder {
	b.props["charset"] = charset
	return b
}

// Content sets the content attribute (meta tags)
func (b *ElementBuilder) Content(content string) *ElementBuilder {
	b.props["content"] = content
	return b
}

// === Event Attributes ===

// OnClick sets an inline click handler
func (b *ElementBuilder) OnClick(js string) *ElementBuilder {
	b.props["onclick"] = js
	return b
}

