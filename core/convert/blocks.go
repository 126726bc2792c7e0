package convert

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/htmlmd/core"
	"github.com/gaurav-prasanna/htmlmd/core/dom"
	"github.com/gaurav-prasanna/htmlmd/core/text"
)

func (c *Converter) renderHeading(n *html.Node, st renderState, level int) string {
	childSt := st
	childSt.inline = true
	childSt.inHeading = true
	inner := c.renderChildren(n, childSt)
	if st.inline {
		return inner
	}

	t := strings.TrimSpace(inner)
	if t == "" {
		return ""
	}
	if c.opts.HeadingStyle == core.HeadingUnderlined && level <= 2 {
		pad := '='
		if level == 2 {
			pad = '-'
		}
		return text.Underline(t, pad)
	}
	hashes := strings.Repeat("#", level)
	if c.opts.HeadingStyle == core.HeadingATXClosed {
		return hashes + " " + t + " " + hashes
	}
	return hashes + " " + t
}

func (c *Converter) renderParagraph(n *html.Node, st renderState) string {
	inner := c.renderChildren(n, st)
	if st.inline {
		return inner
	}
	if c.opts.Wrap {
		inner = text.Wrap(inner, c.opts.WrapWidth)
	}
	return inner
}

func (c *Converter) renderBlockquote(n *html.Node, st renderState) string {
	inner := c.renderChildren(n, st)
	if st.inline {
		return inner
	}
	t := strings.TrimSpace(inner)
	if t == "" {
		return ""
	}

	lines := strings.Split(t, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	quoted := strings.Join(lines, "\n")

	if cite := dom.Attr(n, "cite"); cite != "" {
		quoted += "\n\n— <" + cite + ">"
	}
	return quoted
}

// renderPre emits a fenced code block. The subtree renders in preserve
// mode, so its text keeps every space and newline and nothing inside
// is escaped or wrapped in Markdown markup.
func (c *Converter) renderPre(n *html.Node, st renderState) string {
	childSt := st
	childSt.preserve = true
	childSt.noEscape = true
	inner := c.renderChildren(n, childSt)
	if inner == "" {
		return ""
	}

	lang := c.opts.CodeLanguage
	if c.opts.CodeLanguageCallback != nil {
		if v := c.opts.CodeLanguageCallback(n); v != "" {
			lang = v
		}
	}
	return "```" + lang + "\n" + inner + "\n```"
}

func (c *Converter) renderTerm(n *html.Node, st renderState) string {
	inner := c.renderChildren(n, st)
	if st.inline {
		return inner
	}
	return strings.TrimSpace(inner)
}

func (c *Converter) renderDefinition(n *html.Node, st renderState) string {
	inner := c.renderChildren(n, st)
	if st.inline {
		return inner
	}
	t := strings.TrimSpace(inner)
	if t == "" {
		return ""
	}
	return ":   " + t
}

func (c *Converter) renderDetails(n *html.Node, st renderState) string {
	inner := c.renderChildren(n, st)
	if st.inline {
		return inner
	}
	t := strings.TrimSpace(inner)
	if t == "" {
		return ""
	}
	return "<details>\n" + t + "\n</details>"
}

func (c *Converter) renderSummary(n *html.Node, st renderState) string {
	inner := c.renderChildren(n, st)
	if st.inline {
		return inner
	}
	t := strings.TrimSpace(inner)
	if t == "" {
		return ""
	}
	return "<summary>" + t + "</summary>"
}

// attrList collects name="value" fragments for the attributes that are
// present and non-empty, in the order given.
func attrList(n *html.Node, names ...string) []string {
	var parts []string
	for _, name := range names {
		if v := dom.Attr(n, name); v != "" {
			parts = append(parts, name+`="`+v+`"`)
		}
	}
	return parts
}

func appendBoolAttrs(parts []string, n *html.Node, names ...string) []string {
	for _, name := range names {
		if dom.HasAttr(n, name) {
			parts = append(parts, name)
		}
	}
	return parts
}

func openTag(name string, attrs []string) string {
	if len(attrs) == 0 {
		return "<" + name + ">"
	}
	return "<" + name + " " + strings.Join(attrs, " ") + ">"
}

func selfClosingTag(name string, attrs []string) string {
	if len(attrs) == 0 {
		return "<" + name + " />"
	}
	return "<" + name + " " + strings.Join(attrs, " ") + " />"
}

// mediaSource resolves a media element's source: its own src attribute
// or the first nested source element's.
func mediaSource(n *html.Node) string {
	if src := dom.Attr(n, "src"); src != "" {
		return src
	}
	if source := dom.FindFirst(n, "source"); source != nil {
		return dom.Attr(source, "src")
	}
	return ""
}

func mediaTag(name string, attrs []string, fallback string) string {
	if fallback == "" {
		return selfClosingTag(name, attrs)
	}
	return openTag(name, attrs) + "\n" + fallback + "\n</" + name + ">"
}

// Audio, video and iframe have no Markdown form, so they survive as
// trimmed-down HTML keeping only the attributes that matter for
// playback.
func (c *Converter) renderAudio(n *html.Node, st renderState) string {
	var parts []string
	if src := mediaSource(n); src != "" {
		parts = append(parts, `src="`+src+`"`)
	}
	parts = appendBoolAttrs(parts, n, "controls", "autoplay", "loop", "muted")
	parts = append(parts, attrList(n, "preload")...)
	return mediaTag("audio", parts, strings.TrimSpace(c.renderChildren(n, st)))
}

func (c *Converter) renderVideo(n *html.Node, st renderState) string {
	var parts []string
	if src := mediaSource(n); src != "" {
		parts = append(parts, `src="`+src+`"`)
	}
	parts = append(parts, attrList(n, "width", "height", "poster")...)
	parts = appendBoolAttrs(parts, n, "controls", "autoplay", "loop", "muted")
	parts = append(parts, attrList(n, "preload")...)
	return mediaTag("video", parts, strings.TrimSpace(c.renderChildren(n, st)))
}

func (c *Converter) renderIframe(n *html.Node) string {
	attrs := attrList(n, "src", "width", "height", "title", "allow", "sandbox", "loading")
	return openTag("iframe", attrs) + "</iframe>"
}

func (c *Converter) renderForm(n *html.Node, st renderState) string {
	inner := strings.TrimSpace(c.renderChildren(n, st))
	if inner == "" {
		return ""
	}
	return openTag("form", attrList(n, "action", "method")) + "\n" + inner + "\n</form>"
}

func (c *Converter) renderFieldset(n *html.Node, st renderState) string {
	inner := strings.TrimSpace(c.renderChildren(n, st))
	if inner == "" {
		return ""
	}
	return "<fieldset>\n" + inner + "\n</fieldset>"
}

func (c *Converter) renderLegend(n *html.Node, st renderState) string {
	inner := strings.TrimSpace(c.renderChildren(n, st))
	if inner == "" {
		return ""
	}
	return "<legend>" + inner + "</legend>"
}

func (c *Converter) renderLabel(n *html.Node, st renderState) string {
	inner := strings.TrimSpace(c.renderChildren(n, st))
	if inner == "" {
		return ""
	}
	return openTag("label", attrList(n, "for")) + inner + "</label>"
}

// renderInput emits the control as HTML, except inside list items
// where checkbox inputs belong to the task-list marker and everything
// else is dropped.
func (c *Converter) renderInput(n *html.Node, st renderState) string {
	if st.inListItem {
		return ""
	}
	attrs := attrList(n, "type", "id", "name", "value", "placeholder", "accept")
	attrs = appendBoolAttrs(attrs, n, "required", "disabled", "readonly", "checked")
	return selfClosingTag("input", attrs)
}

func (c *Converter) renderTextarea(n *html.Node) string {
	attrs := attrList(n, "id", "name", "rows", "cols", "placeholder")
	attrs = appendBoolAttrs(attrs, n, "required", "disabled", "readonly")
	return openTag("textarea", attrs) + dom.TextContent(n) + "</textarea>"
}

// formChildren renders the element children of a select-like
// container, one per line.
func (c *Converter) formChildren(n *html.Node, st renderState) string {
	var lines []string
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		if out := c.renderNode(child, st); out != "" {
			lines = append(lines, out)
		}
	}
	return strings.Join(lines, "\n")
}

func (c *Converter) renderSelect(n *html.Node, st renderState) string {
	attrs := attrList(n, "id", "name")
	attrs = appendBoolAttrs(attrs, n, "multiple", "required", "disabled")
	inner := c.formChildren(n, st)
	if inner == "" {
		return openTag("select", attrs) + "</select>"
	}
	return openTag("select", attrs) + "\n" + inner + "\n</select>"
}

func (c *Converter) renderOption(n *html.Node, st renderState) string {
	attrs := attrList(n, "value")
	attrs = appendBoolAttrs(attrs, n, "selected", "disabled")
	return openTag("option", attrs) + strings.TrimSpace(c.renderChildren(n, st)) + "</option>"
}

func (c *Converter) renderOptgroup(n *html.Node, st renderState) string {
	attrs := attrList(n, "label")
	attrs = appendBoolAttrs(attrs, n, "disabled")
	inner := c.formChildren(n, st)
	if inner == "" {
		return openTag("optgroup", attrs) + "</optgroup>"
	}
	return openTag("optgroup", attrs) + "\n" + inner + "\n</optgroup>"
}

func (c *Converter) renderButton(n *html.Node, st renderState) string {
	attrs := attrList(n, "type", "id", "name")
	attrs = appendBoolAttrs(attrs, n, "disabled")
	return openTag("button", attrs) + strings.TrimSpace(c.renderChildren(n, st)) + "</button>"
}

func (c *Converter) renderProgress(n *html.Node, st renderState) string {
	attrs := attrList(n, "value", "max")
	return openTag("progress", attrs) + strings.TrimSpace(c.renderChildren(n, st)) + "</progress>"
}

func (c *Converter) renderMeter(n *html.Node, st renderState) string {
	attrs := attrList(n, "value", "min", "max", "low", "high", "optimum")
	return openTag("meter", attrs) + strings.TrimSpace(c.renderChildren(n, st)) + "</meter>"
}

func (c *Converter) renderOutput(n *html.Node, st renderState) string {
	attrs := attrList(n, "for", "id", "name")
	return openTag("output", attrs) + strings.TrimSpace(c.renderChildren(n, st)) + "</output>"
}

func (c *Converter) renderDatalist(n *html.Node, st renderState) string {
	attrs := attrList(n, "id")
	inner := c.formChildren(n, st)
	if inner == "" {
		return openTag("datalist", attrs) + "</datalist>"
	}
	return openTag("datalist", attrs) + "\n" + inner + "\n</datalist>"
}
