package cmd

import (
	"github.com/gaurav-prasanna/htmlmd/core"
)

// Conversion option flags, shared by the convert and crawl commands.
// Defaults mirror core.DefaultOptions.
var (
	flagHeadingStyle      string
	flagBullets           string
	flagIndentType        string
	flagIndentWidth       int
	flagStrongEmSymbol    string
	flagWhitespaceMode    string
	flagStripNewlines     bool
	flagWrap              bool
	flagWrapWidth         int
	flagEscapeAsterisks   bool
	flagEscapeUnderscores bool
	flagEscapeMisc        bool
	flagCodeLanguage      string
	flagAutolinks         bool
	flagDefaultTitle      bool
	flagBrInTables        bool
	flagHighlightStyle    string
	flagMetadata          bool
	flagInline            bool
	flagSubSymbol         string
	flagSupSymbol         string
	flagNewlineStyle      string
	flagKeepImagesIn      []string
	flagStripTags         []string
	flagConvertTags       []string
)

func init() {
	pf := rootCmd.PersistentFlags()

	pf.StringVar(&flagHeadingStyle, "heading-style", string(core.HeadingUnderlined), "heading style: underlined, atx, or atx_closed")
	pf.StringVar(&flagBullets, "bullets", "*+-", "bullet characters cycled by list nesting depth")
	pf.StringVar(&flagIndentType, "list-indent-type", string(core.IndentSpaces), "list indentation: spaces or tabs")
	pf.IntVar(&flagIndentWidth, "list-indent-width", 4, "spaces per list nesting level")
	pf.StringVar(&flagStrongEmSymbol, "strong-em-symbol", "*", "delimiter for strong and emphasis: * or _")
	pf.StringVar(&flagWhitespaceMode, "whitespace-mode", string(core.WhitespaceNormalized), "whitespace handling: normalized or strict")
	pf.BoolVar(&flagStripNewlines, "strip-newlines", false, "replace newlines in the source with spaces before converting")
	pf.BoolVar(&flagWrap, "wrap", false, "re-wrap paragraph text")
	pf.IntVar(&flagWrapWidth, "wrap-width", 80, "target line width when wrapping")
	pf.BoolVar(&flagEscapeAsterisks, "escape-asterisks", true, "backslash-escape * in text")
	pf.BoolVar(&flagEscapeUnderscores, "escape-underscores", true, "backslash-escape _ in text")
	pf.BoolVar(&flagEscapeMisc, "escape-misc", true, "backslash-escape other Markdown punctuation in text")
	pf.StringVar(&flagCodeLanguage, "code-language", "", "default info string for fenced code blocks")
	pf.BoolVar(&flagAutolinks, "autolinks", true, "render links whose text equals the target as <url>")
	pf.BoolVar(&flagDefaultTitle, "default-title", false, "use the link target as title when none is present")
	pf.BoolVar(&flagBrInTables, "br-in-tables", false, "keep <br> inside table cells instead of flattening")
	pf.StringVar(&flagHighlightStyle, "highlight-style", string(core.HighlightDoubleEqual), "rendering for <mark>: double-equal, html, bold, or none")
	pf.BoolVar(&flagMetadata, "metadata", true, "prepend document metadata as YAML front matter (Markdown output)")
	pf.BoolVar(&flagInline, "inline", false, "render block elements without their block structure")
	pf.StringVar(&flagSubSymbol, "sub-symbol", "", "wrapper for <sub> content")
	pf.StringVar(&flagSupSymbol, "sup-symbol", "", "wrapper for <sup> content")
	pf.StringVar(&flagNewlineStyle, "newline-style", string(core.NewlineSpaces), "rendering for <br>: spaces or backslash")
	pf.StringSliceVar(&flagKeepImagesIn, "keep-inline-images-in", nil, "tags that keep inline images instead of alt text")
	pf.StringSliceVar(&flagStripTags, "strip-tags", nil, "tags whose markup is dropped (children still render)")
	pf.StringSliceVar(&flagConvertTags, "convert-tags", nil, "when set, only these tags get Markdown markup")
}

// buildOptions maps the conversion flags onto core.Options. Validation
// happens in convert.New, so invalid values fail before any input is
// read.
func buildOptions() core.Options {
	opts := core.DefaultOptions()
	opts.HeadingStyle = core.HeadingStyle(flagHeadingStyle)
	opts.Bullets = flagBullets
	opts.ListIndentType = core.ListIndentType(flagIndentType)
	opts.ListIndentWidth = flagIndentWidth
	opts.StrongEmSymbol = flagStrongEmSymbol
	opts.WhitespaceMode = core.WhitespaceMode(flagWhitespaceMode)
	opts.StripNewlines = flagStripNewlines
	opts.Wrap = flagWrap
	opts.WrapWidth = flagWrapWidth
	opts.EscapeAsterisks = flagEscapeAsterisks
	opts.EscapeUnderscores = flagEscapeUnderscores
	opts.EscapeMisc = flagEscapeMisc
	opts.CodeLanguage = flagCodeLanguage
	opts.Autolinks = flagAutolinks
	opts.DefaultTitle = flagDefaultTitle
	opts.BrInTables = flagBrInTables
	opts.HighlightStyle = core.HighlightStyle(flagHighlightStyle)
	opts.ExtractMetadata = flagMetadata
	opts.ConvertAsInline = flagInline
	opts.SubSymbol = flagSubSymbol
	opts.SupSymbol = flagSupSymbol
	opts.NewlineStyle = core.NewlineStyle(flagNewlineStyle)
	opts.KeepInlineImagesIn = flagKeepImagesIn
	opts.StripTags = flagStripTags
	opts.ConvertTags = flagConvertTags
	return opts
}
