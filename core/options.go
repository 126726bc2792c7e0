package core

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"
)

// Validation errors returned by Options.Validate. Callers can match them
// with errors.Is.
var (
	ErrInvalidOption      = errors.New("invalid option")
	ErrConflictingOptions = errors.New("conflicting options")
)

// WhitespaceMode controls how text-node whitespace is treated.
type WhitespaceMode string

const (
	// WhitespaceNormalized collapses runs of whitespace and resolves
	// inter-node spacing from the surrounding element context.
	WhitespaceNormalized WhitespaceMode = "normalized"
	// WhitespaceStrict passes text through byte-for-byte.
	WhitespaceStrict WhitespaceMode = "strict"
)

// ListIndentType selects the indentation character for nested lists.
type ListIndentType string

const (
	IndentSpaces ListIndentType = "spaces"
	IndentTabs   ListIndentType = "tabs"
)

// HeadingStyle selects how headings are written.
type HeadingStyle string

const (
	// HeadingUnderlined writes setext headings for h1/h2 and falls back
	// to ATX for deeper levels.
	HeadingUnderlined HeadingStyle = "underlined"
	HeadingATX        HeadingStyle = "atx"
	HeadingATXClosed  HeadingStyle = "atx_closed"
)

// NewlineStyle selects how <br> is rendered.
type NewlineStyle string

const (
	// NewlineSpaces renders <br> as two trailing spaces before the newline.
	NewlineSpaces NewlineStyle = "spaces"
	// NewlineBackslash renders <br> as a trailing backslash before the newline.
	NewlineBackslash NewlineStyle = "backslash"
)

// HighlightStyle selects how <mark> is rendered.
type HighlightStyle string

const (
	HighlightDoubleEqual HighlightStyle = "double-equal"
	HighlightHTML        HighlightStyle = "html"
	HighlightBold        HighlightStyle = "bold"
	HighlightNone        HighlightStyle = "none"
)

// CodeLanguageCallback infers a fence language from a <pre> node, for
// documents that carry the language in class names or data attributes.
type CodeLanguageCallback func(n *html.Node) string

// Options configures a conversion. The zero value is not valid; start
// from DefaultOptions.
type Options struct {
	// HeadingStyle selects setext or ATX headings.
	HeadingStyle HeadingStyle

	// ListIndentType selects spaces or tabs for nested list indentation.
	ListIndentType ListIndentType
	// ListIndentWidth is the number of spaces per nesting level. Ignored
	// for tab indentation.
	ListIndentWidth int
	// Bullets holds the bullet characters cycled through by nesting
	// level of unordered lists.
	Bullets string

	// StrongEmSymbol is the delimiter character for strong and emphasis,
	// "*" or "_".
	StrongEmSymbol string
	// EscapeAsterisks backslash-escapes "*" in text.
	EscapeAsterisks bool
	// EscapeUnderscores backslash-escapes "_" in text.
	EscapeUnderscores bool
	// EscapeMisc backslash-escapes the remaining Markdown-significant
	// punctuation in text.
	EscapeMisc bool

	// CodeLanguage is the default language for fenced code blocks.
	CodeLanguage string
	// CodeLanguageCallback, when set, overrides CodeLanguage per <pre>.
	CodeLanguageCallback CodeLanguageCallback

	// Autolinks renders <a> as <url> when the link text equals the target.
	Autolinks bool
	// DefaultTitle uses the link target as title when none is present.
	DefaultTitle bool
	// BrInTables keeps line breaks inside table cells instead of
	// flattening them to spaces.
	BrInTables bool
	// HighlightStyle selects the rendering for <mark>.
	HighlightStyle HighlightStyle
	// ExtractMetadata prepends document metadata as YAML front matter.
	ExtractMetadata bool

	// WhitespaceMode selects normalized or strict whitespace handling.
	WhitespaceMode WhitespaceMode
	// StripNewlines replaces newlines in the source HTML with spaces
	// before processing.
	StripNewlines bool
	// Wrap re-wraps paragraph text at WrapWidth columns.
	Wrap bool
	// WrapWidth is the target line width when Wrap is set.
	WrapWidth int

	// ConvertAsInline renders block elements without their block
	// structure, as if the document were a single line of text.
	ConvertAsInline bool

	// SubSymbol and SupSymbol surround <sub> and <sup> content.
	SubSymbol string
	SupSymbol string

	// NewlineStyle selects the <br> rendering.
	NewlineStyle NewlineStyle

	// KeepInlineImagesIn lists parent tags in which <img> stays an
	// inline image even where images would normally be reduced to alt
	// text.
	KeepInlineImagesIn []string

	// StripTags lists tags to drop entirely (rendered as their text
	// content only). Mutually exclusive with ConvertTags.
	StripTags []string
	// ConvertTags, when set, limits conversion to the listed tags.
	ConvertTags []string
}

// DefaultOptions returns the default conversion options.
func DefaultOptions() Options {
	return Options{
		HeadingStyle:      HeadingUnderlined,
		ListIndentType:    IndentSpaces,
		ListIndentWidth:   4,
		Bullets:           "*+-",
		StrongEmSymbol:    "*",
		EscapeAsterisks:   true,
		EscapeUnderscores: true,
		EscapeMisc:        true,
		Autolinks:         true,
		HighlightStyle:    HighlightDoubleEqual,
		ExtractMetadata:   true,
		WhitespaceMode:    WhitespaceNormalized,
		WrapWidth:         80,
		NewlineStyle:      NewlineSpaces,
	}
}

// Validate checks the options and returns ErrInvalidOption or
// ErrConflictingOptions (wrapped with detail) on the first problem found.
func (o Options) Validate() error {
	switch o.WhitespaceMode {
	case WhitespaceNormalized, WhitespaceStrict:
	default:
		return fmt.Errorf("%w: unknown whitespace mode %q", ErrInvalidOption, o.WhitespaceMode)
	}
	switch o.ListIndentType {
	case IndentSpaces, IndentTabs:
	default:
		return fmt.Errorf("%w: unknown list indent type %q", ErrInvalidOption, o.ListIndentType)
	}
	switch o.HeadingStyle {
	case HeadingUnderlined, HeadingATX, HeadingATXClosed:
	default:
		return fmt.Errorf("%w: unknown heading style %q", ErrInvalidOption, o.HeadingStyle)
	}
	switch o.NewlineStyle {
	case NewlineSpaces, NewlineBackslash:
	default:
		return fmt.Errorf("%w: unknown newline style %q", ErrInvalidOption, o.NewlineStyle)
	}
	switch o.HighlightStyle {
	case HighlightDoubleEqual, HighlightHTML, HighlightBold, HighlightNone:
	default:
		return fmt.Errorf("%w: unknown highlight style %q", ErrInvalidOption, o.HighlightStyle)
	}
	if o.StrongEmSymbol != "*" && o.StrongEmSymbol != "_" {
		return fmt.Errorf("%w: strong/em symbol must be %q or %q, got %q", ErrInvalidOption, "*", "_", o.StrongEmSymbol)
	}
	if o.ListIndentWidth < 0 {
		return fmt.Errorf("%w: list indent width must be non-negative, got %d", ErrInvalidOption, o.ListIndentWidth)
	}
	if o.Bullets == "" {
		return fmt.Errorf("%w: bullets must not be empty", ErrInvalidOption)
	}
	if o.Wrap && o.WrapWidth <= 0 {
		return fmt.Errorf("%w: wrap width must be positive, got %d", ErrInvalidOption, o.WrapWidth)
	}
	if len(o.StripTags) > 0 && len(o.ConvertTags) > 0 {
		return fmt.Errorf("%w: strip tags and convert tags cannot both be set", ErrConflictingOptions)
	}
	return nil
}
