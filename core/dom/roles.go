// Package dom classifies element names into rendering roles and
// provides small read-only helpers over the parsed HTML node tree.
package dom

// blockTags are the elements rendered with spacing around them.
var blockTags = map[string]bool{
	"address":    true,
	"article":    true,
	"aside":      true,
	"blockquote": true,
	"canvas":     true,
	"datalist":   true,
	"dd":         true,
	"details":    true,
	"div":        true,
	"dl":         true,
	"dt":         true,
	"fieldset":   true,
	"figcaption": true,
	"figure":     true,
	"footer":     true,
	"form":       true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"header":     true,
	"hr":         true,
	"legend":     true,
	"li":         true,
	"main":       true,
	"nav":        true,
	"noscript":   true,
	"ol":         true,
	"option":     true,
	"p":          true,
	"pre":        true,
	"section":    true,
	"summary":    true,
	"table":      true,
	"tfoot":      true,
	"ul":         true,
}

// inlineTags are the elements that flow with surrounding text and never
// introduce spacing of their own.
var inlineTags = map[string]bool{
	"a":        true,
	"abbr":     true,
	"acronym":  true,
	"audio":    true,
	"b":        true,
	"bdi":      true,
	"bdo":      true,
	"big":      true,
	"br":       true,
	"button":   true,
	"cite":     true,
	"code":     true,
	"data":     true,
	"del":      true,
	"dfn":      true,
	"dialog":   true,
	"em":       true,
	"i":        true,
	"iframe":   true,
	"img":      true,
	"input":    true,
	"ins":      true,
	"kbd":      true,
	"label":    true,
	"map":      true,
	"mark":     true,
	"math":     true,
	"menu":     true,
	"meter":    true,
	"object":   true,
	"output":   true,
	"progress": true,
	"q":        true,
	"rb":       true,
	"rp":       true,
	"rt":       true,
	"rtc":      true,
	"ruby":     true,
	"s":        true,
	"samp":     true,
	"script":   true,
	"select":   true,
	"small":    true,
	"span":     true,
	"strike":   true,
	"strong":   true,
	"style":    true,
	"sub":      true,
	"sup":      true,
	"svg":      true,
	"textarea": true,
	"time":     true,
	"tt":       true,
	"u":        true,
	"var":      true,
	"video":    true,
	"wbr":      true,
}

// preserveTags are the elements whose text is never collapsed.
var preserveTags = map[string]bool{
	"pre":    true,
	"script": true,
	"style":  true,
}

// IsBlock reports whether the tag name is a block-level element.
func IsBlock(name string) bool { return blockTags[name] }

// IsInline reports whether the tag name is an inline element.
func IsInline(name string) bool { return inlineTags[name] }

// IsPreserve reports whether the tag preserves whitespace exactly.
func IsPreserve(name string) bool { return preserveTags[name] }

// IsHeading reports whether the tag name is h1 through h6.
func IsHeading(name string) bool {
	return len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6'
}

// HeadingLevel returns the level of an h1-h6 tag name, or 0.
func HeadingLevel(name string) int {
	if !IsHeading(name) {
		return 0
	}
	return int(name[1] - '0')
}
