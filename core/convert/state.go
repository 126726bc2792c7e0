package convert

// renderState carries traversal context down the tree. It is passed by
// value, so each subtree sees an immutable view of its ancestry.
type renderState struct {
	// inline renders block elements as bare text, without their block
	// structure. Set globally by ConvertAsInline and locally for
	// heading and table-cell content.
	inline bool

	inHeading  bool
	inCell     bool
	inListItem bool

	// preserve marks a whitespace-preserving subtree (pre).
	preserve bool
	// noEscape marks code-like subtrees (pre, code, kbd, samp) whose
	// text is never Markdown-escaped and whose inline markup is
	// passed through unwrapped.
	noEscape bool

	// listDepth counts the list elements enclosing the current node.
	listDepth int
	// ulDepth counts only unordered lists, for bullet cycling.
	ulDepth int
}
