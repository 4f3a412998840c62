package text

// DefaultPrependIndent is the indent PrependIndent callers use by default.
const DefaultPrependIndent = "    "

// TrimIndent removes the indent shared by all non-blank lines and drops the
// first and last lines when they are blank.
//
// Blank lines do not take part in finding the shared indent.
func TrimIndent(text string) string {
	lines := dedentLines(splitLines(text))
	return joinLines(dropEdgeBlankLines(lines))
}

// ReplaceIndent removes the shared indent like TrimIndent and then prepends
// newIndent to every non-blank line.
func ReplaceIndent(text, newIndent string) string {
	lines := prefixNonBlank(dedentLines(splitLines(text)), newIndent)
	return joinLines(dropEdgeBlankLines(lines))
}

// PrependIndent prepends indent to every non-blank line without dedenting
// first. Edge blank lines are dropped; interior blank lines keep their
// content and do not receive the indent.
func PrependIndent(text, indent string) string {
	lines := dropEdgeBlankLines(splitLines(text))
	return joinLines(prefixNonBlank(lines, indent))
}
