package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// splitLines splits s at every line boundary and discards the separators.
// "\r\n" counts as a single boundary. A trailing boundary does not produce
// an extra empty line, so "a\n" yields ["a"] and "" yields no lines at all.
func splitLines(s string) []string {
	var lines []string

	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}

		lines = append(lines, s[start:i])
		i += size
		if r == '\r' && i < len(s) && s[i] == '\n' {
			i++
		}
		start = i
	}

	if start < len(s) {
		lines = append(lines, s[start:])
	}

	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}

// isSpace extends unicode.IsSpace with the information separators
// U+001C..U+001F, which are whitespace in the other common definitions.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// isBlank reports whether line is empty or consists only of whitespace.
func isBlank(line string) bool {
	return strings.TrimFunc(line, isSpace) == ""
}

// firstNonSpace returns the byte index of the first non-whitespace rune in
// line, or -1 if there is none.
func firstNonSpace(line string) int {
	return strings.IndexFunc(line, func(r rune) bool {
		return !isSpace(r)
	})
}

// dropEdgeBlankLines removes the first and the last line when they are blank.
// Interior lines are kept whatever their content.
func dropEdgeBlankLines(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}

	last := len(lines) - 1
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if (i == 0 || i == last) && isBlank(line) {
			continue
		}
		out = append(out, line)
	}

	return out
}

func isIndentChar(r rune) bool {
	return r == ' ' || r == '\t'
}

// leadingIndent returns the run of spaces and tabs that starts line.
func leadingIndent(line string) string {
	content := strings.TrimLeftFunc(line, isIndentChar)
	return line[:len(line)-len(content)]
}

// commonIndent returns the longest run of spaces and tabs that prefixes every
// non-blank line. Tabs and spaces are compared as distinct characters.
func commonIndent(lines []string) string {
	var (
		common string
		found  bool
	)

	for _, line := range lines {
		if isBlank(line) {
			continue
		}

		indent := leadingIndent(line)
		switch {
		case !found:
			common = indent
			found = true
		case strings.HasPrefix(indent, common):
			// Deeper or equal; the current winner stands.
		case strings.HasPrefix(common, indent):
			common = indent
		default:
			n := min(len(common), len(indent))
			i := 0
			for i < n && common[i] == indent[i] {
				i++
			}
			common = common[:i]
		}

		if common == "" {
			break
		}
	}

	return common
}

// dedentLines strips the common indent from every non-blank line and all
// leading spaces and tabs from blank ones. lines is modified in place.
func dedentLines(lines []string) []string {
	indent := commonIndent(lines)
	for i, line := range lines {
		if isBlank(line) {
			lines[i] = strings.TrimLeftFunc(line, isIndentChar)
			continue
		}
		lines[i] = strings.TrimPrefix(line, indent)
	}

	return lines
}

// prefixNonBlank prepends prefix to every non-blank line. lines is modified in
// place.
func prefixNonBlank(lines []string, prefix string) []string {
	if prefix == "" {
		return lines
	}
	for i, line := range lines {
		if !isBlank(line) {
			lines[i] = prefix + line
		}
	}

	return lines
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
