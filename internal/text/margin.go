package text

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultMarginPrefix is the margin marker used when none is configured.
const DefaultMarginPrefix = "|"

// ErrInvalidMarginPrefix is returned when the margin prefix is empty or
// whitespace-only.
var ErrInvalidMarginPrefix = errors.New("margin prefix must be non-blank")

// TrimMargin strips leading whitespace followed by marginPrefix from every
// line that has it. Lines without the prefix are left untouched. The first
// and last lines are dropped when blank, and the result is joined with "\n".
//
// It is ReplaceIndentByMargin with an empty replacement indent.
func TrimMargin(text, marginPrefix string) (string, error) {
	return ReplaceIndentByMargin(text, "", marginPrefix)
}

// ReplaceIndentByMargin replaces leading whitespace followed by marginPrefix
// with newIndent on every line that has it. Other lines pass through as they
// are, including their leading whitespace.
//
// For example, with the default "|" prefix and newIndent "> ":
//
//	"\n    |x\n    |y\n    z\n" -> "> x\n> y\n    z"
func ReplaceIndentByMargin(text, newIndent, marginPrefix string) (string, error) {
	if isBlank(marginPrefix) {
		return "", fmt.Errorf("%w: got %q", ErrInvalidMarginPrefix, marginPrefix)
	}

	lines := splitLines(text)
	last := len(lines) - 1
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		if (i == 0 || i == last) && isBlank(line) {
			continue
		}

		idx := firstNonSpace(line)
		if idx >= 0 && strings.HasPrefix(line[idx:], marginPrefix) {
			out = append(out, newIndent+line[idx+len(marginPrefix):])
			continue
		}
		out = append(out, line)
	}

	return joinLines(out), nil
}
