// Package text implements margin and indent normalization for multi-line
// string literals: TrimMargin, ReplaceIndentByMargin, TrimIndent,
// ReplaceIndent and PrependIndent.
//
// All functions split their input on any line-ending convention and join the
// result with "\n", so output never contains "\r". The first and last lines are
// removed when blank; interior blank lines are always preserved.
//
// The functions are pure and safe for concurrent use.
package text
