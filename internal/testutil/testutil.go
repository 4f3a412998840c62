// Package testutil provides helpers for building multi-line test inputs and
// asserting properties every transform output must hold.
//
// Typical usage:
//
//	in := testutil.JoinCRLF("", "   |A", "", "   |B", "")
//	out, err := text.TrimMargin(in, "|")
//	testutil.AssertNoCR(t, out)
package testutil

import "strings"

// JoinLF joins lines with "\n".
func JoinLF(lines ...string) string {
	return strings.Join(lines, "\n")
}

// JoinCRLF joins lines with "\r\n".
func JoinCRLF(lines ...string) string {
	return strings.Join(lines, "\r\n")
}

// JoinCR joins lines with a bare "\r", the classic Mac OS convention.
func JoinCR(lines ...string) string {
	return strings.Join(lines, "\r")
}
