package testutil

import (
	"strings"
	"testing"
)

// AssertNoCR fails the test if s contains a carriage return.
func AssertNoCR(tb testing.TB, s string) {
	tb.Helper()

	if i := strings.IndexByte(s, '\r'); i >= 0 {
		tb.Fatalf("output contains \\r at byte %d: %q", i, s)
	}
}

// AssertNoEdgeBlank fails the test if splitting s on "\n" yields a blank first
// or last line. An empty s passes.
func AssertNoEdgeBlank(tb testing.TB, s string) {
	tb.Helper()

	if s == "" {
		return
	}

	lines := strings.Split(s, "\n")
	if strings.TrimSpace(lines[0]) == "" {
		tb.Fatalf("first line is blank: %q", s)
	}

	if strings.TrimSpace(lines[len(lines)-1]) == "" {
		tb.Fatalf("last line is blank: %q", s)
	}
}
