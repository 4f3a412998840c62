package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReadInput(t *testing.T) {
	p := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(p, []byte("  |file\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name  string
		path  string
		stdin string
		want  string
	}{
		{"empty path reads stdin", "", "from stdin\n", "from stdin\n"},
		{"dash reads stdin", "-", "  |x", "  |x"},
		{"file is read verbatim", p, "ignored", "  |file\n"},
		{"empty stdin", "-", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readInput(context.Background(), tt.path, strings.NewReader(tt.stdin))
			if err != nil {
				t.Fatalf("readInput error = %v", err)
			}

			if got != tt.want {
				t.Errorf("readInput(%q) = %q; want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestReadInput_Errors(t *testing.T) {
	if _, err := readInput(context.Background(), "-", nil); err == nil {
		t.Error("readInput with nil stdin = nil error; want error")
	}

	if _, err := readInput(context.Background(), "-", failingReader{}); err == nil {
		t.Error("readInput with failing stdin = nil error; want error")
	}

	if _, err := readInput(context.Background(), filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Error("readInput with missing file = nil error; want error")
	}
}

func TestReadInput_CancelUnblocksStdin(t *testing.T) {
	// The pipe writer is never written to or closed, so ReadAll blocks.
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := readInput(ctx, "-", pr)
		errc <- err
	}()

	cancel()

	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("readInput error = %v; want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("readInput still blocked after cancel")
	}
}

func TestCLI_CancelledContextStopsStdinWait(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetIn(pr)
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.ExecuteContext(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("ExecuteContext error = %v; want context.Canceled", err)
	}

	if stdout.Len() != 0 {
		t.Errorf("stdout = %q; want empty", stdout.String())
	}
}

func TestWriteOutput_NoTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	if err := writeOutput(&buf, "a\nb"); err != nil {
		t.Fatalf("writeOutput error = %v", err)
	}

	if buf.String() != "a\nb" {
		t.Errorf("written = %q; want %q", buf.String(), "a\nb")
	}
}
