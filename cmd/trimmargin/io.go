package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

// readInput returns the whole content of path, or of stdin when path is
// empty or "-". A stdin read that is still blocked when ctx is done returns
// ctx.Err().
func readInput(ctx context.Context, path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		if stdin == nil {
			return "", fmt.Errorf("stdin reader is nil")
		}
		return readAllContext(ctx, stdin)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input file: %w", err)
	}
	return string(b), nil
}

type readResult struct {
	data []byte
	err  error
}

// readAllContext reads r to EOF in a separate goroutine so a cancelled ctx
// does not wait on a reader that never returns. The goroutine is abandoned in
// that case; the process is about to exit.
func readAllContext(ctx context.Context, r io.Reader) (string, error) {
	done := make(chan readResult, 1)
	go func() {
		b, err := io.ReadAll(r)
		done <- readResult{data: b, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("read stdin: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return "", fmt.Errorf("read stdin: %w", res.err)
		}
		return string(res.data), nil
	}
}

// writeOutput writes s verbatim; no trailing newline is added.
func writeOutput(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
