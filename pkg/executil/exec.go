// Package executil provides shell execution utilities.
package executil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

const maxStderrLen = 500

// limitedWriter caps writes to a bytes.Buffer at a maximum byte count.
// Bytes beyond the limit are silently discarded.
type limitedWriter struct {
	buf *bytes.Buffer
	n   int64
	max int64
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if w.n >= w.max {
		return len(p), nil
	}
	remaining := w.max - w.n
	origLen := len(p)
	if int64(origLen) > remaining {
		p = p[:remaining]
	}
	n, err := w.buf.Write(p)
	w.n += int64(n)
	if err != nil {
		return n, err
	}
	return origLen, nil
}

// Piper runs a shell command with the given text on stdin.
type Piper interface {
	Pipe(ctx context.Context, cmd, input string) error
}

// ShellPiper runs commands through "sh -c".
type ShellPiper struct{}

// Pipe executes cmd and writes input to its stdin. On failure, stderr is
// returned as the error message, capped at 500 bytes so large or
// ANSI-polluted output cannot corrupt the status line. The original
// *exec.ExitError is preserved via wrapping.
func (ShellPiper) Pipe(ctx context.Context, cmd, input string) error {
	if strings.TrimSpace(cmd) == "" {
		return fmt.Errorf("no command configured")
	}

	c := exec.CommandContext(ctx, "sh", "-c", cmd)
	c.Stdin = strings.NewReader(input)

	var buf bytes.Buffer
	c.Stdout = io.Discard
	c.Stderr = &limitedWriter{buf: &buf, max: maxStderrLen}
	if err := c.Run(); err != nil {
		msg := strings.TrimSpace(buf.String())
		if msg != "" {
			return fmt.Errorf("%s: %w", msg, err)
		}
		return err
	}
	return nil
}
