package executil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellPiper_WritesStdin(t *testing.T) {
	out := filepath.Join(t.TempDir(), "clip.txt")

	err := ShellPiper{}.Pipe(context.Background(), "cat > "+out, "Ashcroft v. Iqbal, 556 U.S. 662 (2009)")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Ashcroft v. Iqbal, 556 U.S. 662 (2009)", string(data))
}

func TestShellPiper_StderrCappedAtMaxLen(t *testing.T) {
	// Write twice the cap to stderr; only the first maxStderrLen bytes should appear in the error.
	longStderr := strings.Repeat("A", maxStderrLen*2)
	cmd := fmt.Sprintf("printf '%%s' '%s' >&2; exit 1", longStderr)

	err := ShellPiper{}.Pipe(context.Background(), cmd, "")
	require.Error(t, err)

	errMsg := err.Error()
	assert.LessOrEqual(t, len(errMsg), maxStderrLen+20, "error message should be capped")
	assert.Equal(t, strings.Repeat("A", maxStderrLen), errMsg[:maxStderrLen])
}

func TestShellPiper_PreservesExitError(t *testing.T) {
	err := ShellPiper{}.Pipe(context.Background(), "exit 2", "x")
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.ExitCode())
}

func TestShellPiper_EmptyCommand(t *testing.T) {
	err := ShellPiper{}.Pipe(context.Background(), "  ", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command configured")
}

func TestRecordingPiper(t *testing.T) {
	p := &RecordingPiper{}

	_, ok := p.Last()
	assert.False(t, ok)

	require.NoError(t, p.Pipe(context.Background(), "pbcopy", "one"))
	p.Err = errors.New("boom")
	require.Error(t, p.Pipe(context.Background(), "pbcopy", "two"))

	last, ok := p.Last()
	require.True(t, ok)
	assert.Equal(t, RecordedPipe{Cmd: "pbcopy", Input: "two"}, last)
	assert.Len(t, p.Pipes, 2)
}
