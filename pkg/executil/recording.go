package executil

import (
	"context"
	"sync"
)

// RecordedPipe captures a command that was piped to.
type RecordedPipe struct {
	Cmd   string
	Input string
}

// RecordingPiper captures piped commands for testing.
// Set Err to control the returned error.
type RecordingPiper struct {
	mu    sync.Mutex
	Pipes []RecordedPipe
	Err   error
}

// Pipe records the command and returns the configured error.
func (p *RecordingPiper) Pipe(_ context.Context, cmd, input string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Pipes = append(p.Pipes, RecordedPipe{Cmd: cmd, Input: input})
	return p.Err
}

// Last returns the most recent pipe, if any.
func (p *RecordingPiper) Last() (RecordedPipe, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.Pipes) == 0 {
		return RecordedPipe{}, false
	}
	return p.Pipes[len(p.Pipes)-1], true
}
