package printer

import (
	"bytes"
	"io"
	"sync"
)

// Deferred holds printer output while the viewer owns the terminal. Flush
// writes it once the viewer has exited. Safe for concurrent use.
type Deferred struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewDeferred returns a printer that buffers into a Deferred.
func NewDeferred() (*Printer, *Deferred) {
	d := &Deferred{}
	return New(d), d
}

func (d *Deferred) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

// Len returns the number of buffered bytes.
func (d *Deferred) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Len()
}

// Flush writes the buffered output to w and clears it.
func (d *Deferred) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.buf.Len() == 0 {
		return nil
	}

	_, err := d.buf.WriteTo(w)
	return err
}
