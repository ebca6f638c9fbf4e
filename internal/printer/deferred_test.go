package printer

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/citeview/pkg/tuitest"
)

func TestDeferred_HoldsOutputUntilFlush(t *testing.T) {
	p, d := NewDeferred()

	p.Warnf("brief has %d warnings", 2)
	assert.Positive(t, d.Len())

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))
	assert.Equal(t, "~ brief has 2 warnings\n", tuitest.StripANSI(out.String()))
	assert.Zero(t, d.Len())

	out.Reset()
	require.NoError(t, d.Flush(&out))
	assert.Empty(t, out.String())
}

func TestDeferred_ConcurrentWrites(t *testing.T) {
	d := &Deferred{}

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = d.Write([]byte("x"))
		}()
	}
	wg.Wait()

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))
	assert.Len(t, out.String(), 50)
}
