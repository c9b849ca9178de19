package sufficiency

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/phipebble/pkg/graph"
	"github.com/matzehuels/phipebble/pkg/observability"
	"github.com/matzehuels/phipebble/pkg/pebble"
)

type recordingHooks struct {
	observability.NoopCheckHooks

	mu        sync.Mutex
	starts    int
	completes []bool
	sampled   int
	capped    int
}

func (h *recordingHooks) OnCheckStart(context.Context, int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.starts++
}

func (h *recordingHooks) OnCheckComplete(_ context.Context, _ int, sufficient bool, _ int, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completes = append(h.completes, sufficient)
}

func (h *recordingHooks) OnPhiSampled(context.Context, int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sampled++
}

func (h *recordingHooks) OnBFSCapReached(context.Context, int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.capped++
}

func TestCheckHooksReceiveEvents(t *testing.T) {
	h := &recordingHooks{}
	observability.SetCheckHooks(h)
	defer observability.Reset()

	_, err := New(Options{}).Sweep(context.Background(), graph.Path(3), 1, 2, false)
	require.NoError(t, err)

	assert.Equal(t, 2, h.starts)
	assert.Equal(t, []bool{false, true}, h.completes)
	assert.Zero(t, h.sampled)
	assert.Zero(t, h.capped)
}

func TestCheckHooksReportBounds(t *testing.T) {
	h := &recordingHooks{}
	observability.SetCheckHooks(h)
	defer observability.Reset()

	// Always evicting slot 0 keeps the last outcome, [0 0 2], which the
	// one-state search cannot finish.
	c := New(Options{
		Phi:   pebble.PhiOptions{Cap: 2, NewSource: func() pebble.Source { return firstSlot{} }},
		Reach: pebble.ReachOptions{Cap: 1},
	})
	_, err := c.CanPebbleAllVertices(context.Background(), graph.Path(3), 2)
	require.NoError(t, err)

	assert.Positive(t, h.sampled)
	assert.Positive(t, h.capped)
}

type firstSlot struct{}

func (firstSlot) IntN(int) int { return 0 }
