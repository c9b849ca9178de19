package sufficiency

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/phipebble/pkg/errors"
	"github.com/matzehuels/phipebble/pkg/graph"
)

func TestSweepStopAtFirst(t *testing.T) {
	res, err := New(Options{}).Sweep(context.Background(), graph.Cycle(5), 1, 10, true)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Estimate)
	assert.True(t, res.Found())
	assert.Len(t, res.Verdicts, 3)
}

func TestSweepFullRangeIsMonotone(t *testing.T) {
	res, err := New(Options{}).Sweep(context.Background(), graph.Path(4), 1, 6, false)
	require.NoError(t, err)

	require.Len(t, res.Verdicts, 6)
	assert.Equal(t, 4, res.Estimate)
	for i, v := range res.Verdicts {
		assert.Equal(t, i+1, v.Pebbles)
		assert.Equal(t, v.Pebbles >= 4, v.Sufficient, "%d pebbles", v.Pebbles)
	}
	assert.Empty(t, res.NonMonotonic, "sweep over a small path must not flip back to insufficient")
}

func TestSweepNotFound(t *testing.T) {
	res, err := New(Options{}).Sweep(context.Background(), graph.Path(4), 1, 2, true)
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Zero(t, res.Estimate)
	assert.Len(t, res.Verdicts, 2)
}

func TestSweepFlagsNonMonotonic(t *testing.T) {
	var res SweepResult
	for _, v := range []Verdict{
		{Pebbles: 3, Sufficient: false},
		{Pebbles: 4, Sufficient: true},
		{Pebbles: 5, Sufficient: false},
		{Pebbles: 6, Sufficient: true},
		{Pebbles: 7, Sufficient: false},
	} {
		res.Add(v)
	}

	assert.Equal(t, 4, res.Estimate)
	assert.Equal(t, []int{5, 7}, res.NonMonotonic)
}

func TestSweepInvalidRange(t *testing.T) {
	_, err := New(Options{}).Sweep(context.Background(), graph.Path(3), 4, 2, false)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = New(Options{}).Sweep(context.Background(), graph.Path(3), 0, 2, false)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}
