package sufficiency

import (
	"context"

	"github.com/matzehuels/phipebble/pkg/errors"
	"github.com/matzehuels/phipebble/pkg/pebble"
)

// SweepResult holds the verdicts of a pebble-count sweep.
type SweepResult struct {
	// Verdicts are in ascending pebble order, one per evaluated count.
	Verdicts []Verdict `json:"verdicts"`
	// Estimate is the first sufficient count, or 0 when none was found.
	Estimate int `json:"estimate"`
	// NonMonotonic lists every count that was insufficient although the
	// count just below it was sufficient.
	NonMonotonic []int `json:"non_monotonic,omitempty"`
}

// Found reports whether the sweep found a sufficient count.
func (r SweepResult) Found() bool { return r.Estimate > 0 }

// Sweep checks pebble counts from..to inclusive in ascending order. With
// stopAtFirst it returns as soon as a sufficient count is found, which is how
// the phi-pebbling number is estimated; otherwise it evaluates the whole range
// so that non-monotonic verdicts can be detected.
func (c *Checker) Sweep(ctx context.Context, g pebble.Graph, from, to int, stopAtFirst bool) (SweepResult, error) {
	if err := errors.ValidatePebbleRange(from, to); err != nil {
		return SweepResult{}, err
	}

	var res SweepResult
	for p := from; p <= to; p++ {
		v, err := c.CanPebbleAllVertices(ctx, g, p)
		if err != nil {
			return SweepResult{}, err
		}
		res.Add(v)

		c.logger.Debug("sweep step", "pebbles", p, "sufficient", v.Sufficient, "pairs", v.Pairs)
		if v.Sufficient && stopAtFirst {
			break
		}
	}

	if len(res.NonMonotonic) > 0 {
		c.logger.Warn("verdicts are not monotone in the pebble count", "counts", res.NonMonotonic)
	}
	return res, nil
}

// Add appends the next verdict of an ascending sweep, updating Estimate and
// NonMonotonic. It lets callers assemble a sweep from verdicts obtained
// elsewhere, such as a cache.
func (r *SweepResult) Add(v Verdict) {
	if n := len(r.Verdicts); n > 0 && r.Verdicts[n-1].Sufficient && !v.Sufficient {
		r.NonMonotonic = append(r.NonMonotonic, v.Pebbles)
	}
	if v.Sufficient && r.Estimate == 0 {
		r.Estimate = v.Pebbles
	}
	r.Verdicts = append(r.Verdicts, v)
}
