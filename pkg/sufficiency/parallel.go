package sufficiency

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/phipebble/pkg/pebble"
)

// evaluateParallel evaluates pairs on up to Workers goroutines.
//
// Once a pair fails, pairs after it are no longer started, but every pair
// before it still runs. The reported failure is therefore the earliest
// failing pair in pair order, the same one sequential evaluation reports.
// Pairs counts the evaluations that completed and may exceed the sequential
// count when pairs after the failure were already running.
func (c *Checker) evaluateParallel(ctx context.Context, g pebble.Graph, pairs []pair) (Verdict, error) {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(c.opts.Workers)

	var (
		mu      sync.Mutex
		v       = Verdict{Sufficient: true}
		failIdx = -1
	)
	after := func(i int) bool {
		mu.Lock()
		defer mu.Unlock()
		return failIdx >= 0 && i > failIdx
	}

	for i, p := range pairs {
		if after(i) || egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if after(i) {
				return nil
			}
			res, err := c.CanMovePebbles(egCtx, g, p.dist, p.target)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			v.record(res)
			if !res.Movable && (failIdx < 0 || i < failIdx) {
				failIdx = i
				v.fail(p, res)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return Verdict{}, err
	}
	if err := ctx.Err(); err != nil {
		return Verdict{}, err
	}
	return v, nil
}
