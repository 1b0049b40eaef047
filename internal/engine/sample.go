package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Sample computes frames [from, to) on up to workers goroutines and hands
// each to fn. fn may be called concurrently and in any order. The first
// error cancels the remaining work.
func (e *Engine) Sample(ctx context.Context, from, to, workers int, fn func(context.Context, *Frame) error) error {
	if from < 0 || to > e.TotalFrames() || from > to {
		return fmt.Errorf("%w: range [%d, %d) outside [0, %d)", ErrFrameOutOfRange, from, to, e.TotalFrames())
	}
	if workers <= 0 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for n := from; n < to; n++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := e.Frame(n)
			if err != nil {
				return err
			}
			return fn(ctx, f)
		})
	}
	return g.Wait()
}
