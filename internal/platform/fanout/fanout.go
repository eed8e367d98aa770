// Package fanout runs a function over a slice with bounded concurrency and
// keeps the results in input order.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is one item's outcome.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item, at most maxWorkers at a time (at least one),
// and waits for all of them. Items whose turn comes after ctx is done get
// ctx.Err() without fn being called. One item failing does not stop the
// others.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Value, results[i].Err = fn(ctx, item)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Collect is Run for all-or-nothing work: the first failure cancels the
// context the remaining calls see, and Collect returns that failure.
func Collect[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	values := make([]R, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(maxWorkers, 1))
	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := fn(gctx, item)
			values[i] = v
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}
