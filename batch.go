package structdiff

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pair is one independent diff input for DiffAll.
type Pair struct {
	A, B Container
}

// DiffAll diffs independent pairs concurrently, bounded by GOMAXPROCS.
// Results align positionally with pairs. The first error cancels the
// remaining work and is returned; no partial result slice is produced.
func DiffAll(ctx context.Context, pairs []Pair, optFns ...Option) ([]Difference, error) {
	results := make([]Difference, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := Diff(p.A, p.B, optFns...)
			if err != nil {
				return err
			}
			results[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
