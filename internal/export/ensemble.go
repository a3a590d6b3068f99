package export

import (
	"context"
	"sync"
)

// Ensemble renders n snapshots with consecutive seeds starting at
// opts.Seed. Every run owns its controller, so runs proceed in parallel.
func Ensemble(ctx context.Context, opts Options, n int) ([]*Snapshot, error) {
	results := make([]*Snapshot, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			o := opts
			o.Seed = opts.Seed + int64(idx)
			results[idx], errs[idx] = RenderContext(ctx, o)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
