package platform

import (
	"context"
	"runtime"
	"sync"
)

// BatchResult pairs the outcome of one design in a batch
type BatchResult struct {
	Results *Results
	Err     error
}

// EvaluateBatch evaluates independent designs concurrently with at most
// workers goroutines (GOMAXPROCS when workers <= 0). Output order matches
// input order. Designs not started before ctx is done get ctx.Err().
func EvaluateBatch(ctx context.Context, designs []Design, workers int) []BatchResult {
	out := make([]BatchResult, len(designs))
	if len(designs) == 0 {
		return out
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range designs {
		select {
		case <-ctx.Done():
			out[i].Err = ctx.Err()
			continue
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := ctx.Err(); err != nil {
				out[idx].Err = err
				return
			}
			out[idx].Results, out[idx].Err = Evaluate(designs[idx])
		}(i)
	}

	wg.Wait()
	return out
}
