package concurrency

import (
	"context"
	"sync"
)

// ParallelOptions configures parallel processing.
type ParallelOptions struct {
	// MaxWorkers is the upper bound on concurrent workers.
	MaxWorkers int
}

// DefaultOptions returns the default parallel processing options.
func DefaultOptions() ParallelOptions {
	return ParallelOptions{
		MaxWorkers: 4,
	}
}

// ProcessParallel runs itemFunc over items with a bounded worker pool.
// Results come back in the same order as the input items; errors are
// collected without stopping the other workers.
func ProcessParallel[T any, R any](
	ctx context.Context,
	items []T,
	opts ParallelOptions,
	itemFunc func(ctx context.Context, index int, item T) (R, error),
) ([]R, []error) {
	if len(items) == 0 {
		return []R{}, nil
	}

	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = DefaultOptions().MaxWorkers
	}
	if maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	type itemResult struct {
		index  int
		result R
		err    error
	}

	jobs := make(chan int, len(items))
	results := make(chan itemResult, len(items))

	var wg sync.WaitGroup
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for jobIndex := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
					result, err := itemFunc(ctx, jobIndex, items[jobIndex])
					results <- itemResult{index: jobIndex, result: result, err: err}
				}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	resultList := make([]R, len(items))
	var errs []error
	for res := range results {
		if res.err != nil {
			errs = append(errs, res.err)
		}
		resultList[res.index] = res.result
	}

	return resultList, errs
}
