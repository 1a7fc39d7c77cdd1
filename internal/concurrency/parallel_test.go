package concurrency

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.MaxWorkers != 4 {
		t.Errorf("Expected MaxWorkers to be 4, got %d", opts.MaxWorkers)
	}
}

func TestProcessParallelEmptyInput(t *testing.T) {
	results, errs := ProcessParallel(context.Background(), []int{}, DefaultOptions(), func(ctx context.Context, index int, item int) (string, error) {
		return "", nil
	})
	if len(results) != 0 {
		t.Errorf("Expected empty results for empty input, got %d items", len(results))
	}
	if errs != nil {
		t.Errorf("Expected nil errors for empty input, got %v", errs)
	}
}

func TestProcessParallelPreservesOrder(t *testing.T) {
	input := []int{10, 20, 30, 40, 50}
	results, errs := ProcessParallel(context.Background(), input, DefaultOptions(), func(ctx context.Context, index int, item int) (string, error) {
		return fmt.Sprintf("item-%d", item), nil
	})

	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}
	if len(results) != len(input) {
		t.Fatalf("Expected %d results, got %d", len(input), len(results))
	}
	for i, item := range input {
		want := fmt.Sprintf("item-%d", item)
		if results[i] != want {
			t.Errorf("Expected result at index %d to be %s, got %s", i, want, results[i])
		}
	}
}

func TestProcessParallelCollectsErrors(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}
	results, errs := ProcessParallel(context.Background(), input, DefaultOptions(), func(ctx context.Context, index int, item int) (string, error) {
		if item%2 == 0 {
			return "", errors.New("even number error")
		}
		return "ok", nil
	})

	if len(results) != len(input) {
		t.Errorf("Expected %d results, got %d", len(input), len(results))
	}
	if len(errs) != 2 {
		t.Errorf("Expected 2 errors, got %d", len(errs))
	}
}

func TestProcessParallelInvalidMaxWorkers(t *testing.T) {
	input := []int{1, 2, 3}
	var calls int32

	results, errs := ProcessParallel(context.Background(), input, ParallelOptions{MaxWorkers: -1}, func(ctx context.Context, index int, item int) (int, error) {
		atomic.AddInt32(&calls, 1)
		return item * 2, nil
	})

	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}
	if len(results) != len(input) {
		t.Fatalf("Expected %d results, got %d", len(input), len(results))
	}
	if atomic.LoadInt32(&calls) != int32(len(input)) {
		t.Errorf("Expected %d calls, got %d", len(input), calls)
	}
}
