// Package parallel provides chunked parallel-for helpers used by the
// smoothing core for per-observation work such as distance computation
// and design-matrix assembly.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize divides items into per-core ranges and executes fn on each
// range (start, end) concurrently. The ranges are disjoint, so fn may
// write to per-index slots of shared slices without synchronization.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so every item is covered.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}

		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold runs fn over (0, items) sequentially when
// items is at or below threshold, and parallelizes otherwise. Small
// neighborhoods are not worth the goroutine overhead.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}

	Parallelize(items, fn)
}

// SumWithThreshold accumulates fn over per-chunk ranges and returns the
// total. fn must return the partial sum for its half-open range. Below
// the threshold the whole range is summed sequentially. Note that the
// parallel result may differ from the sequential one in the last bits
// because floating-point addition is not associative.
func SumWithThreshold(items int, threshold int, fn func(start, end int) float64) float64 {
	if items <= threshold {
		return fn(0, items)
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	chunkSize := (items + numWorkers - 1) / numWorkers
	partials := make([]float64, numWorkers)

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}

		if start >= end {
			continue
		}

		wg.Add(1)
		go func(idx, s, e int) {
			defer wg.Done()
			partials[idx] = fn(s, e)
		}(i, start, end)
	}

	wg.Wait()

	var total float64
	for _, p := range partials {
		total += p
	}
	return total
}
