package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelize_CoversAllItems(t *testing.T) {
	const items = 1000
	seen := make([]int32, items)

	Parallelize(items, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})

	for i, count := range seen {
		if count != 1 {
			t.Fatalf("item %d visited %d times, want exactly once", i, count)
		}
	}
}

func TestParallelize_ZeroItems(t *testing.T) {
	called := false
	Parallelize(0, func(start, end int) { called = true })
	if called {
		t.Error("fn should not be called for zero items")
	}
}

func TestParallelizeWithThreshold_SequentialBelow(t *testing.T) {
	var calls int32
	ParallelizeWithThreshold(10, 100, func(start, end int) {
		atomic.AddInt32(&calls, 1)
		if start != 0 || end != 10 {
			t.Errorf("expected single range (0, 10), got (%d, %d)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("expected exactly one sequential call, got %d", calls)
	}
}

func TestSumWithThreshold(t *testing.T) {
	// Sum of 0..n-1 with both the sequential and the parallel path.
	sum := func(start, end int) float64 {
		var s float64
		for i := start; i < end; i++ {
			s += float64(i)
		}
		return s
	}

	const n = 5000
	want := float64(n*(n-1)) / 2

	if got := SumWithThreshold(n, n+1, sum); got != want {
		t.Errorf("sequential sum = %v, want %v", got, want)
	}
	if got := SumWithThreshold(n, 100, sum); got != want {
		t.Errorf("parallel sum = %v, want %v", got, want)
	}
}
