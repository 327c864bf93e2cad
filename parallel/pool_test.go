package parallel

import (
	"sync/atomic"
	"testing"
)

func TestPoolRunsAllWork(t *testing.T) {
	for _, workers := range []int{1, 2, 8} {
		pool := Start(workers)

		var count atomic.Uint64
		for i := 0; i < 100; i++ {
			pool.Do(func() { count.Add(1) })
		}
		pool.Wait(true)

		if got := count.Load(); got != 100 {
			t.Errorf("%d workers: ran %d tasks, want 100", workers, got)
		}
	}
}

func TestPoolCancelIsIdempotent(t *testing.T) {
	pool := Start(4)
	pool.Cancel()
	pool.Cancel()
	pool.Wait(false)
}

func TestRowsCoversRangeExactlyOnce(t *testing.T) {
	tests := []struct {
		name     string
		n, bands int
	}{
		{"Even split", 12, 3},
		{"Uneven split", 10, 3},
		{"More bands than rows", 3, 8},
		{"Single band", 9, 1},
		{"Default bands", 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := Start(4)
			defer pool.Wait(true)

			hits := make([]atomic.Uint32, tt.n)
			Rows(pool.Do, tt.n, tt.bands, func(lo, hi int) {
				for i := lo; i < hi; i++ {
					hits[i].Add(1)
				}
			})

			for i := range hits {
				if got := hits[i].Load(); got != 1 {
					t.Errorf("row %d visited %d times, want 1", i, got)
				}
			}
		})
	}
}

func TestRowsEmptyRange(t *testing.T) {
	called := false
	Rows(func(f func()) { f() }, 0, 4, func(lo, hi int) { called = true })
	if called {
		t.Error("Rows over an empty range should not dispatch")
	}
}
