package parallel

import (
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
	CancelFunc func()
)

// Pool fans work out to a fixed set of workers. With one worker it
// degenerates to synchronous calls with no goroutines at all.
type Pool struct {
	wg     sync.WaitGroup
	Do     WorkerFunc
	Wait   WaitFunc
	Cancel CancelFunc
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for i := 0; i < numWorkers; i++ {
			pool.wg.Add(1)
			go func() {
				defer pool.wg.Done()
				for {
					f, ok := <-workChan
					if !ok {
						return
					}
					f()
				}
			}()
		}

		pool.Do = func(f func()) {
			workChan <- f
		}

		pool.Wait = func(done bool) {
			if done {
				pool.Cancel()
			}
			pool.wg.Wait()
		}
		pool.Cancel = sync.OnceFunc(func() { close(workChan) })
	}

	return pool
}

// Rows splits [0, n) into at most bands contiguous ranges, dispatches
// fn(lo, hi) for each through worker, and blocks until every range has
// run. bands < 1 means one band per available CPU. Must not be called
// from inside a task already running on the same pool.
func Rows(worker WorkerFunc, n, bands int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if bands < 1 {
		bands = runtime.GOMAXPROCS(0)
	}
	if bands > n {
		bands = n
	}

	size := (n + bands - 1) / bands
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += size {
		lo := lo
		hi := min(lo+size, n)
		wg.Add(1)
		worker(func() {
			defer wg.Done()
			fn(lo, hi)
		})
	}
	wg.Wait()
}
