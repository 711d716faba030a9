// Package parallel fans independent, index-addressed jobs out across a
// fixed set of worker goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool runs jobs on a fixed number of goroutines.
//
// Jobs are identified by index so that callers can write results into
// pre-sized slices without coordination: two workers never receive the
// same index, and ForEach does not return until every job has run.
//
// The zero value is not usable; create pools with New.
type Pool struct {
	workers int
}

// New creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: workers}
}

// Workers returns the number of workers the pool will spawn.
func (p *Pool) Workers() int {
	return p.workers
}

// ForEach runs fn(i) for every i in [0, n) and waits for completion.
// Indices are handed out through a shared atomic counter, so fast
// workers drain more of the range than slow ones. fn must be safe for
// concurrent invocation with distinct indices.
func (p *Pool) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := p.workers
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := next.Add(1) - 1
				if i >= int64(n) {
					return
				}
				fn(int(i))
			}
		}()
	}
	wg.Wait()
}
