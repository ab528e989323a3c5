// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool converts the rows of a frame on a fixed set of
// goroutines. Workers start once and are reused across frames, so a
// frame conversion spawns nothing and allocates only its barrier.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, frame := range frames {
//	    pool.ParallelFor(frame.Height, rowsPerTask, func(start, end int) {
//	        convertRows(frame, start, end)
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool runs row ranges on a fixed number of workers.
type Pool struct {
	workers int
	tasks   chan task
	once    sync.Once
	closed  atomic.Bool
}

// task is one row range of a ParallelFor call; done is shared by every
// range of the call.
type task struct {
	start, end int
	fn         func(start, end int)
	done       *sync.WaitGroup
}

// New starts a pool of workers goroutines; 0 or less uses GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		tasks:   make(chan task, workers),
	}
	for range workers {
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	for t := range p.tasks {
		t.fn(t.start, t.end)
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Close stops the workers once queued ranges finish. It is safe to call
// more than once.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// Split returns how many ranges ParallelFor cuts n rows into: one per
// worker at most, each at least grain rows long.
func (p *Pool) Split(n, grain int) int {
	if n <= 0 {
		return 0
	}
	return max(1, min(p.workers, n/max(grain, 1)))
}

// ParallelFor calls fn on consecutive ranges covering [0, n) and returns
// once all are done. Range lengths differ by at most one row. When n is
// too small to split, or the pool is closed, fn(0, n) runs on the
// caller's goroutine.
//
// Close must not race with ParallelFor.
func (p *Pool) ParallelFor(n, grain int, fn func(start, end int)) {
	chunks := p.Split(n, grain)
	switch {
	case chunks == 0:
		return
	case chunks == 1 || p.closed.Load():
		fn(0, n)
		return
	}

	var done sync.WaitGroup
	done.Add(chunks)
	for i := range chunks {
		p.tasks <- task{start: i * n / chunks, end: (i + 1) * n / chunks, fn: fn, done: &done}
	}
	done.Wait()
}
