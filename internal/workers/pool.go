// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
)

// ErrPoolStopped is returned by Submit once Stop has been called.
var ErrPoolStopped = errors.New("worker pool stopped")

type job struct {
	ctx  context.Context
	fn   func()
	done chan struct{}
	err  error
}

// Pool is a fixed-size goroutine pool. Jobs are executed in submission
// order by the first free goroutine; Submit blocks until the job finishes.
type Pool struct {
	size int
	jobs chan *job
	quit chan struct{}
	wg   sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewPool creates a pool of size goroutines with a job queue of queue
// entries. Non-positive values are raised to 1 and 0 respectively.
func NewPool(size, queue int) *Pool {
	if size < 1 {
		size = 1
	}
	if queue < 0 {
		queue = 0
	}
	return &Pool{
		size: size,
		jobs: make(chan *job, queue),
		quit: make(chan struct{}),
	}
}

// Size returns the number of goroutines.
func (p *Pool) Size() int {
	return p.size
}

// Run starts the goroutines. It returns immediately; calling it again is a no-op.
func (p *Pool) Run() {
	p.startOnce.Do(func() {
		p.wg.Add(p.size)
		for i := 0; i < p.size; i++ {
			go p.loop()
		}
	})
}

func (p *Pool) loop() {
	defer p.wg.Done()
	for {
		select {
		case <-p.quit:
			return
		case j := <-p.jobs:
			// the submitter already gave up
			if err := j.ctx.Err(); err != nil {
				j.err = err
			} else {
				j.fn()
			}
			close(j.done)
		}
	}
}

// Submit enqueues fn and waits until it has run.
//
// It returns ctx.Err() if ctx ends before the job is picked up or finished,
// and ErrPoolStopped if the pool is stopped. In both cases fn may still be
// running or never run; callers must not read values written by fn unless
// Submit returned nil.
func (p *Pool) Submit(ctx context.Context, fn func()) error {
	select {
	case <-p.quit:
		return ErrPoolStopped
	default:
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	j := &job{ctx: ctx, fn: fn, done: make(chan struct{})}

	select {
	case p.jobs <- j:
	case <-p.quit:
		return ErrPoolStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-j.done:
		return j.err
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		select {
		case <-j.done:
			return j.err
		default:
			return ErrPoolStopped
		}
	}
}

// Stop signals all goroutines to exit and waits for running jobs to
// finish. Queued jobs that were not picked up are abandoned.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
		p.wg.Wait()
	})
}
