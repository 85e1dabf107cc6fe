/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package semaphore bounds the number of concurrent worker goroutines a
// caller spawns, reserving one extra slot (the "main" slot) for the caller
// itself so a full worker pool never blocks its own shutdown path.
package semaphore

import "context"

// Semaphore bounds concurrent worker goroutines.
type Semaphore interface {
	// NewWorkerTry attempts to acquire a worker slot without blocking.
	NewWorkerTry() bool
	// NewWorker acquires a worker slot, blocking until one is free or ctx
	// is done.
	NewWorker(ctx context.Context) error
	// DeferWorker releases a worker slot acquired via NewWorkerTry or
	// NewWorker.
	DeferWorker()
	// DeferMain releases the single reserved main slot. Safe to call more
	// than once.
	DeferMain()
}

type sem struct {
	workers   chan struct{}
	unlimited bool
	main      chan struct{}
}

// New returns a Semaphore allowing up to max concurrent workers; max <= 0
// means unlimited. block is accepted for parity with callers that need to
// choose between a buffered and synchronous main slot; both behave
// identically here since the main slot is only ever held by one caller.
func New(_ context.Context, max int, _ bool) Semaphore {
	s := &sem{main: make(chan struct{}, 1)}
	s.main <- struct{}{}

	if max <= 0 {
		s.unlimited = true
	} else {
		s.workers = make(chan struct{}, max)
	}
	return s
}

func (s *sem) NewWorkerTry() bool {
	if s.unlimited {
		return true
	}
	select {
	case s.workers <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s *sem) NewWorker(ctx context.Context) error {
	if s.unlimited {
		return nil
	}
	select {
	case s.workers <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *sem) DeferWorker() {
	if s.unlimited {
		return
	}
	select {
	case <-s.workers:
	default:
	}
}

func (s *sem) DeferMain() {
	select {
	case <-s.main:
	default:
	}
}
