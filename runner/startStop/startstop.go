/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

// Package startStop wraps a pair of start/stop functions into a restartable
// background task with uptime and error tracking.
package startStop

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// FuncStart is run in its own goroutine by Start. It should block until ctx
// is done.
type FuncStart func(ctx context.Context) error

// FuncStop is run synchronously by Stop, after the start goroutine has
// exited.
type FuncStop func(ctx context.Context) error

// StartStop manages the lifecycle of a single background task.
type StartStop interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Restart(ctx context.Context) error
	IsRunning() bool
	Uptime() time.Duration
	ErrorsLast() error
	ErrorsList() []error
}

type runner struct {
	fnStart FuncStart
	fnStop  FuncStop

	mu      sync.Mutex
	running bool
	started time.Time
	cancel  context.CancelFunc
	done    chan struct{}

	errMu sync.Mutex
	errs  []error
}

// New returns a StartStop driving start in a background goroutine and stop
// during shutdown. Either function may be nil; calling through a nil
// function records an error instead of panicking.
func New(start FuncStart, stop FuncStop) StartStop {
	return &runner{fnStart: start, fnStop: stop}
}

func (r *runner) Start(ctx context.Context) error {
	r.stopCurrent(ctx)

	r.errMu.Lock()
	r.errs = nil
	r.errMu.Unlock()

	rctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	r.mu.Lock()
	r.cancel = cancel
	r.done = done
	r.started = time.Now()
	r.running = true
	r.mu.Unlock()

	go r.runLoop(rctx, done)

	return nil
}

func (r *runner) runLoop(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
	}()
	defer func() {
		if rec := recover(); rec != nil {
			r.addError(fmt.Errorf("startStop: recovered panic in start function: %v", rec))
		}
	}()

	if r.fnStart == nil {
		r.addError(fmt.Errorf("startStop: invalid start function"))
		return
	}

	if err := r.fnStart(ctx); err != nil {
		r.addError(err)
	}
}

// stopCurrent cancels and waits for any in-flight start goroutine, without
// invoking the stop function. Used internally so a second Start() call
// cleanly supersedes the first.
func (r *runner) stopCurrent(ctx context.Context) {
	r.mu.Lock()
	cancel := r.cancel
	done := r.done
	r.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()

	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

func (r *runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel := r.cancel
	done := r.done
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r.callStop(ctx)
	return nil
}

func (r *runner) callStop(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			r.addError(fmt.Errorf("startStop: recovered panic in stop function: %v", rec))
		}
	}()

	if r.fnStop == nil {
		r.addError(fmt.Errorf("startStop: invalid stop function"))
		return
	}

	if err := r.fnStop(ctx); err != nil {
		r.addError(err)
	}
}

func (r *runner) Restart(ctx context.Context) error {
	_ = r.Stop(ctx)
	return r.Start(ctx)
}

func (r *runner) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *runner) Uptime() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running || r.started.IsZero() {
		return 0
	}
	return time.Since(r.started)
}

func (r *runner) addError(err error) {
	r.errMu.Lock()
	r.errs = append(r.errs, err)
	r.errMu.Unlock()
}

func (r *runner) ErrorsLast() error {
	r.errMu.Lock()
	defer r.errMu.Unlock()
	if len(r.errs) == 0 {
		return nil
	}
	return r.errs[len(r.errs)-1]
}

func (r *runner) ErrorsList() []error {
	r.errMu.Lock()
	defer r.errMu.Unlock()
	return append([]error{}, r.errs...)
}
