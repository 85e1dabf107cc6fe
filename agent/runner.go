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

package agent

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nabbar/mediadriver/idle"
)

type runner struct {
	a       Agent
	i       idle.Strategy
	h       ErrorHandler

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running atomic.Bool
	started time.Time

	errMu sync.Mutex
	errs  []error
}

// NewRunner returns a Runner pumping agent's DoWork loop, applying strategy
// whenever DoWork reports zero progress, and forwarding every error (or
// recovered panic) to handler. A recovered panic ends this runner's loop;
// other runners are unaffected. handler may be nil, in which case errors are
// only recorded for ErrorsLast/ErrorsList.
func NewRunner(a Agent, strategy idle.Strategy, handler ErrorHandler) Runner {
	return &runner{a: a, i: strategy, h: handler}
}

func (r *runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running.Load() {
		r.stopLocked(ctx)
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	r.started = time.Now()
	r.running.Store(true)

	go r.loop(runCtx, r.done)
	return nil
}

func (r *runner) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer r.running.Store(false)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		count, panicked, err := r.safeDoWork()
		if err != nil {
			r.record(err)
		}
		if panicked {
			return
		}
		if count > 0 {
			r.i.Reset()
		} else {
			r.i.Idle(count)
		}
	}
}

func (r *runner) safeDoWork() (count int, panicked bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s: do_work panicked: %v", r.a.RoleName(), p)
			panicked = true
		}
	}()
	count, err = r.a.DoWork()
	return count, false, err
}

func (r *runner) record(err error) {
	r.errMu.Lock()
	r.errs = append(r.errs, err)
	r.errMu.Unlock()

	if r.h != nil {
		r.h(r.a.RoleName(), err)
	}
}

func (r *runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopLocked(ctx)
}

func (r *runner) stopLocked(ctx context.Context) error {
	if r.cancel == nil {
		return nil
	}
	r.cancel()

	select {
	case <-r.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	err := r.a.OnClose()
	if err != nil {
		r.record(err)
	}
	return err
}

func (r *runner) IsRunning() bool { return r.running.Load() }

func (r *runner) Uptime() time.Duration {
	if r.started.IsZero() {
		return 0
	}
	if r.running.Load() {
		return time.Since(r.started)
	}
	return 0
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
	out := make([]error, len(r.errs))
	copy(out, r.errs)
	return out
}
