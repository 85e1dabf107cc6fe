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

// Package agent implements the Agent Runtime of spec.md §4.9: the Runner
// that pumps an Agent's DoWork loop applying an idle strategy on starvation,
// the Composite that fuses several agents into one for the shared-thread
// modes, and the Assembly that builds the one live threading-mode
// configuration (INVOKER, SHARED, SHARED_NETWORK, DEDICATED) a concluded
// driver instance runs under.
package agent

import (
	"context"
	"time"
)

// Agent is one of the driver's three workers (Conductor, Sender, Receiver)
// or a Composite fusing several of them.
type Agent interface {
	// RoleName identifies the agent in logs and panic reports.
	RoleName() string
	// DoWork performs one unit of work and returns how many work items were
	// processed. A Runner applies its idle strategy whenever this is zero.
	DoWork() (int, error)
	// OnClose releases any resources the agent owns. Called once, after
	// the Runner has stopped pumping DoWork.
	OnClose() error
}

// ErrorHandler receives every error DoWork or OnClose returns, plus any
// recovered panic, identified by the agent's role name. It must not block.
type ErrorHandler func(role string, err error)

// Runner pumps one Agent's DoWork loop on its own goroutine (or, in INVOKER
// mode, synchronously on the caller's goroutine via Pump) until Stop is
// called or its context is cancelled. It matches the construction/lifecycle
// shape of this module's generic start/stop runner, specialized for the
// do_work/idle-strategy loop every driver agent uses instead of a single
// blocking call.
type Runner interface {
	// Start launches the agent's work loop. Calling Start while already
	// running stops the previous run first.
	Start(ctx context.Context) error
	// Stop signals the work loop to exit and waits for it to do so, then
	// calls the agent's OnClose.
	Stop(ctx context.Context) error
	// IsRunning reports whether the work loop is currently active.
	IsRunning() bool
	// Uptime reports how long the current run has been active; zero when
	// the work loop is not running.
	Uptime() time.Duration
	// ErrorsLast returns the most recent error recorded from DoWork,
	// OnClose, or a recovered panic; nil if none occurred.
	ErrorsLast() error
	// ErrorsList returns every error recorded over the runner's lifetime,
	// oldest first.
	ErrorsList() []error
}
