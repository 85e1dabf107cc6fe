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

	"github.com/nabbar/mediadriver/idle"
)

// PumpOnce runs a single DoWork cycle of the INVOKER-mode composite agent
// on the caller's own goroutine, applying strategy when no work was done.
// It never spawns a thread, matching spec.md §4.9's "0 threads, caller
// pumps synchronously".
func (a *Assembly) PumpOnce(strategy idle.Strategy) error {
	n, err := a.InvokerAgent.DoWork()
	if n > 0 {
		strategy.Reset()
	} else {
		strategy.Idle(n)
	}
	return err
}

// Pump runs PumpOnce in a loop until ctx is cancelled, then closes the
// invoker agent. It is a convenience helper for callers that want a
// blocking invoker loop rather than hand-rolling the cycle themselves.
func (a *Assembly) Pump(ctx context.Context, strategy idle.Strategy) error {
	for {
		select {
		case <-ctx.Done():
			return a.InvokerAgent.OnClose()
		default:
		}
		if err := a.PumpOnce(strategy); err != nil {
			return err
		}
	}
}
