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

package driverctx

import (
	"github.com/nabbar/mediadriver/counters"
	"github.com/nabbar/mediadriver/queue"
)

// proxy wraps one inter-agent queue's Offer with the matching *_PROXY_FAILS
// system counter, per spec.md §4.8 step 7 ("proxies bound to queues and
// fail-counters"). A failed Offer never blocks and never panics; it only
// counts.
//
// In threading modes where the producer and consumer agent are the same
// running unit (INVOKER, SHARED), spec.md §4.5 requires the proxy to invoke
// the consumer's handler inline and never queue at all. A proxy built with
// inline set carries no queue: Offer calls handle directly, synchronously,
// and always reports success — there is nothing to fail an offer against.
type proxy struct {
	q      queue.Queue
	sys    *counters.SystemCounters
	fail   counters.SystemCounter
	inline bool
	handle func(queue.Command) error
}

func newQueuedProxy(q queue.Queue, sys *counters.SystemCounters, fail counters.SystemCounter) *proxy {
	return &proxy{q: q, sys: sys, fail: fail}
}

func newInlineProxy(handle func(queue.Command) error) *proxy {
	return &proxy{inline: true, handle: handle}
}

// Offer dispatches cmd. Inline proxies call the bound handler directly and
// never touch a queue or a fail counter (spec.md P5/S4). Queued proxies
// enqueue cmd, incrementing the bound fail counter on rejection.
func (p *proxy) Offer(cmd queue.Command) bool {
	if p.inline {
		if p.handle != nil {
			_ = p.handle(cmd)
		}
		return true
	}
	if p.q.Offer(cmd) {
		return true
	}
	p.sys.Increment(p.fail)
	return false
}

// conductorProxy, senderProxy and receiverProxy are the three named
// proxies spec.md §4.5 enumerates, each bound to the system counter its
// role's failed-offer count is reported under. The conductor proxy is the
// external to-driver inbox (spec.md §4.8 step 4): its producer is never one
// of the three agents, so it is always queued regardless of threading mode.
// The sender and receiver proxies are mode-aware: newSenderProxy and
// newReceiverProxy take an inline flag that New derives from the same
// ThreadingMode tag agent.Assemble used to build the assembly (spec.md
// §4.9's "same tag ... enforces the inline-dispatch rule"); the flag is set
// in INVOKER/SHARED, dispatching inline, and the queue is used otherwise.
func newConductorProxy(q queue.Queue, sys *counters.SystemCounters) *proxy {
	return newQueuedProxy(q, sys, counters.SystemConductorProxyFails)
}

func newSenderProxy(q queue.Queue, sys *counters.SystemCounters, inline bool, handle func(queue.Command) error) *proxy {
	if inline {
		return newInlineProxy(handle)
	}
	return newQueuedProxy(q, sys, counters.SystemSenderProxyFails)
}

func newReceiverProxy(q queue.Queue, sys *counters.SystemCounters, inline bool, handle func(queue.Command) error) *proxy {
	if inline {
		return newInlineProxy(handle)
	}
	return newQueuedProxy(q, sys, counters.SystemReceiverProxyFails)
}
