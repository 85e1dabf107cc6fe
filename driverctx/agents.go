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
	"github.com/nabbar/mediadriver/clock"
	"github.com/nabbar/mediadriver/cnc"
	"github.com/nabbar/mediadriver/counters"
	"github.com/nabbar/mediadriver/queue"
)

// conductorWorker is the control-plane agent: it drains the to-driver
// inbox (the many-producer, single-consumer logical ring spec.md §4.8
// step 4 wraps around the CnC conductor region), routes each command to
// the Sender or Receiver's inter-agent queue, and refreshes the
// consumer-heartbeat every cycle so the Directory Arbiter's liveness check
// (arbiter package) sees this instance as alive. Frame encoding/decoding
// and flow control are out of scope (spec.md §1); this worker only
// exercises the routing and bookkeeping this core owns.
type conductorWorker struct {
	handle   *cnc.Handle
	clk      clock.Clock
	toDriver *queue.MPSC

	toSender   *proxy
	toReceiver *proxy

	sys *counters.SystemCounters
}

func (c *conductorWorker) RoleName() string { return "conductor" }

func (c *conductorWorker) DoWork() (int, error) {
	c.handle.SetConsumerHeartbeatMs(c.clk.NowMs())

	cmd, ok := c.toDriver.Poll()
	if !ok {
		return 0, nil
	}

	var routed bool
	switch cmd.Tag {
	case queue.TagCreatePublication, queue.TagClosePublication, queue.TagAddDestination, queue.TagRemoveDestination:
		routed = c.toSender.Offer(cmd)
	case queue.TagCreateSubscription, queue.TagCloseSubscription:
		routed = c.toReceiver.Offer(cmd)
	default:
		routed = true
	}

	if !routed {
		c.sys.Increment(counters.SystemErrors)
	}

	return 1, nil
}

func (c *conductorWorker) OnClose() error {
	c.toDriver.Drain()
	return nil
}

// senderWorker is the egress agent: it drains commands the Conductor
// routed to it. Actual frame transmission is an out-of-scope pluggable
// collaborator (spec.md §1); this worker exercises the queue discipline
// and the counters a real sender would update alongside transmission.
type senderWorker struct {
	toSender *queue.SPSC
	sys      *counters.SystemCounters
}

func (s *senderWorker) RoleName() string { return "sender" }

func (s *senderWorker) DoWork() (int, error) {
	cmd, ok := s.toSender.Poll()
	if !ok {
		return 0, nil
	}
	return 1, s.Handle(cmd)
}

func (s *senderWorker) OnClose() error { return nil }

// Handle applies cmd's side effect directly, bypassing the to-sender queue.
// This is the body the conductor's sender proxy calls inline in threading
// modes where the Conductor and Sender share one running unit (spec.md
// §4.5); DoWork calls it too, once a command has been polled off the queue
// in the modes where one is used, so both paths share one implementation.
func (s *senderWorker) Handle(cmd queue.Command) error {
	_ = cmd
	s.sys.Increment(counters.SystemBytesSent)
	return nil
}

// receiverWorker is the ingress agent: it drains commands the Conductor
// routed to it. Actual datagram reception is an out-of-scope pluggable
// collaborator (spec.md §1).
type receiverWorker struct {
	toReceiver *queue.SPSC
	sys        *counters.SystemCounters
}

func (r *receiverWorker) RoleName() string { return "receiver" }

func (r *receiverWorker) DoWork() (int, error) {
	cmd, ok := r.toReceiver.Poll()
	if !ok {
		return 0, nil
	}
	return 1, r.Handle(cmd)
}

func (r *receiverWorker) OnClose() error { return nil }

// Handle applies cmd's side effect directly, bypassing the to-receiver
// queue; see senderWorker.Handle for why both DoWork and the inline proxy
// path share this method.
func (r *receiverWorker) Handle(cmd queue.Command) error {
	_ = cmd
	r.sys.Increment(counters.SystemBytesReceived)
	return nil
}
