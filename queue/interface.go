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

// Package queue implements the inter-agent command queues of spec.md §4.5 and
// the logical to-driver MPSC discipline of §4.8 step 4. Each bounded queue is
// backed by github.com/hayabusa-cloud/lfq, which gives wait-free producers
// and a non-blocking Offer/Poll pair matching the "fail fast, never block"
// invariant every queue in this driver must honor.
//
// The byte regions the CnC file reserves for the conductor and to-clients
// buffers (cnc package) are raw, fixed-length spans sized per spec.md §3;
// encoding driver commands into those bytes is the wire/client codec's job
// (out of scope per spec.md §1, "consumed as pluggable suppliers"). What
// this package provides is the logical single-process queue discipline used
// internally by the three agents and their proxies.
package queue

import (
	"github.com/hayabusa-cloud/lfq"
)

// Tag identifies the kind of command carried by a Command record. The full
// enumeration is inherited from the wire/client protocol and is out of this
// core's scope (spec.md §4.5); this is the representative subset the agent
// runtime and proxies need to exercise the queue and fail-counter wiring.
type Tag uint16

const (
	TagUnknown Tag = iota
	TagCreatePublication
	TagClosePublication
	TagCreateSubscription
	TagCloseSubscription
	TagAddDestination
	TagRemoveDestination
	TagCounterOperation
)

// String returns a human-readable name for the tag, used in logging.
func (t Tag) String() string {
	switch t {
	case TagCreatePublication:
		return "CREATE_PUBLICATION"
	case TagClosePublication:
		return "CLOSE_PUBLICATION"
	case TagCreateSubscription:
		return "CREATE_SUBSCRIPTION"
	case TagCloseSubscription:
		return "CLOSE_SUBSCRIPTION"
	case TagAddDestination:
		return "ADD_DESTINATION"
	case TagRemoveDestination:
		return "REMOVE_DESTINATION"
	case TagCounterOperation:
		return "COUNTER_OPERATION"
	default:
		return "UNKNOWN"
	}
}

// Command is a tagged command record carried on any of the three inter-agent
// queues. CorrelationID threads a client-visible response back through the
// to-clients broadcast; Payload is the tag-specific body, opaque to this
// package.
type Command struct {
	Tag           Tag
	CorrelationID int64
	Payload       any
}

// Queue is the minimal bounded, non-blocking queue contract every inter-agent
// queue and the logical to-driver inbox implement.
type Queue interface {
	// Offer attempts to enqueue cmd. It never blocks: on a full queue it
	// returns false immediately, per spec.md §4.5 "fail fast".
	Offer(cmd Command) bool
	// Poll attempts to dequeue the next command. ok is false if the queue is
	// currently empty.
	Poll() (cmd Command, ok bool)
	// Capacity returns the fixed power-of-two capacity configured at
	// construction time.
	Capacity() int
}

// SPSC is a single-producer single-consumer bounded queue, used for the
// to-sender and to-receiver command queues; the conductor's inbox is the
// MPSC below.
type SPSC struct {
	q   lfq.Queue[Command]
	cap int
}

// NewSPSC returns a new SPSC queue with the given power-of-two capacity
// (CMD_QUEUE_CAPACITY in spec.md §3). capacity is rounded up to the next
// power of two by the underlying lfq allocator if it is not already one.
func NewSPSC(capacity int) *SPSC {
	return &SPSC{q: lfq.NewSPSC[Command](capacity), cap: capacity}
}

func (s *SPSC) Offer(cmd Command) bool {
	return s.q.Enqueue(&cmd) == nil
}

func (s *SPSC) Poll() (Command, bool) {
	c, err := s.q.Dequeue()
	if err != nil || c == nil {
		return Command{}, false
	}
	return *c, true
}

func (s *SPSC) Capacity() int { return s.cap }

// MPSC is the many-producer single-consumer discipline used internally for
// the logical to-driver inbox (spec.md §5, "To-driver ring buffer: many
// producers ... single consumer (Conductor)").
type MPSC struct {
	q   lfq.Queue[Command]
	cap int
}

// NewMPSC returns a new MPSC queue with the given power-of-two capacity.
func NewMPSC(capacity int) *MPSC {
	return &MPSC{q: lfq.NewMPSC[Command](capacity), cap: capacity}
}

func (m *MPSC) Offer(cmd Command) bool {
	return m.q.Enqueue(&cmd) == nil
}

func (m *MPSC) Poll() (Command, bool) {
	c, err := m.q.Dequeue()
	if err != nil || c == nil {
		return Command{}, false
	}
	return *c, true
}

func (m *MPSC) Capacity() int { return m.cap }

// Drain signals the underlying lfq queue that no further Offer calls will be
// made, so Poll can fully drain remaining items without FAA-threshold
// blocking (see lfq's graceful-shutdown Drainer contract). Safe to call
// during agent shutdown once producers are known to have stopped.
func (m *MPSC) Drain() {
	if d, ok := m.q.(lfq.Drainer); ok {
		d.Drain()
	}
}
