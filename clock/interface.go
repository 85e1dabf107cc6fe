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

// Package clock provides the two time sources the driver core depends on:
// a monotonic nanosecond clock for elapsed-time and liveness computations,
// and a wall-clock millisecond source for timestamps persisted into the
// CnC file and the error log. Both are injectable so tests can run the
// arbiter/conclude/error-log logic without real time passing.
package clock

import (
	"sync/atomic"
	"time"
)

// Clock is the time source consumed by every other component. Implementations
// must be non-allocating and safe for concurrent use from any agent.
type Clock interface {
	// NowMs returns the current wall-clock time in milliseconds since the Unix epoch.
	// Used for CnC header timestamps, error-log first/last observation times, and
	// the consumer heartbeat.
	NowMs() int64
	// NowNs returns a monotonic nanosecond counter. Used for elapsed-time and
	// idle-strategy backoff computations; never persisted, never compared across
	// processes.
	NowNs() int64
}

// System returns the default Clock backed by the host's wall and monotonic clocks.
func System() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) NowMs() int64 {
	return time.Now().UnixMilli()
}

// processStart anchors NowNs: time.Since reads the monotonic clock reading
// carried by a time.Time, so NowNs is unaffected by wall-clock adjustments.
var processStart = time.Now()

func (systemClock) NowNs() int64 {
	return int64(time.Since(processStart))
}

// Manual is a deterministic Clock for tests: NowMs/NowNs return values set by
// SetMs/SetNs, or advanced by AdvanceMs/AdvanceNs. Safe for concurrent use.
type Manual struct {
	ms atomic.Int64
	ns atomic.Int64
}

// NewManual returns a Manual clock initialized to the given wall-clock ms and
// monotonic ns values.
func NewManual(ms, ns int64) *Manual {
	m := &Manual{}
	m.ms.Store(ms)
	m.ns.Store(ns)
	return m
}

func (m *Manual) NowMs() int64 { return m.ms.Load() }
func (m *Manual) NowNs() int64 { return m.ns.Load() }

// SetMs overrides the wall-clock value returned by NowMs.
func (m *Manual) SetMs(ms int64) { m.ms.Store(ms) }

// SetNs overrides the monotonic value returned by NowNs.
func (m *Manual) SetNs(ns int64) { m.ns.Store(ns) }

// AdvanceMs adds delta (which may be negative) to the wall-clock value.
func (m *Manual) AdvanceMs(delta int64) int64 { return m.ms.Add(delta) }

// AdvanceNs adds delta (which may be negative) to the monotonic value.
func (m *Manual) AdvanceNs(delta int64) int64 { return m.ns.Add(delta) }
