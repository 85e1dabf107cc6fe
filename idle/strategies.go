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

package idle

import (
	"runtime"
	"sync/atomic"
	"time"
)

// BusySpin never backs off; it is appropriate only for dedicated cores
// where the agent is expected to run hot. Idle is a no-op.
type BusySpin struct{}

func (BusySpin) Idle(int) {}
func (BusySpin) Reset()   {}

// Yielding calls runtime.Gosched on every idle cycle, ceding the OS thread
// to other goroutines without parking it.
type Yielding struct{}

func (Yielding) Idle(int) { runtime.Gosched() }
func (Yielding) Reset()   {}

// Sleeping parks the calling goroutine for a fixed duration on every idle
// cycle, trading latency for CPU usage.
type Sleeping struct {
	Duration time.Duration
}

// NewSleeping returns a Sleeping strategy backing off for d on every idle
// cycle.
func NewSleeping(d time.Duration) *Sleeping {
	return &Sleeping{Duration: d}
}

func (s *Sleeping) Idle(int) { time.Sleep(s.Duration) }
func (s *Sleeping) Reset()   {}

// BackoffSpinYieldPark escalates through spin, yield, then a short sleep,
// matching the tiered idle strategy Aeron-style drivers use to balance
// latency against CPU burn: spin a handful of cycles, then Gosched a
// handful more, then start sleeping with the given duration.
type BackoffSpinYieldPark struct {
	SpinCycles  int
	YieldCycles int
	ParkFor     time.Duration

	state int32
}

// NewBackoffSpinYieldPark returns a tiered strategy with the given number
// of spin cycles, yield cycles, and a fixed park duration once both are
// exhausted.
func NewBackoffSpinYieldPark(spinCycles, yieldCycles int, parkFor time.Duration) *BackoffSpinYieldPark {
	return &BackoffSpinYieldPark{SpinCycles: spinCycles, YieldCycles: yieldCycles, ParkFor: parkFor}
}

func (b *BackoffSpinYieldPark) Idle(int) {
	s := atomic.AddInt32(&b.state, 1) - 1
	switch {
	case int(s) < b.SpinCycles:
		// busy spin, no syscall.
	case int(s) < b.SpinCycles+b.YieldCycles:
		runtime.Gosched()
	default:
		time.Sleep(b.ParkFor)
	}
}

func (b *BackoffSpinYieldPark) Reset() {
	atomic.StoreInt32(&b.state, 0)
}

// Controllable is an idle strategy whose behavior is driven by a shared
// counter slot (spec.md §3's "CONTROLLABLE_IDLE_STRATEGY" system counter):
// a monitoring client can write a new status value into the counter to
// switch a live agent between spin/yield/park at runtime.
type Controllable struct {
	status  *int64
	spin    Strategy
	yield   Strategy
	park    Strategy
}

// Controllable status values, mirrored in the CONTROLLABLE_IDLE_STRATEGY
// system counter.
const (
	ControllableSpin int64 = iota
	ControllableYield
	ControllablePark
)

// NewControllable returns a Controllable strategy reading its current mode
// from status on every Idle call.
func NewControllable(status *int64) *Controllable {
	return &Controllable{
		status: status,
		spin:   BusySpin{},
		yield:  Yielding{},
		park:   NewSleeping(time.Millisecond),
	}
}

func (c *Controllable) Idle(workCount int) {
	switch atomic.LoadInt64(c.status) {
	case ControllableYield:
		c.yield.Idle(workCount)
	case ControllablePark:
		c.park.Idle(workCount)
	default:
		c.spin.Idle(workCount)
	}
}

func (c *Controllable) Reset() {
	c.spin.Reset()
	c.yield.Reset()
	c.park.Reset()
}
