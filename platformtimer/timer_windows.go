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

//go:build windows

package platformtimer

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sys/windows"
)

// winmm's multimedia timer period, in milliseconds. 1ms matches the
// resolution Aeron-style drivers request on Windows to keep idle-strategy
// park/sleep cycles tight.
const periodMs = 1

var (
	winmm               = windows.NewLazySystemDLL("winmm.dll")
	procTimeBeginPeriod = winmm.NewProc("timeBeginPeriod")
	procTimeEndPeriod   = winmm.NewProc("timeEndPeriod")
)

// hostState tracks whether this process has already requested the
// high-resolution timer, so a second Enable call (e.g. from a second
// driver instance in the same process) does not double-disable it out
// from under the first.
var hostState struct {
	mu    sync.Mutex
	count int
}

type windowsTimer struct {
	acquired atomic.Bool
}

func newPlatformTimer() Timer { return &windowsTimer{} }

func (t *windowsTimer) Enable() error {
	hostState.mu.Lock()
	defer hostState.mu.Unlock()

	alreadyEnabled := hostState.count > 0
	hostState.count++
	if alreadyEnabled {
		t.acquired.Store(false)
		return nil
	}

	r, _, err := procTimeBeginPeriod.Call(uintptr(periodMs))
	if r != 0 {
		hostState.count--
		return err
	}
	t.acquired.Store(true)
	return nil
}

func (t *windowsTimer) Disable() error {
	if !t.acquired.CompareAndSwap(true, false) {
		return nil
	}

	hostState.mu.Lock()
	defer hostState.mu.Unlock()

	hostState.count--
	r, _, err := procTimeEndPeriod.Call(uintptr(periodMs))
	if r != 0 {
		return err
	}
	return nil
}
