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

// Package platformtimer implements the optional host high-resolution timer
// of spec.md §4.10: on Windows, when configured, the driver enables the
// 1ms multimedia timer before starting and disables it on close, but only
// if it was not already enabled by something else on entry. On every other
// OS, Enable/Disable are no-ops.
package platformtimer

// Timer toggles the host's high-resolution timer for the lifetime of a
// driver instance.
type Timer interface {
	// Enable requests the high-resolution timer. It records whether this
	// call was the one that actually turned it on, so Disable only turns
	// it back off if it owns that state.
	Enable() error
	// Disable releases the high-resolution timer, but only if Enable
	// actually acquired it on this host.
	Disable() error
}

// New returns the platform-appropriate Timer: a real toggler on Windows,
// a no-op everywhere else.
func New() Timer {
	return newPlatformTimer()
}
