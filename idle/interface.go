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

// Package idle implements the cooperative back-off policies a Runner
// (agent package) applies whenever an agent's do_work reports zero work
// done, per spec.md §4.9. Every strategy is Reset/Idle, so a Runner can
// share one instance across an agent's whole lifetime without allocating
// per cycle.
package idle

// Strategy backs off when there is no work to do. Idle is called with the
// work-count returned by the most recent do_work call; implementations
// that care only about the zero/non-zero distinction may ignore its value
// beyond that.
type Strategy interface {
	// Idle applies one step of back-off for workCount (usually 0; Runner
	// only calls Idle when do_work reported no progress).
	Idle(workCount int)
	// Reset clears any accumulated back-off state, called whenever
	// do_work next reports progress.
	Reset()
}
