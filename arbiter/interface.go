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

// Package arbiter implements the Directory Arbiter of spec.md §4.2: the
// startup algorithm that decides whether a driver directory is free to
// claim, belongs to a still-live driver (fatal ActiveDriver), or belongs to
// a stale one whose error history should be salvaged before the directory
// is wiped and recreated.
package arbiter

import (
	"time"

	"github.com/nabbar/mediadriver/cnc"
)

// Options configures one arbitration pass.
type Options struct {
	// Dir is the absolute directory path being claimed.
	Dir string
	// LivenessTimeout bounds how stale a consumer heartbeat may be before
	// the owning driver is considered dead.
	LivenessTimeout time.Duration
	// WarnIfExists emits a stderr warning when Dir already exists, before
	// any other check runs.
	WarnIfExists bool
	// DeleteOnStart forces recursive removal and recreation of Dir,
	// bypassing the liveness check entirely.
	DeleteOnStart bool
	// Salvage is invoked with the stale driver's mapped CnC handle before
	// Dir is wiped, so distinct error records can be written to a
	// timestamped file in the parent directory. Salvage must not retain
	// the handle past its call.
	Salvage func(h *cnc.Handle, parentDir string) error
	// Now returns the current wall-clock time; defaults to time.Now if nil.
	Now func() time.Time
}

// Warn is called to emit the stderr warning spec.md §4.2 step 2 requires.
// It defaults to a real stderr print; tests may override it.
var Warn = defaultWarn
