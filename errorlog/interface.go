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

// Package errorlog implements the deduplicating error log buffer of
// spec.md §4.9: an append-only record per distinct stack, identified by a
// hash of its text, carrying a first-seen timestamp, a last-seen timestamp
// and an observation count that increments on every repeat instead of
// appending a new record. Record records never shrink or get overwritten
// in place; once the backing buffer is full, Record reports false and the
// caller is expected to fall back to stderr (spec.md §7).
package errorlog

import "time"

// Record identifies one distinct observation in the log.
type Record struct {
	FirstObservationNs int64
	LastObservationNs  int64
	ObservationCount    int64
	StackHash           uint64
	StackText           string
}

// Log is the append/dedupe contract the three agents and the client-facing
// admin surface share. Record must be safe to call concurrently from all
// three agents, since any of them can log a fault independently; Snapshot
// and Salvage are expected to run from a single maintenance path.
type Log interface {
	// Record appends a new record for stackText, or increments the
	// observation count and last-seen timestamp of an existing record with
	// the same hash. It returns false if the log has no room for a new
	// distinct record (an existing record can always be incremented).
	Record(stackText string, now time.Time) bool
	// Snapshot returns a copy of every record currently stored, in
	// insertion order.
	Snapshot() []Record
	// Len reports how many distinct records are currently stored.
	Len() int
	// Capacity reports the maximum number of distinct records the log can
	// hold before Record starts returning false for new stacks.
	Capacity() int
}
