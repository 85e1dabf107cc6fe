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

// Package lossreport implements the separate memory-mapped loss-report file
// of spec.md §4.6: a buffered-append abstraction over a fixed-length,
// zero-initialized file, owned exclusively by the Context and written only
// by the Conductor. The file persists after the driver closes, for
// post-mortem inspection, per spec.md §4.6.
package lossreport

import "errors"

// ErrFull is returned by Record when appending the record would overflow
// the mapped file's fixed length.
var ErrFull = errors.New("lossreport: file capacity exhausted")

// Entry is one observed loss event, written as a fixed-size little-endian
// record: observation-count (int64), total-bytes-lost (int64), a 32-bit
// session id, a 32-bit stream id, a 32-bit term id, a 32-bit term offset,
// and a bounded UTF-8 reason string.
type Entry struct {
	ObservationCount int64
	TotalBytesLost   int64
	SessionID        int32
	StreamID         int32
	TermID           int32
	TermOffset       int32
	Reason           string
}

// ReasonMaxLen bounds Entry.Reason so every record has a fixed wire size.
const ReasonMaxLen = 256

// EntrySize is the fixed on-disk size of one Entry record.
const EntrySize = 8 + 8 + 4 + 4 + 4 + 4 + 4 + ReasonMaxLen

// Report is the buffered-append abstraction the Conductor records loss
// events through.
type Report interface {
	// Record appends entry to the report. It returns ErrFull if the
	// backing file has no room left; the caller is expected to treat this
	// as non-fatal and simply stop recording further loss detail.
	Record(entry Entry) error
	// Entries returns every record written so far, in append order.
	Entries() ([]Entry, error)
	// Close unmaps and (if it owns the descriptor) closes the backing
	// file. The file itself is left on disk.
	Close() error
}
