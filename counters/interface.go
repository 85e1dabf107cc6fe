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

// Package counters implements the CnC counters subsystem of spec.md §4.4: a
// metadata buffer of fixed-size descriptors and a values buffer of 64-bit
// cache-line-padded slots, both views over byte regions carved out of the
// CnC file (or, in tests, plain heap-backed slices). Writer discipline is
// pluggable: SingleWriter assumes only the Conductor registers counters,
// Concurrent allows any agent to register, serializing slot allocation with a
// mutex (not a CAS loop), per the spec's two flavors.
package counters

import "errors"

// CacheLineBytes is the stride between consecutive 64-bit counter slots in
// the values buffer, matching every other cache-line-aligned region in the
// CnC layout (cnc package).
const CacheLineBytes = 64

// LabelMaxLen bounds the US-ASCII label stored per descriptor in the
// metadata buffer; it is part of the fixed descriptor record size.
const LabelMaxLen = 380

// KeyMaxLen bounds the free-form key byte blob stored per descriptor.
const KeyMaxLen = 96

// DescriptorSize is the fixed size in bytes of one metadata-buffer record:
// a 4-byte state word, 4-byte type id, 4-byte label length, LabelMaxLen
// label bytes, 4-byte key length and KeyMaxLen key bytes, rounded up to the
// next multiple of CacheLineBytes.
var DescriptorSize = roundUp(4+4+4+LabelMaxLen+4+KeyMaxLen, CacheLineBytes)

func roundUp(n, to int) int {
	if n%to == 0 {
		return n
	}
	return ((n / to) + 1) * to
}

// ErrFull is returned by Allocate when the metadata or values buffer has no
// remaining free slot.
var ErrFull = errors.New("counters: metadata or values buffer is full")

// ErrLabelTooLong is returned by Allocate when label exceeds LabelMaxLen.
var ErrLabelTooLong = errors.New("counters: label exceeds maximum length")

// Descriptor is the decoded form of one metadata-buffer record.
type Descriptor struct {
	ID     int32
	TypeID int32
	Label  string
	Key    []byte
}

// Manager allocates and describes counters backed by a metadata buffer and a
// values buffer. Implementations must be safe per their documented writer
// discipline (SingleWriter: one goroutine; Concurrent: any number).
type Manager interface {
	// Allocate registers a new counter, writing its descriptor into the
	// metadata buffer and returning the id of its slot in the values
	// buffer. Labels are US-ASCII; label and key are copied.
	Allocate(typeID int32, label string, key []byte) (id int32, err error)
	// Get returns the descriptor for id, or ok=false if id was never
	// allocated (or has been freed).
	Get(id int32) (d Descriptor, ok bool)
	// Set stores value atomically into the counter's slot.
	Set(id int32, value int64)
	// Get64 atomically loads the counter's current value.
	Get64(id int32) int64
	// Add atomically adds delta to the counter's value and returns the new
	// value.
	Add(id int32, delta int64) int64
	// Free releases the counter's metadata slot so it can be reused. The
	// values slot is zeroed.
	Free(id int32)
	// MaxCounters returns the number of counter slots the values buffer can
	// hold.
	MaxCounters() int
	// Pointer returns the raw address of id's value slot, so a collaborator
	// (idle.Controllable) can read it directly with atomic loads instead of
	// going through Get64 on every idle cycle. The pointer aliases the same
	// backing buffer Get64/Set/Add operate on.
	Pointer(id int32) *int64
}
