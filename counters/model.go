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

package counters

import (
	"encoding/binary"
	"sync"
	"sync/atomic"
)

const (
	stateUnused = int32(0)
	stateActive = int32(1)
)

// region is the common storage behind both Manager flavors: two flat byte
// slices standing in for the CnC metadata and values buffer regions. A real
// driver instance carves these out of the mmap'd CnC file (cnc package); a
// standalone Manager, as used in agent unit tests, simply allocates heap
// slices of the same shape.
type region struct {
	meta   []byte
	values []byte
}

func newRegion(maxCounters int) *region {
	return &region{
		meta:   make([]byte, maxCounters*DescriptorSize),
		values: make([]byte, maxCounters*CacheLineBytes),
	}
}

// regionOverBuffers wraps caller-supplied meta/values byte slices instead of
// allocating new ones, so a Manager can sit directly atop the CnC file's
// mapped counters regions (cnc.Handle.CountersMeta/CountersValues) rather
// than a private heap copy.
func regionOverBuffers(meta, values []byte) *region {
	return &region{meta: meta, values: values}
}

func (r *region) max() int {
	return len(r.values) / CacheLineBytes
}

func (r *region) state(id int32) *int32 {
	return (*int32)(asPointer32(r.meta, int(id)*DescriptorSize))
}

func (r *region) writeDescriptor(id int32, typeID int32, label string, key []byte) {
	off := int(id) * DescriptorSize
	binary.LittleEndian.PutUint32(r.meta[off+4:], uint32(typeID))
	binary.LittleEndian.PutUint32(r.meta[off+8:], uint32(len(label)))
	copy(r.meta[off+12:off+12+LabelMaxLen], label)
	binary.LittleEndian.PutUint32(r.meta[off+12+LabelMaxLen:], uint32(len(key)))
	copy(r.meta[off+12+LabelMaxLen+4:off+DescriptorSize], key)
}

func (r *region) readDescriptor(id int32) Descriptor {
	off := int(id) * DescriptorSize
	typeID := int32(binary.LittleEndian.Uint32(r.meta[off+4:]))
	labelLen := binary.LittleEndian.Uint32(r.meta[off+8:])
	label := string(r.meta[off+12 : off+12+int(labelLen)])
	keyLen := binary.LittleEndian.Uint32(r.meta[off+12+LabelMaxLen:])
	keyOff := off + 12 + LabelMaxLen + 4
	key := append([]byte(nil), r.meta[keyOff:keyOff+int(keyLen)]...)
	return Descriptor{ID: id, TypeID: typeID, Label: label, Key: key}
}

func (r *region) valueSlot(id int32) *int64 {
	return asPointer64(r.values, int(id)*CacheLineBytes)
}

// SingleWriter is the Manager flavor documented for Conductor-only
// registration (spec.md §4.4, "single-writer"): Allocate and Free are only
// ever called from one goroutine, so the free list is a plain slice and the
// value slots use atomic load/store/add purely so readers on other agents
// observe a consistent 64-bit value.
type SingleWriter struct {
	r    *region
	next int32
	free []int32
}

// NewSingleWriter returns a Manager that assumes a single caller for
// Allocate/Free, backed by maxCounters worth of metadata and value slots.
func NewSingleWriter(maxCounters int) *SingleWriter {
	return &SingleWriter{r: newRegion(maxCounters)}
}

// NewSingleWriterOverBuffers returns a SingleWriter backed by meta and
// values, typically the CnC file's mapped counters-metadata and
// counters-values regions (cnc.Handle.CountersMeta/CountersValues), so
// counter state is visible to every process with the CnC file mapped.
func NewSingleWriterOverBuffers(meta, values []byte) *SingleWriter {
	return &SingleWriter{r: regionOverBuffers(meta, values)}
}

func (m *SingleWriter) Allocate(typeID int32, label string, key []byte) (int32, error) {
	if len(label) > LabelMaxLen {
		return 0, ErrLabelTooLong
	}

	var id int32
	if n := len(m.free); n > 0 {
		id = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		if int(m.next) >= m.r.max() {
			return 0, ErrFull
		}
		id = m.next
		m.next++
	}

	m.r.writeDescriptor(id, typeID, label, key)
	atomic.StoreInt64(m.r.valueSlot(id), 0)
	atomic.StoreInt32(m.r.state(id), stateActive)
	return id, nil
}

func (m *SingleWriter) Get(id int32) (Descriptor, bool) {
	if id < 0 || int(id) >= m.r.max() || atomic.LoadInt32(m.r.state(id)) != stateActive {
		return Descriptor{}, false
	}
	return m.r.readDescriptor(id), true
}

func (m *SingleWriter) Set(id int32, value int64) { atomic.StoreInt64(m.r.valueSlot(id), value) }
func (m *SingleWriter) Get64(id int32) int64       { return atomic.LoadInt64(m.r.valueSlot(id)) }
func (m *SingleWriter) Add(id int32, delta int64) int64 {
	return atomic.AddInt64(m.r.valueSlot(id), delta)
}

func (m *SingleWriter) Free(id int32) {
	atomic.StoreInt32(m.r.state(id), stateUnused)
	atomic.StoreInt64(m.r.valueSlot(id), 0)
	m.free = append(m.free, id)
}

func (m *SingleWriter) MaxCounters() int { return m.r.max() }

func (m *SingleWriter) Pointer(id int32) *int64 { return m.r.valueSlot(id) }

// Concurrent is the Manager flavor for multiple registering agents (spec.md
// §4.4, "concurrent"). Allocate and Free are serialized by a mutex that
// guards the free list and the next-slot cursor; no CAS loop is used, so a
// caller can block briefly while another goroutine holds the mutex.
type Concurrent struct {
	r    *region
	next int32
	mu   sync.Mutex
	free []int32
}

// NewConcurrent returns a Manager safe for concurrent Allocate/Free calls
// from any number of goroutines.
func NewConcurrent(maxCounters int) *Concurrent {
	return &Concurrent{r: newRegion(maxCounters)}
}

// NewConcurrentOverBuffers returns a Concurrent Manager backed by meta and
// values, typically the CnC file's mapped counters regions, for the
// multi-agent-registration flavor (spec.md §4.4 "concurrent").
func NewConcurrentOverBuffers(meta, values []byte) *Concurrent {
	return &Concurrent{r: regionOverBuffers(meta, values)}
}

func (m *Concurrent) Allocate(typeID int32, label string, key []byte) (int32, error) {
	if len(label) > LabelMaxLen {
		return 0, ErrLabelTooLong
	}

	id, err := m.takeSlot()
	if err != nil {
		return 0, err
	}

	m.r.writeDescriptor(id, typeID, label, key)
	atomic.StoreInt64(m.r.valueSlot(id), 0)
	atomic.StoreInt32(m.r.state(id), stateActive)
	return id, nil
}

func (m *Concurrent) takeSlot() (int32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n := len(m.free); n > 0 {
		id := m.free[n-1]
		m.free = m.free[:n-1]
		return id, nil
	}

	next := atomic.AddInt32(&m.next, 1) - 1
	if int(next) >= m.r.max() {
		atomic.AddInt32(&m.next, -1)
		return 0, ErrFull
	}
	return next, nil
}

func (m *Concurrent) Get(id int32) (Descriptor, bool) {
	if id < 0 || int(id) >= m.r.max() || atomic.LoadInt32(m.r.state(id)) != stateActive {
		return Descriptor{}, false
	}
	return m.r.readDescriptor(id), true
}

func (m *Concurrent) Set(id int32, value int64) { atomic.StoreInt64(m.r.valueSlot(id), value) }
func (m *Concurrent) Get64(id int32) int64       { return atomic.LoadInt64(m.r.valueSlot(id)) }
func (m *Concurrent) Add(id int32, delta int64) int64 {
	return atomic.AddInt64(m.r.valueSlot(id), delta)
}

func (m *Concurrent) Free(id int32) {
	atomic.StoreInt32(m.r.state(id), stateUnused)
	atomic.StoreInt64(m.r.valueSlot(id), 0)
	m.mu.Lock()
	m.free = append(m.free, id)
	m.mu.Unlock()
}

func (m *Concurrent) MaxCounters() int { return m.r.max() }

func (m *Concurrent) Pointer(id int32) *int64 { return m.r.valueSlot(id) }
