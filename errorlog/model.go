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

package errorlog

import (
	"hash/fnv"
	"sync"
	"time"
)

// buffer is a fixed-capacity, hash-deduplicating Log. It stands in for the
// CnC error log byte region: capacity is fixed at construction, records
// never move once appended, and Record is the only mutating path multiple
// goroutines are allowed to call concurrently.
type buffer struct {
	mu      sync.Mutex
	records []Record
	index   map[uint64]int
	cap     int
}

// New returns a Log that holds at most capacity distinct stacks.
func New(capacity int) Log {
	return &buffer{
		index: make(map[uint64]int, capacity),
		cap:   capacity,
	}
}

func stackHash(stackText string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(stackText))
	return h.Sum64()
}

func (b *buffer) Record(stackText string, now time.Time) bool {
	h := stackHash(stackText)
	ns := now.UnixNano()

	b.mu.Lock()
	defer b.mu.Unlock()

	if i, ok := b.index[h]; ok {
		b.records[i].LastObservationNs = ns
		b.records[i].ObservationCount++
		return true
	}

	if len(b.records) >= b.cap {
		return false
	}

	b.index[h] = len(b.records)
	b.records = append(b.records, Record{
		FirstObservationNs: ns,
		LastObservationNs:  ns,
		ObservationCount:   1,
		StackHash:          h,
		StackText:          stackText,
	})
	return true
}

func (b *buffer) Snapshot() []Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Record, len(b.records))
	copy(out, b.records)
	return out
}

func (b *buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.records)
}

func (b *buffer) Capacity() int { return b.cap }
