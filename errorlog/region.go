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
	"sync/atomic"
	"time"
	"unsafe"
)

// RecordStride is the fixed byte width of one record in a region-backed Log,
// chosen so a driver instance's error-log region (cnc.Handle.ErrorLog) and a
// salvage pass over a stale instance's same region always agree on layout.
const RecordStride = 256

// recordHeaderSize is the fixed-field portion of a record, per spec.md
// §4.7's "(first_ts, last_ts, count, stack-hash, stack-text)" tuple; the
// remaining RecordStride-recordHeaderSize bytes hold stack-text, truncated
// if it does not fit.
const recordHeaderSize = 44

const (
	stateUnused int32 = 0
	stateActive int32 = 1
)

// regionBuffer is a Log backed directly by a fixed-stride byte region,
// typically the CnC file's mapped error-log view, so every process with
// the CnC file mapped observes the same records (spec.md §4.7, "append-only
// log in the CnC error region"). Allocating a slot for a brand-new stack is
// lock-free: it races on an atomic cursor via CompareAndSwap rather than a
// mutex, per spec.md §5's "lock-free concurrent append via atomic slot
// allocation" (unlike counters.Concurrent.takeSlot, which takes a mutex).
// A dedupe race between two first-time observations of
// the same stack can, in the rare case, allocate two slots instead of
// incrementing one; that is an accepted trade-off for never blocking or
// locking on the hot path, matching the "best effort" character spec.md §7
// gives the whole error-handling path.
type regionBuffer struct {
	region []byte
	stride int
	cap    int
	next   int32
}

// NewOverBuffer returns a Log backed by region, sliced into fixed-width
// stride records. stride must be a multiple of 8 so each record's atomic
// fields stay naturally aligned; RecordStride satisfies this.
func NewOverBuffer(region []byte, stride int) Log {
	cap := 0
	if stride > 0 {
		cap = len(region) / stride
	}
	return &regionBuffer{region: region, stride: stride, cap: cap}
}

func (b *regionBuffer) slot(i int32) []byte {
	off := int(i) * b.stride
	return b.region[off : off+b.stride]
}

func (b *regionBuffer) statePtr(i int32) *int32  { return (*int32)(unsafe.Pointer(&b.slot(i)[0])) }
func (b *regionBuffer) hashPtr(i int32) *uint64  { return (*uint64)(unsafe.Pointer(&b.slot(i)[8])) }
func (b *regionBuffer) firstPtr(i int32) *int64  { return (*int64)(unsafe.Pointer(&b.slot(i)[16])) }
func (b *regionBuffer) lastPtr(i int32) *int64   { return (*int64)(unsafe.Pointer(&b.slot(i)[24])) }
func (b *regionBuffer) countPtr(i int32) *int64  { return (*int64)(unsafe.Pointer(&b.slot(i)[32])) }
func (b *regionBuffer) textLenPtr(i int32) *uint32 {
	return (*uint32)(unsafe.Pointer(&b.slot(i)[40]))
}
func (b *regionBuffer) text(i int32) []byte { return b.slot(i)[recordHeaderSize:] }

func (b *regionBuffer) Record(stackText string, now time.Time) bool {
	h := stackHash(stackText)
	ns := now.UnixNano()

	n := atomic.LoadInt32(&b.next)
	for i := int32(0); i < n; i++ {
		if atomic.LoadInt32(b.statePtr(i)) != stateActive {
			continue
		}
		if atomic.LoadUint64(b.hashPtr(i)) == h {
			atomic.StoreInt64(b.lastPtr(i), ns)
			atomic.AddInt64(b.countPtr(i), 1)
			return true
		}
	}

	for {
		cur := atomic.LoadInt32(&b.next)
		if int(cur) >= b.cap {
			return false
		}
		if atomic.CompareAndSwapInt32(&b.next, cur, cur+1) {
			b.writeNew(cur, h, ns, stackText)
			return true
		}
	}
}

func (b *regionBuffer) writeNew(i int32, h uint64, ns int64, stackText string) {
	maxText := b.stride - recordHeaderSize
	txt := []byte(stackText)
	if len(txt) > maxText {
		txt = txt[:maxText]
	}
	copy(b.text(i), txt)
	atomic.StoreUint64(b.hashPtr(i), h)
	atomic.StoreInt64(b.firstPtr(i), ns)
	atomic.StoreInt64(b.lastPtr(i), ns)
	atomic.StoreInt64(b.countPtr(i), 1)
	atomic.StoreUint32(b.textLenPtr(i), uint32(len(txt)))
	atomic.StoreInt32(b.statePtr(i), stateActive)
}

func (b *regionBuffer) Snapshot() []Record {
	n := atomic.LoadInt32(&b.next)
	out := make([]Record, 0, n)
	for i := int32(0); i < n; i++ {
		if atomic.LoadInt32(b.statePtr(i)) != stateActive {
			continue
		}
		l := atomic.LoadUint32(b.textLenPtr(i))
		out = append(out, Record{
			FirstObservationNs: atomic.LoadInt64(b.firstPtr(i)),
			LastObservationNs:  atomic.LoadInt64(b.lastPtr(i)),
			ObservationCount:   atomic.LoadInt64(b.countPtr(i)),
			StackHash:          atomic.LoadUint64(b.hashPtr(i)),
			StackText:          string(b.text(i)[:l]),
		})
	}
	return out
}

func (b *regionBuffer) Len() int      { return int(atomic.LoadInt32(&b.next)) }
func (b *regionBuffer) Capacity() int { return b.cap }
