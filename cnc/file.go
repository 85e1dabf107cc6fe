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

package cnc

import (
	"os"
	"path/filepath"
	"sync/atomic"

	uuid "github.com/hashicorp/go-uuid"
	"github.com/xujiajun/mmap-go"
)

// Handle is the mapped CnC file, exposing byte-slice views over each
// region per spec.md §4.3's "sub-buffer views". Every view aliases the
// single underlying mmap region; writes through a view are visible to any
// other process with the same file mapped.
type Handle struct {
	path   string
	file   *os.File
	region mmap.MMap
	off    layoutOffsets
	owned  bool
}

// Create builds a new CnC file at dir/FileName sized per lengths, writes
// the meta-header in the order the builder requires, and memory-maps it
// read/write. The ready-signal word is left at 0 (not ready); call
// SignalReady once every consumer of the handle has finished binding to
// it, per spec.md §4.8 step 12.
func Create(dir string, lengths RegionLengths, clientLivenessTimeoutNs int64, startTimestampMs int64) (*Handle, error) {
	off := computeOffsets(lengths)
	path := filepath.Join(dir, FileName)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	if err := f.Truncate(int64(off.total)); err != nil {
		_ = f.Close()
		return nil, err
	}

	region, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	id, err := uuid.GenerateRandomBytes(instanceIDLength)
	if err != nil {
		_ = region.Unmap()
		_ = f.Close()
		return nil, err
	}

	writeMetaHeader(region[:MetaHeaderLength], lengths, clientLivenessTimeoutNs, startTimestampMs, id)

	return &Handle{path: path, file: f, region: region, off: off, owned: true}, nil
}

// Open memory-maps an existing CnC file at dir/FileName without modifying
// its contents, used by the Directory Arbiter to inspect a possibly-live
// driver's state.
func Open(dir string) (*Handle, error) {
	path := filepath.Join(dir, FileName)

	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}

	region, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	lengths := readRegionLengths(region[:MetaHeaderLength])
	off := computeOffsets(lengths)

	return &Handle{path: path, file: f, region: region, off: off, owned: true}, nil
}

// Path returns the backing file's absolute path.
func (h *Handle) Path() string { return h.path }

// InstanceID returns the UUID stamped into the meta-header at create time
// (spec.md §4.3/§4.9's driver instance identity), formatted as a standard
// UUID string. It is the same value both a live driver and a salvage pass
// over its mapped file observe.
func (h *Handle) InstanceID() string {
	s, err := uuid.FormatUUID(readInstanceID(h.region))
	if err != nil {
		return ""
	}
	return s
}

// IsReady reports whether the ready-signal word has been set.
func (h *Handle) IsReady() bool {
	return atomic.LoadUint32(h.readyWordPtr()) != 0
}

// SignalReady performs the release-semantics store of the ready-signal
// word, spec.md §3's "the ready-signal word is the last byte written
// during construction". Must be the final call made while concluding a new
// driver instance.
func (h *Handle) SignalReady() {
	atomic.StoreUint32(h.readyWordPtr(), 1)
}

func (h *Handle) readyWordPtr() *uint32 {
	return asUint32Ptr(h.region, offReadyWord)
}

// ConsumerHeartbeatMs returns the last heartbeat timestamp the Conductor
// wrote to the to-driver ring's consumer-heartbeat slot.
func (h *Handle) ConsumerHeartbeatMs() int64 {
	return int64(atomic.LoadUint64(asUint64Ptr(h.region, offConsumerHeartbeatMs)))
}

// SetConsumerHeartbeatMs updates the consumer-heartbeat slot, called by the
// Conductor on every work cycle (spec.md §4.8 step 11) and used by the
// Directory Arbiter's liveness check (spec.md §4.2 step 4a).
func (h *Handle) SetConsumerHeartbeatMs(nowMs int64) {
	atomic.StoreUint64(asUint64Ptr(h.region, offConsumerHeartbeatMs), uint64(nowMs))
}

// StartTimestampMs returns the startup timestamp recorded in the header.
func (h *Handle) StartTimestampMs() int64 {
	return int64(binaryReadUint64(h.region, offStartTimestampMs))
}

// ClientLivenessTimeoutNs returns the client-liveness timeout recorded in
// the header.
func (h *Handle) ClientLivenessTimeoutNs() int64 {
	return int64(binaryReadUint64(h.region, offClientLivenessTimeout))
}

// Conductor returns the to-driver conductor region view.
func (h *Handle) Conductor() []byte { return h.region[h.off.conductor:h.off.toClients] }

// ToClients returns the to-clients broadcast region view.
func (h *Handle) ToClients() []byte { return h.region[h.off.toClients:h.off.countersMeta] }

// CountersMeta returns the counters metadata region view.
func (h *Handle) CountersMeta() []byte { return h.region[h.off.countersMeta:h.off.countersValues] }

// CountersValues returns the counters values region view.
func (h *Handle) CountersValues() []byte { return h.region[h.off.countersValues:h.off.errorLog] }

// ErrorLog returns the error log region view.
func (h *Handle) ErrorLog() []byte { return h.region[h.off.errorLog:h.off.total] }

// Close unmaps the file. If this Handle created the file (Create, not
// Open), the file itself is left on disk for the next arbitration pass or
// post-mortem inspection.
func (h *Handle) Close() error {
	var firstErr error
	if err := h.region.Flush(); err != nil {
		firstErr = err
	}
	if err := h.region.Unmap(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := h.file.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
