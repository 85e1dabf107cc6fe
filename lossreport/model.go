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

package lossreport

import (
	"encoding/binary"
	"os"
	"sync"

	"github.com/xujiajun/mmap-go"
)

// mapped is the mmap-backed Report used by a live driver instance: a
// fixed-length file, zero-initialized at creation, with records appended
// sequentially from offset 0. The write cursor is kept in-process; reading
// back Entries replays the mapped bytes up to the cursor.
type mapped struct {
	mu     sync.Mutex
	file   *os.File
	region mmap.MMap
	cursor int
}

// Create allocates (or truncates) the file at path to length bytes, zeroes
// it, maps it RDWR, and returns a Report ready to append records. length
// must be large enough for at least one Entry or Record always fails.
func Create(path string, length int) (Report, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}

	if err := f.Truncate(int64(length)); err != nil {
		_ = f.Close()
		return nil, err
	}

	region, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &mapped{file: f, region: region}, nil
}

func (m *mapped) Record(entry Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cursor+EntrySize > len(m.region) {
		return ErrFull
	}
	if len(entry.Reason) > ReasonMaxLen {
		entry.Reason = entry.Reason[:ReasonMaxLen]
	}

	encodeEntry(m.region[m.cursor:m.cursor+EntrySize], entry)
	m.cursor += EntrySize
	return nil
}

func (m *mapped) Entries() ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.cursor / EntrySize
	out := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		off := i * EntrySize
		out = append(out, decodeEntry(m.region[off:off+EntrySize]))
	}
	return out, nil
}

func (m *mapped) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	if err := m.region.Flush(); err != nil {
		firstErr = err
	}
	if err := m.region.Unmap(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := m.file.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

func encodeEntry(buf []byte, e Entry) {
	binary.LittleEndian.PutUint64(buf[0:], uint64(e.ObservationCount))
	binary.LittleEndian.PutUint64(buf[8:], uint64(e.TotalBytesLost))
	binary.LittleEndian.PutUint32(buf[16:], uint32(e.SessionID))
	binary.LittleEndian.PutUint32(buf[20:], uint32(e.StreamID))
	binary.LittleEndian.PutUint32(buf[24:], uint32(e.TermID))
	binary.LittleEndian.PutUint32(buf[28:], uint32(e.TermOffset))
	binary.LittleEndian.PutUint32(buf[32:], uint32(len(e.Reason)))
	copy(buf[36:36+ReasonMaxLen], e.Reason)
}

func decodeEntry(buf []byte) Entry {
	reasonLen := binary.LittleEndian.Uint32(buf[32:])
	if int(reasonLen) > ReasonMaxLen {
		reasonLen = ReasonMaxLen
	}
	return Entry{
		ObservationCount: int64(binary.LittleEndian.Uint64(buf[0:])),
		TotalBytesLost:   int64(binary.LittleEndian.Uint64(buf[8:])),
		SessionID:        int32(binary.LittleEndian.Uint32(buf[16:])),
		StreamID:         int32(binary.LittleEndian.Uint32(buf[20:])),
		TermID:           int32(binary.LittleEndian.Uint32(buf[24:])),
		TermOffset:       int32(binary.LittleEndian.Uint32(buf[28:])),
		Reason:           string(buf[36 : 36+reasonLen]),
	}
}
