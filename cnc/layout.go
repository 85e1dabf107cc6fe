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

// Package cnc implements the command-and-control file of spec.md §3/§4.3: a
// single memory-mapped region at a fixed path inside the driver's directory,
// laid out as a meta-header followed by five cache-line-aligned regions
// (conductor, to-clients, counters metadata, counters values, error log).
// The ready-signal word is written last with release-store semantics;
// clients spin on it and must not interpret any other region until it
// reads ready.
package cnc

import "encoding/binary"

// Alignment is the natural cache-line alignment every region boundary is
// rounded up to, per spec.md §4.3 ("implementer picks 64 bytes unless the
// format specifies otherwise").
const Alignment = 64

// Version is the current CnC meta-header format version.
const Version int32 = 1

// FileName is the fixed file name of the CnC file inside a driver's
// directory.
const FileName = "driver-cnc.dat"

// instanceIDLength is the raw byte width of the UUID stamped into the
// meta-header at create time (spec.md §4.3's instance-identity field).
const instanceIDLength = 16

// Meta-header field byte offsets. All integers are little-endian; 64-bit
// timestamps are ns or ms as documented on each field.
const (
	offVersion               = 0
	offConductorLength        = offVersion + 4
	offToClientsLength        = offConductorLength + 4
	offCountersMetaLength     = offToClientsLength + 4
	offCountersValuesLength   = offCountersMetaLength + 4
	offErrorLogLength         = offCountersValuesLength + 4
	offClientLivenessTimeout  = offErrorLogLength + 4
	offStartTimestampMs       = offClientLivenessTimeout + 8
	offConsumerHeartbeatMs    = offStartTimestampMs + 8
	offInstanceID             = offConsumerHeartbeatMs + 8
	offReadyWord              = offInstanceID + instanceIDLength
	metaHeaderRawLength       = offReadyWord + 4
)

// MetaHeaderLength is the meta-header size, rounded up to Alignment so the
// first region starts on a cache line boundary.
var MetaHeaderLength = alignUp(metaHeaderRawLength, Alignment)

func alignUp(n, to int) int {
	if n%to == 0 {
		return n
	}
	return ((n / to) + 1) * to
}

// RegionLengths is the caller-supplied size of each region, per spec.md
// §4.3's "region lengths" builder input.
type RegionLengths struct {
	Conductor       int
	ToClients       int
	CountersMeta    int
	CountersValues  int
	ErrorLog        int
}

// layoutOffsets is the set of aligned byte offsets derived from a
// RegionLengths, computed once at creation/mapping time.
type layoutOffsets struct {
	conductor      int
	toClients      int
	countersMeta   int
	countersValues int
	errorLog       int
	total          int
}

func computeOffsets(r RegionLengths) layoutOffsets {
	var o layoutOffsets
	cursor := MetaHeaderLength

	o.conductor = cursor
	cursor = alignUp(cursor+r.Conductor, Alignment)

	o.toClients = cursor
	cursor = alignUp(cursor+r.ToClients, Alignment)

	o.countersMeta = cursor
	cursor = alignUp(cursor+r.CountersMeta, Alignment)

	o.countersValues = cursor
	cursor = alignUp(cursor+r.CountersValues, Alignment)

	o.errorLog = cursor
	cursor = alignUp(cursor+r.ErrorLog, Alignment)

	o.total = cursor
	return o
}

// writeMetaHeader writes every meta-header field except the ready word, in
// the order spec.md §4.3 mandates: version, region lengths, timeout,
// timestamp, instance id. buf must be at least MetaHeaderLength bytes.
// instanceID must be exactly instanceIDLength bytes.
func writeMetaHeader(buf []byte, r RegionLengths, clientLivenessTimeoutNs int64, startTimestampMs int64, instanceID []byte) {
	binary.LittleEndian.PutUint32(buf[offVersion:], uint32(Version))
	binary.LittleEndian.PutUint32(buf[offConductorLength:], uint32(r.Conductor))
	binary.LittleEndian.PutUint32(buf[offToClientsLength:], uint32(r.ToClients))
	binary.LittleEndian.PutUint32(buf[offCountersMetaLength:], uint32(r.CountersMeta))
	binary.LittleEndian.PutUint32(buf[offCountersValuesLength:], uint32(r.CountersValues))
	binary.LittleEndian.PutUint32(buf[offErrorLogLength:], uint32(r.ErrorLog))
	binary.LittleEndian.PutUint64(buf[offClientLivenessTimeout:], uint64(clientLivenessTimeoutNs))
	binary.LittleEndian.PutUint64(buf[offStartTimestampMs:], uint64(startTimestampMs))
	binary.LittleEndian.PutUint64(buf[offConsumerHeartbeatMs:], uint64(startTimestampMs))
	copy(buf[offInstanceID:offInstanceID+instanceIDLength], instanceID)
}

func readInstanceID(buf []byte) []byte {
	id := make([]byte, instanceIDLength)
	copy(id, buf[offInstanceID:offInstanceID+instanceIDLength])
	return id
}

func readRegionLengths(buf []byte) RegionLengths {
	return RegionLengths{
		Conductor:      int(binary.LittleEndian.Uint32(buf[offConductorLength:])),
		ToClients:      int(binary.LittleEndian.Uint32(buf[offToClientsLength:])),
		CountersMeta:   int(binary.LittleEndian.Uint32(buf[offCountersMetaLength:])),
		CountersValues: int(binary.LittleEndian.Uint32(buf[offCountersValuesLength:])),
		ErrorLog:       int(binary.LittleEndian.Uint32(buf[offErrorLogLength:])),
	}
}
