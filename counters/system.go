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

// SystemTypeID is the fixed type-id every built-in system counter is
// registered with, distinguishing them from client-allocated stream/image
// counters sharing the same values buffer.
const SystemTypeID int32 = 0

// SystemCounter names one of the fixed, always-present counters a driver
// instance registers during conclude (spec.md §4.4, "a fixed enumeration").
// IDs are stable for the lifetime of a CnC file: a monitoring client that
// resolves SystemCounter labels once at startup can keep reading the same
// slot for as long as the driver is alive.
type SystemCounter int

const (
	SystemBytesSent SystemCounter = iota
	SystemBytesReceived
	SystemReceiverProxyFails
	SystemSenderProxyFails
	SystemConductorProxyFails
	SystemNakMessagesSent
	SystemNakMessagesReceived
	SystemStatusMessagesSent
	SystemStatusMessagesReceived
	SystemHeartbeatsSent
	SystemHeartbeatsReceived
	SystemRetransmitsSent
	SystemFlowControlUnderRuns
	SystemFlowControlOverRuns
	SystemInvalidPackets
	SystemErrors
	SystemShortSends
	SystemFreeFails
	SystemSentPosition
	SystemPublisherLimit
	SystemSubscriberPosition
	SystemClientTimeouts
	SystemConductorMaxCycleTime
	SystemConductorCycleTimeThresholdExceeded
	SystemSenderMaxCycleTime
	SystemSenderCycleTimeThresholdExceeded
	SystemReceiverMaxCycleTime
	SystemReceiverCycleTimeThresholdExceeded
	SystemNameResolverChanges
	SystemControllableIdleStrategy
	systemCounterCount
)

var systemCounterLabels = [systemCounterCount]string{
	SystemBytesSent:                            "Bytes sent",
	SystemBytesReceived:                        "Bytes received",
	SystemReceiverProxyFails:                    "Failed offers to ReceiverProxy",
	SystemSenderProxyFails:                      "Failed offers to SenderProxy",
	SystemConductorProxyFails:                   "Failed offers to DriverConductorProxy",
	SystemNakMessagesSent:                       "NAKs sent",
	SystemNakMessagesReceived:                   "NAKs received",
	SystemStatusMessagesSent:                    "Status Messages sent",
	SystemStatusMessagesReceived:                "Status Messages received",
	SystemHeartbeatsSent:                        "Heartbeats sent",
	SystemHeartbeatsReceived:                    "Heartbeats received",
	SystemRetransmitsSent:                       "Retransmits sent",
	SystemFlowControlUnderRuns:                  "Flow control under runs",
	SystemFlowControlOverRuns:                   "Flow control over runs",
	SystemInvalidPackets:                        "Invalid packets",
	SystemErrors:                                "Errors",
	SystemShortSends:                            "Short sends",
	SystemFreeFails:                             "Failed attempts to free log buffers",
	SystemSentPosition:                          "Sent Position",
	SystemPublisherLimit:                        "Publisher Limit",
	SystemSubscriberPosition:                    "Subscriber Position",
	SystemClientTimeouts:                        "Client liveness timeouts",
	SystemConductorMaxCycleTime:                 "Conductor max cycle time",
	SystemConductorCycleTimeThresholdExceeded:   "Conductor work cycle time exceeded threshold count",
	SystemSenderMaxCycleTime:                    "Sender max cycle time",
	SystemSenderCycleTimeThresholdExceeded:      "Sender work cycle time exceeded threshold count",
	SystemReceiverMaxCycleTime:                  "Receiver max cycle time",
	SystemReceiverCycleTimeThresholdExceeded:    "Receiver work cycle time exceeded threshold count",
	SystemNameResolverChanges:                   "Name resolver changes",
	SystemControllableIdleStrategy:               "Controllable idle strategy status",
}

// Label returns the human-readable label a system counter is registered
// under, used as its descriptor Label.
func (c SystemCounter) Label() string {
	if c < 0 || c >= systemCounterCount {
		return "Unknown system counter"
	}
	return systemCounterLabels[c]
}

// SystemCounters registers the fixed enumeration once against a Manager and
// exposes typed accessors keyed by SystemCounter, so callers never have to
// carry raw counter ids around.
type SystemCounters struct {
	mgr Manager
	ids [systemCounterCount]int32
}

// NewSystemCounters allocates one counter per SystemCounter value against
// mgr, in enumeration order, and returns the bound accessor. Allocation
// failures (an undersized values buffer) are returned immediately; a driver
// instance treats this as a conclude-time configuration error.
func NewSystemCounters(mgr Manager) (*SystemCounters, error) {
	sc := &SystemCounters{mgr: mgr}
	for i := SystemCounter(0); i < systemCounterCount; i++ {
		id, err := mgr.Allocate(SystemTypeID, i.Label(), nil)
		if err != nil {
			return nil, err
		}
		sc.ids[i] = id
	}
	return sc, nil
}

// ID returns the values-buffer slot id a system counter was registered at.
func (sc *SystemCounters) ID(c SystemCounter) int32 { return sc.ids[c] }

// Get reads the current value of a system counter.
func (sc *SystemCounters) Get(c SystemCounter) int64 { return sc.mgr.Get64(sc.ids[c]) }

// Set stores value into a system counter.
func (sc *SystemCounters) Set(c SystemCounter, value int64) { sc.mgr.Set(sc.ids[c], value) }

// Increment adds 1 to a system counter and returns its new value. It is the
// primary entry point proxies use to bump *_PROXY_FAILS on a rejected
// Offer.
func (sc *SystemCounters) Increment(c SystemCounter) int64 { return sc.mgr.Add(sc.ids[c], 1) }

// Add adds delta to a system counter and returns its new value.
func (sc *SystemCounters) Add(c SystemCounter, delta int64) int64 {
	return sc.mgr.Add(sc.ids[c], delta)
}

// Pointer returns the raw address of a system counter's value slot, for
// collaborators (idle.Controllable) that need to read it directly.
func (sc *SystemCounters) Pointer(c SystemCounter) *int64 { return sc.mgr.Pointer(sc.ids[c]) }

// Snapshot reads every system counter's current value, keyed by its
// descriptor label, for collaborators (admin package) that export them
// wholesale rather than one at a time.
func (sc *SystemCounters) Snapshot() map[string]int64 {
	out := make(map[string]int64, systemCounterCount)
	for i := SystemCounter(0); i < systemCounterCount; i++ {
		out[i.Label()] = sc.mgr.Get64(sc.ids[i])
	}
	return out
}
