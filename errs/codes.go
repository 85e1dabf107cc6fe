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

// Package errs registers the driver's error-code ranges on top of the
// generic github.com/nabbar/mediadriver/errors package, and implements the
// error taxonomy of spec.md §7: ConfigurationError, ActiveDriver and
// IoError are CodeError families; agent panics and proxy-offer failures use
// plain codes since they are never fatal to the whole driver.
package errs

import (
	liberr "github.com/nabbar/mediadriver/errors"
)

// Configuration errors: 6100-6199.
const (
	ConfigMTU liberr.CodeError = iota + 6100
	ConfigTermBuffer
	ConfigPublicationTermBuffer
	ConfigInitialWindow
	ConfigThreadingMode
)

// Directory / CnC arbitration errors: 6200-6299.
const (
	DirectoryActiveDriver liberr.CodeError = iota + 6200
	DirectoryIO
	DirectorySalvage
	CncCreate
	CncMap
	CncReadyTimeout
)

// Runtime / agent errors: 6300-6399.
const (
	AgentPanic liberr.CodeError = iota + 6300
	QueueFull
	ErrorLogFull
	PlatformTimer
)

var messages = map[liberr.CodeError]string{
	ConfigMTU:                   "mtu length out of bounds [header+min-payload, max-udp]",
	ConfigTermBuffer:             "term buffer length must be a power of two within [min, max]",
	ConfigPublicationTermBuffer:  "publication term buffer length exceeds max term buffer length",
	ConfigInitialWindow:          "initial window length must be less than the socket receive buffer",
	ConfigThreadingMode:         "unknown or unsupported threading mode",
	DirectoryActiveDriver:       "an active driver already owns this directory",
	DirectoryIO:                 "directory arbitration I/O failure",
	DirectorySalvage:            "failed to salvage error log from stale driver directory",
	CncCreate:                   "failed to create the cnc file",
	CncMap:                      "failed to memory-map the cnc file",
	CncReadyTimeout:             "timed out waiting for cnc ready signal",
	AgentPanic:                  "agent do_work panicked",
	QueueFull:                   "command queue is full",
	ErrorLogFull:                "error log region is full",
	PlatformTimer:               "failed to toggle platform high-resolution timer",
}

func message(code liberr.CodeError) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return liberr.UnknownMessage
}

func init() {
	liberr.RegisterIdFctMessage(ConfigMTU, message)
	liberr.RegisterIdFctMessage(DirectoryActiveDriver, message)
	liberr.RegisterIdFctMessage(AgentPanic, message)
}

// IsActiveDriver reports whether err carries the DirectoryActiveDriver code,
// the spec.md §7 "ActiveDriver" fatal condition.
func IsActiveDriver(err error) bool {
	e, ok := err.(liberr.Error)
	return ok && e.HasCode(DirectoryActiveDriver)
}

// IsConfigurationError reports whether err carries any of the configuration
// error codes, the spec.md §7 "ConfigurationError" fatal condition.
func IsConfigurationError(err error) bool {
	e, ok := err.(liberr.Error)
	if !ok {
		return false
	}
	for _, c := range []liberr.CodeError{ConfigMTU, ConfigTermBuffer, ConfigPublicationTermBuffer, ConfigInitialWindow, ConfigThreadingMode} {
		if e.HasCode(c) {
			return true
		}
	}
	return false
}
