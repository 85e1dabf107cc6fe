/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
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

// Package hooksyslog provides a logrus hook for writing log entries to syslog.
//
// logger.NewHookSyslog builds one per Options.LogSyslog destination: Fire
// queues a formatted entry onto a 250-entry buffered channel keyed by
// SyslogSeverity rather than blocking the caller on syslog I/O, and Run
// drains that channel in the background, retrying the connection every
// second if the syslog daemon is unreachable — so a conductor reporting a
// Salvage event through the arbiter never stalls on a down log sink.
//
// Unix/Linux (sys_syslog.go) writes through log/syslog; Windows (sys_winlog.go)
// writes through golang.org/x/sys/windows/svc/eventlog, collapsing severities
// into Error/Warning/Info event types. DisableStack/DisableTimestamp/EnableTrace
// filter the same fields as the other hooks; EnableAccessLog switches Fire to
// write entry.Message verbatim instead of the formatted field set.
package hooksyslog
