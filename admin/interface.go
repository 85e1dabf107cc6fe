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

// Package admin exposes a concluded driver instance's system counters and
// CnC readiness over HTTP: a Prometheus gauge per spec.md §4.4 system
// counter and a /healthz probe that reports ready only once the CnC file's
// ready-signal word is set. This is a supplemented feature, not named by
// spec.md itself, added because every long-running driver instance this
// module's ambient stack produces gets one.
package admin

import (
	"context"
	"net/http"
	"time"
)

// Options configures one admin HTTP surface.
type Options struct {
	// Addr is the listen address, e.g. "127.0.0.1:9090".
	Addr string
	// Ready reports whether the concluded driver instance is ready to
	// serve traffic; wired to cnc.Handle.IsReady.
	Ready func() bool
	// Counters supplies the current value of every system counter by
	// label, wired to counters.SystemCounters.
	Counters CounterSource
	// ShutdownTimeout bounds how long Shutdown waits for in-flight
	// requests to finish; defaults to 5s.
	ShutdownTimeout time.Duration
}

// CounterSource is the read-only view of the system counters the admin
// surface's Prometheus collector pulls from on every scrape.
type CounterSource interface {
	// Snapshot returns the current value of every system counter, keyed
	// by its descriptor label.
	Snapshot() map[string]int64
}

// Server runs the admin HTTP surface for the lifetime of a driver instance.
type Server interface {
	// Start begins serving in the background. It returns once the
	// listener is bound; Serve errors after that point are delivered to
	// errCh.
	Start() (errCh <-chan error, err error)
	// Addr returns the bound listener address. Only meaningful after Start
	// returns successfully; useful when Options.Addr used the ":0"
	// ephemeral-port convention.
	Addr() string
	// Shutdown gracefully stops the server, honoring Options.ShutdownTimeout.
	Shutdown(ctx context.Context) error
}

// New returns a Server configured per opts, not yet listening.
func New(opts Options) Server {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	return &server{opts: opts}
}

// httpHandler is satisfied by *gin.Engine; declared here so server.go's
// Handler field type does not leak the gin import into this file.
type httpHandler = http.Handler
