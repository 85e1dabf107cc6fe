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

package admin

import (
	"context"
	"net"
	"net/http"

	ginsdk "github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	liberr "github.com/nabbar/mediadriver/errors"
)

// server is the admin.Server implementation: a gin engine serving /healthz
// and /metrics behind a plain *http.Server, keeping the route handler
// separate from the listener lifecycle.
type server struct {
	opts Options
	srv  *http.Server
	addr string
}

func (s *server) engine() http.Handler {
	ginsdk.SetMode(ginsdk.ReleaseMode)
	e := ginsdk.New()
	e.Use(ginsdk.Recovery())

	e.GET("/healthz", s.handleHealthz)

	if s.opts.Counters != nil {
		reg := prometheus.NewRegistry()
		reg.MustRegister(newCounterCollector(s.opts.Counters))
		h := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
		e.GET("/metrics", ginsdk.WrapH(h))
	}

	return e
}

// handleHealthz reports plain "ready" text with 200 when ready, and otherwise
// aborts with 503 and a structured errors.DefaultReturn body so a caller scraping
// /healthz after a Salvage event gets the same error/code shape the rest of
// the driver reports through.
func (s *server) handleHealthz(c *ginsdk.Context) {
	if s.opts.Ready != nil && s.opts.Ready() {
		c.String(http.StatusOK, "ready")
		return
	}

	ret := &liberr.DefaultReturn{}
	ret.SetError(int(liberr.MinPkgStatus), "agent not ready", "admin/server.go", 0)
	ret.GinTonicAbort(c, http.StatusServiceUnavailable)
}

// Start binds the listener synchronously and begins serving in the
// background; Serve's terminal error (anything but http.ErrServerClosed)
// is delivered once on errCh.
func (s *server) Start() (<-chan error, error) {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return nil, err
	}
	s.addr = ln.Addr().String()

	s.srv = &http.Server{Handler: s.engine()}

	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	return errCh, nil
}

func (s *server) Addr() string { return s.addr }

func (s *server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.opts.ShutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
