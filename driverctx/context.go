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

// Package driverctx binds every other package into one running driver
// instance, implementing the Context Conclude procedure of spec.md §4.8:
// validate configuration, claim the state directory, map the CnC file,
// build the counters/error-log/loss-report/queue collaborators, assemble
// the agent runtime under the configured threading mode, and finally
// signal the CnC file ready. Close unwinds the same set of resources in
// reverse.
package driverctx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"github.com/nabbar/mediadriver/agent"
	"github.com/nabbar/mediadriver/arbiter"
	"github.com/nabbar/mediadriver/clock"
	"github.com/nabbar/mediadriver/cnc"
	"github.com/nabbar/mediadriver/counters"
	"github.com/nabbar/mediadriver/driverconfig"
	"github.com/nabbar/mediadriver/errorlog"
	"github.com/nabbar/mediadriver/errs"
	"github.com/nabbar/mediadriver/idle"
	"github.com/nabbar/mediadriver/logger"
	"github.com/nabbar/mediadriver/lossreport"
	"github.com/nabbar/mediadriver/platformtimer"
	"github.com/nabbar/mediadriver/queue"
)

const (
	lossReportFileName = "loss-report.dat"

	cmdQueueCapacity  = 1024
	toDriverCapacity  = 4096
	maxSystemCounters = 64
)

// Context is one concluded driver instance: every collaborator the three
// agents share, plus the running Assembly. The zero value is not usable;
// build one with New.
type Context struct {
	knobs *driverconfig.Knobs
	log   logger.FuncLog

	handle     *cnc.Handle
	sysCounter *counters.SystemCounters
	errLog     errorlog.Log
	loss       lossreport.Report
	timer      platformtimer.Timer

	toDriver   *queue.MPSC
	toSender   *queue.SPSC
	toReceiver *queue.SPSC
	conductor  *proxy

	assembly *agent.Assembly
	clk      clock.Clock
}

// Options overrides the collaborators New would otherwise construct from
// Knobs alone; every field is optional and exists chiefly for tests that
// need a deterministic Clock or a stubbed Salvage step.
type Options struct {
	Clock  clock.Clock
	Log    logger.FuncLog
	Now    func() time.Time
	Salvage func(h *cnc.Handle, parentDir string) error
}

// defaultErrorHandler records each agent fault into errLog, stamping the
// driver instance's UUID (cnc.Handle.InstanceID) onto the stack text so a
// salvaged log can be traced back to the exact instance that produced it,
// per spec.md §4.9's per-instance error identity.
func defaultErrorHandler(instanceID string, errLog errorlog.Log, clk clock.Clock, log logger.FuncLog) agent.ErrorHandler {
	return func(role string, err error) {
		if err == nil {
			return
		}
		if errLog.Record(fmt.Sprintf("[%s] %s: %v", instanceID, role, err), time.UnixMilli(clk.NowMs())) {
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, color.RedString("%s: %v (error log full)", role, err))
		if log != nil {
			if l := log(); l != nil {
				l.Error(fmt.Sprintf("%s: error log full", role), err)
			}
		}
	}
}

// New runs the Context Conclude procedure of spec.md §4.8 against k,
// returning a fully assembled, CnC-ready Context. Any step failing before
// the CnC ready signal tears down every resource acquired so far and
// returns the error; no partial CnC file is left marked ready.
func New(k *driverconfig.Knobs, opts Options) (c *Context, err error) {
	if err = k.Validate(); err != nil {
		return nil, err
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.System()
	}

	var built Context
	built.knobs = k
	built.clk = clk
	built.log = opts.Log

	defer func() {
		if err != nil {
			built.teardown()
		}
	}()

	salvage := opts.Salvage
	if salvage == nil {
		salvage = arbiter.DefaultSalvage
	}

	if err = arbiter.Arbitrate(arbiter.Options{
		Dir:             k.DirectoryPath,
		LivenessTimeout: k.ClientLivenessTimeout,
		WarnIfExists:    k.WarnIfDirectoryExists,
		DeleteOnStart:   k.DirDeleteOnStart,
		Salvage:         salvage,
		Now:             opts.Now,
	}); err != nil {
		return nil, err
	}

	lengths := cnc.RegionLengths{
		Conductor:      k.MaxTermBufferLength / 256,
		ToClients:      k.MaxTermBufferLength / 256,
		CountersMeta:   maxSystemCounters * counters.DescriptorSize,
		CountersValues: maxSystemCounters * counters.CacheLineBytes,
		ErrorLog:       maxSystemCounters * errorlog.RecordStride,
	}

	handle, err := cnc.Create(k.DirectoryPath, lengths, int64(k.ClientLivenessTimeout), clk.NowMs())
	if err != nil {
		return nil, errs.CncCreate.Error(err)
	}
	built.handle = handle

	built.toDriver = queue.NewMPSC(toDriverCapacity)
	built.toSender = queue.NewSPSC(cmdQueueCapacity)
	built.toReceiver = queue.NewSPSC(cmdQueueCapacity)

	built.errLog = errorlog.NewOverBuffer(handle.ErrorLog(), errorlog.RecordStride)

	sysCounters, err := counters.NewSystemCounters(counters.NewConcurrentOverBuffers(handle.CountersMeta(), handle.CountersValues()))
	if err != nil {
		return nil, err
	}
	built.sysCounter = sysCounters
	built.conductor = newConductorProxy(built.toDriver, built.sysCounter)

	built.loss, err = lossreport.Create(filepath.Join(k.DirectoryPath, lossReportFileName), lossReportEntries*lossreport.EntrySize)
	if err != nil {
		return nil, errs.DirectoryIO.Error(err)
	}

	if k.UseWindowsHighResTimer {
		built.timer = platformtimer.New()
		if err = built.timer.Enable(); err != nil {
			return nil, errs.PlatformTimer.Error(err)
		}
	}

	strategies, err := buildIdleStrategies(k, built.sysCounter)
	if err != nil {
		return nil, err
	}

	mode, err := agent.ParseThreadingMode(k.ThreadingMode)
	if err != nil {
		return nil, err
	}

	sender := &senderWorker{toSender: built.toSender, sys: built.sysCounter}
	receiver := &receiverWorker{toReceiver: built.toReceiver, sys: built.sysCounter}

	// The Conductor and Sender/Receiver share one running unit in INVOKER
	// and SHARED mode (agent.Assemble's same mode tag), so spec.md §4.5's
	// inline-dispatch invariant applies: the sender/receiver proxies must
	// call the worker's Handle directly and never touch the inter-agent
	// queue in those two modes.
	inlineDispatch := mode == agent.Invoker || mode == agent.Shared

	conductor := &conductorWorker{
		handle:     built.handle,
		clk:        clk,
		toDriver:   built.toDriver,
		toSender:   newSenderProxy(built.toSender, built.sysCounter, inlineDispatch, sender.Handle),
		toReceiver: newReceiverProxy(built.toReceiver, built.sysCounter, inlineDispatch, receiver.Handle),
		sys:        built.sysCounter,
	}

	built.assembly, err = agent.Assemble(mode, conductor, sender, receiver, strategies, defaultErrorHandler(handle.InstanceID(), built.errLog, clk, built.log))
	if err != nil {
		return nil, err
	}

	built.handle.SetConsumerHeartbeatMs(clk.NowMs())
	built.handle.SignalReady()

	return &built, nil
}

const lossReportEntries = 4096

func buildIdleStrategies(k *driverconfig.Knobs, sys *counters.SystemCounters) (agent.IdleStrategies, error) {
	var (
		s   agent.IdleStrategies
		err error
	)

	if s.Conductor, err = resolveIdle(k.IdleStrategyConductor, sys); err != nil {
		return s, err
	}
	if s.Sender, err = resolveIdle(k.IdleStrategySender, sys); err != nil {
		return s, err
	}
	if s.Receiver, err = resolveIdle(k.IdleStrategyReceiver, sys); err != nil {
		return s, err
	}
	if s.Shared, err = resolveIdle(k.IdleStrategyShared, sys); err != nil {
		return s, err
	}
	if s.SharedNetwork, err = resolveIdle(k.IdleStrategySharedNetwork, sys); err != nil {
		return s, err
	}
	return s, nil
}

func resolveIdle(name string, sys *counters.SystemCounters) (idle.Strategy, error) {
	if name == "controllable" {
		return idle.NewControllable(sys.Pointer(counters.SystemControllableIdleStrategy)), nil
	}
	return idle.New(name)
}

// Close stops every running agent and tears down every resource the
// Context acquired, in the reverse order Conclude acquired them.
func (c *Context) Close() error {
	var firstErr error
	note := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if c.assembly != nil {
		if c.assembly.Mode == agent.Invoker {
			if c.assembly.InvokerAgent != nil {
				note(c.assembly.InvokerAgent.OnClose())
			}
		} else {
			note(c.assembly.Stop(context.Background()))
		}
	}
	c.teardown()
	return firstErr
}

func (c *Context) teardown() {
	if c.timer != nil {
		_ = c.timer.Disable()
	}
	if c.loss != nil {
		_ = c.loss.Close()
	}
	if c.handle != nil {
		_ = c.handle.Close()
	}
}

// Handle exposes the concluded CnC file handle, chiefly for tests and the
// admin surface's readiness probe.
func (c *Context) Handle() *cnc.Handle { return c.handle }

// SystemCounters exposes the bound system counters, chiefly for the admin
// surface's Prometheus gauges.
func (c *Context) SystemCounters() *counters.SystemCounters { return c.sysCounter }

// ErrorLog exposes the bound error log, chiefly for tests and the admin
// surface.
func (c *Context) ErrorLog() errorlog.Log { return c.errLog }

// Assembly exposes the running agent assembly, so a caller in INVOKER mode
// can pump it and every other caller can Start it.
func (c *Context) Assembly() *agent.Assembly { return c.assembly }

// Submit offers cmd to the to-driver inbox through the conductor proxy,
// the single entry point a client-facing transport uses to reach the
// Conductor (spec.md §4.5). It never blocks: a full inbox counts against
// SystemConductorProxyFails and returns false.
func (c *Context) Submit(cmd queue.Command) bool { return c.conductor.Offer(cmd) }
