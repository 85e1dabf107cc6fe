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

package agent

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/nabbar/mediadriver/errs"
	"github.com/nabbar/mediadriver/idle"
)

// ThreadingMode is the driver's threading configuration, per spec.md §4.9.
// Exactly one is live for the lifetime of a driver instance.
type ThreadingMode int

const (
	Invoker ThreadingMode = iota
	Shared
	SharedNetwork
	Dedicated
)

func (m ThreadingMode) String() string {
	switch m {
	case Invoker:
		return "INVOKER"
	case Shared:
		return "SHARED"
	case SharedNetwork:
		return "SHARED_NETWORK"
	case Dedicated:
		return "DEDICATED"
	default:
		return "UNKNOWN"
	}
}

// ParseThreadingMode maps a configuration string to a ThreadingMode.
func ParseThreadingMode(s string) (ThreadingMode, error) {
	switch s {
	case "INVOKER":
		return Invoker, nil
	case "SHARED":
		return Shared, nil
	case "SHARED_NETWORK":
		return SharedNetwork, nil
	case "DEDICATED":
		return Dedicated, nil
	default:
		return 0, errs.ConfigThreadingMode.Errorf(s)
	}
}

// IdleStrategies supplies the four per-agent idle-strategy slots plus the
// SHARED_NETWORK slot spec.md §9's configuration knobs enumerate. Only the
// slots the chosen ThreadingMode actually uses need be non-nil.
type IdleStrategies struct {
	Conductor      idle.Strategy
	Sender         idle.Strategy
	Receiver       idle.Strategy
	Shared         idle.Strategy
	SharedNetwork  idle.Strategy
}

// Assembly is the running set of Runners a concluded driver instance holds
// for its configured ThreadingMode; unused fields are left nil, matching
// spec.md §4.9's "unused slots are null/empty" invariant.
type Assembly struct {
	Mode ThreadingMode

	// INVOKER mode: no Runner at all; Invoker drives work on the caller's
	// goroutine via Pump.
	InvokerAgent Agent

	// SHARED mode.
	SharedRunner Runner

	// SHARED_NETWORK mode.
	NetworkRunner    Runner
	ConductorRunner2 Runner

	// DEDICATED mode.
	ConductorRunner Runner
	SenderRunner    Runner
	ReceiverRunner  Runner
}

// Assemble builds the Runner (or bare Agent, for INVOKER) configuration
// for mode out of the three base agents, per spec.md §4.9's mapping table.
// The same mode tag used here must also govern how each agent's proxies
// dispatch (queue package / proxies), so the inline-dispatch invariant for
// SHARED-family modes is honored end to end.
func Assemble(mode ThreadingMode, conductor, sender, receiver Agent, strategies IdleStrategies, handler ErrorHandler) (*Assembly, error) {
	asm := &Assembly{Mode: mode}

	switch mode {
	case Invoker:
		asm.InvokerAgent = NewComposite("invoker", conductor, sender, receiver)

	case Shared:
		composite := NewComposite("shared", conductor, sender, receiver)
		asm.SharedRunner = NewRunner(composite, strategies.Shared, handler)

	case SharedNetwork:
		network := NewComposite("shared-network", sender, receiver)
		asm.NetworkRunner = NewRunner(network, strategies.SharedNetwork, handler)
		asm.ConductorRunner2 = NewRunner(conductor, strategies.Conductor, handler)

	case Dedicated:
		asm.ConductorRunner = NewRunner(conductor, strategies.Conductor, handler)
		asm.SenderRunner = NewRunner(sender, strategies.Sender, handler)
		asm.ReceiverRunner = NewRunner(receiver, strategies.Receiver, handler)

	default:
		return nil, errs.ConfigThreadingMode.Errorf(fmt.Sprintf("%d", int(mode)))
	}

	return asm, nil
}

// Runners returns every live Runner in the assembly, empty for INVOKER.
func (a *Assembly) Runners() []Runner {
	switch a.Mode {
	case Shared:
		return []Runner{a.SharedRunner}
	case SharedNetwork:
		return []Runner{a.NetworkRunner, a.ConductorRunner2}
	case Dedicated:
		return []Runner{a.ConductorRunner, a.SenderRunner, a.ReceiverRunner}
	default:
		return nil
	}
}

// Start launches every Runner in the assembly concurrently, returning the
// first error encountered (if any), and stops the others on failure. The
// runners keep running after a successful Start until Stop or ctx ends them.
func (a *Assembly) Start(ctx context.Context) error {
	var g errgroup.Group
	for _, r := range a.Runners() {
		r := r
		g.Go(func() error { return r.Start(ctx) })
	}
	if err := g.Wait(); err != nil {
		_ = a.Stop(ctx)
		return err
	}
	return nil
}

// Stop stops every Runner in the assembly concurrently, returning the first
// error encountered (if any).
func (a *Assembly) Stop(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, r := range a.Runners() {
		r := r
		g.Go(func() error { return r.Stop(gctx) })
	}
	return g.Wait()
}
