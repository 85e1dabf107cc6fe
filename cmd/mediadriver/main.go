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

// Command mediadriver concludes one driver instance from process-wide
// configuration (flags, env, and an optional config file bound through
// spf13/viper), serves its system counters and readiness probe over the
// admin HTTP surface, and runs until SIGINT/SIGTERM.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	spfcbr "github.com/spf13/cobra"
	spfflg "github.com/spf13/pflag"
	spfvpr "github.com/spf13/viper"

	"github.com/nabbar/mediadriver/admin"
	"github.com/nabbar/mediadriver/driverconfig"
	"github.com/nabbar/mediadriver/driverctx"
	"github.com/nabbar/mediadriver/errs"
	"github.com/nabbar/mediadriver/logger"
)

const (
	flagDirectory     = "directory"
	flagThreadingMode = "threading-mode"
	flagAdminAddr     = "admin-addr"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *spfcbr.Command {
	v := spfvpr.New()

	cmd := &spfcbr.Command{
		Use:   "mediadriver",
		Short: "Conclude and run a media driver instance",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			return run(cmd.Context(), v)
		},
	}

	cmd.PersistentFlags().String(flagDirectory, "", "driver directory path (required)")
	cmd.PersistentFlags().String(flagThreadingMode, "", "threading mode: INVOKER, SHARED, SHARED_NETWORK or DEDICATED")
	cmd.PersistentFlags().String(flagAdminAddr, "127.0.0.1:9090", "admin HTTP surface listen address")

	bindFlag(v, "directory_path", cmd.PersistentFlags().Lookup(flagDirectory))
	bindFlag(v, "threading_mode", cmd.PersistentFlags().Lookup(flagThreadingMode))
	bindFlag(v, "admin_addr", cmd.PersistentFlags().Lookup(flagAdminAddr))

	return cmd
}

func bindFlag(v *spfvpr.Viper, key string, flag *spfflg.Flag) {
	if flag == nil {
		return
	}
	_ = v.BindPFlag(key, flag)
}

func run(ctx context.Context, v *spfvpr.Viper) error {
	log := logger.New(ctx)
	logFn := logger.FuncLog(func() logger.Logger { return log })

	k := driverconfig.Load(v)

	c, err := driverctx.New(k, driverctx.Options{Log: logFn})
	if err != nil {
		if errs.IsConfigurationError(err) {
			log.Fatal("invalid driver configuration", err)
		}
		return err
	}
	log.Info(fmt.Sprintf("driver concluded: directory=%s threading_mode=%s", k.DirectoryPath, k.ThreadingMode), nil)

	admSrv := admin.New(admin.Options{
		Addr:     v.GetString("admin_addr"),
		Ready:    c.Handle().IsReady,
		Counters: c.SystemCounters(),
	})
	admErrCh, err := admSrv.Start()
	if err != nil {
		_ = c.Close()
		return err
	}
	log.Info(fmt.Sprintf("admin HTTP surface listening on %s", admSrv.Addr()), nil)

	if a := c.Assembly(); a != nil && len(a.Runners()) > 0 {
		if err := a.Start(ctx); err != nil {
			_ = admSrv.Shutdown(context.Background())
			_ = c.Close()
			return err
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info(fmt.Sprintf("received signal %s, shutting down", sig), nil)
	case err := <-admErrCh:
		if err != nil {
			log.Error("admin HTTP surface failed", err)
		}
	}

	shutdownCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a := c.Assembly(); a != nil && len(a.Runners()) > 0 {
		if err := a.Stop(shutdownCtx); err != nil {
			log.Error("agent assembly shutdown failed", err)
		}
	}

	if err := admSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("admin HTTP surface shutdown failed", err)
	}
	return c.Close()
}
