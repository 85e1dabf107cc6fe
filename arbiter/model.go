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

package arbiter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/gofrs/flock"

	"github.com/nabbar/mediadriver/cnc"
	"github.com/nabbar/mediadriver/errs"
)

func defaultWarn(format string, args ...interface{}) {
	_, _ = fmt.Fprintln(os.Stderr, color.YellowString(format, args...))
}

// Arbitrate runs the directory arbitration algorithm of spec.md §4.2 and
// returns only once Dir is confirmed available for a new CnC file: either
// it was just created, or an existing one was determined stale, salvaged
// and wiped. A lock file guards the brief window between the liveness
// check and the recreate so two instances racing to claim the same
// directory cannot both conclude it is free.
func Arbitrate(o Options) error {
	now := o.Now
	if now == nil {
		now = time.Now
	}

	lock := flock.New(filepath.Join(filepath.Dir(filepath.Clean(o.Dir)), filepath.Base(o.Dir)+".lock"))
	if err := lock.Lock(); err != nil {
		return errs.DirectoryIO.Error(err)
	}
	defer func() { _ = lock.Unlock() }()

	if _, err := os.Stat(o.Dir); os.IsNotExist(err) {
		return os.MkdirAll(o.Dir, 0o755)
	} else if err != nil {
		return errs.DirectoryIO.Error(err)
	}

	if o.WarnIfExists {
		Warn("driver directory %s already exists, reusing or reclaiming it", o.Dir)
	}

	if o.DeleteOnStart {
		return recreate(o.Dir)
	}

	h, err := cnc.Open(o.Dir)
	if err != nil {
		// no readable cnc file: treat as a stale/incomplete directory.
		return recreate(o.Dir)
	}

	if h.IsReady() {
		age := time.Duration(now().UnixMilli()-h.ConsumerHeartbeatMs()) * time.Millisecond
		if age < o.LivenessTimeout {
			_ = h.Close()
			return errs.DirectoryActiveDriver.Error()
		}
	}

	if o.Salvage != nil {
		parent := filepath.Dir(filepath.Clean(o.Dir))
		if err := o.Salvage(h, parent); err != nil {
			_ = h.Close()
			return errs.DirectorySalvage.Error(err)
		}
	}
	if err := h.Close(); err != nil {
		return errs.DirectoryIO.Error(err)
	}

	return recreate(o.Dir)
}

func recreate(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return errs.DirectoryIO.Error(err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errs.DirectoryIO.Error(err)
	}
	return nil
}

// SalvageFileName returns the timestamped salvage file name spec.md §4.2
// step 4b specifies for dir, formatted as
// "<dir>-YYYY-MM-DD-HH-mm-ss-SSSZ-error.log".
func SalvageFileName(dir string, at time.Time) string {
	u := at.UTC()
	return fmt.Sprintf("%s-%s-%03dZ-error.log", filepath.Base(filepath.Clean(dir)), u.Format("2006-01-02-15-04-05"), u.Nanosecond()/int(time.Millisecond))
}
