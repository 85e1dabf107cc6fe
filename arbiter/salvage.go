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
	"path/filepath"
	"time"

	"github.com/nabbar/mediadriver/cnc"
	"github.com/nabbar/mediadriver/errorlog"
)

// DefaultSalvage is the Options.Salvage a caller gets when it does not
// supply its own: it binds the stale driver's mapped error-log region the
// same way a live driver does (errorlog.NewOverBuffer over h.ErrorLog),
// and, if it holds any records, writes them to SalvageFileName's output in
// parentDir (spec.md §4.2 step 4b). An empty error log salvages nothing,
// since there is no history worth preserving.
func DefaultSalvage(h *cnc.Handle, parentDir string) error {
	log := errorlog.NewOverBuffer(h.ErrorLog(), errorlog.RecordStride)
	if log.Len() == 0 {
		return nil
	}
	staleDir := filepath.Dir(h.Path())
	path := filepath.Join(parentDir, SalvageFileName(staleDir, time.Now()))
	return errorlog.Salvage(log, path)
}
