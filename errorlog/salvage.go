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

package errorlog

import (
	"fmt"
	"os"
	"time"
)

// Salvage writes every distinct record currently in log to path, one block
// per record, so the Directory Arbiter (arbiter package) can preserve a
// stale driver's error history before it deletes and recreates the CnC
// directory (spec.md §4.2). It never mutates log.
func Salvage(log Log, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, r := range log.Snapshot() {
		_, err := fmt.Fprintf(f,
			"%s\nfirst=%s last=%s count=%d hash=%x\n%s\n\n",
			"===",
			time.Unix(0, r.FirstObservationNs).UTC().Format(time.RFC3339Nano),
			time.Unix(0, r.LastObservationNs).UTC().Format(time.RFC3339Nano),
			r.ObservationCount,
			r.StackHash,
			r.StackText,
		)
		if err != nil {
			return err
		}
	}
	return f.Sync()
}
