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

package fields

import (
	"time"
)

// Deadline delegates to the context given to New, so a fldModel can stand
// in anywhere a context.Context is expected while still carrying log fields.
func (o *fldModel) Deadline() (deadline time.Time, ok bool) {
	return o.c.Deadline()
}

// Done delegates to the context given to New.
func (o *fldModel) Done() <-chan struct{} {
	return o.c.Done()
}

// Err delegates to the context given to New.
func (o *fldModel) Err() error {
	return o.c.Err()
}

// Value delegates to the context given to New; this is context value lookup,
// distinct from Get which reads the Fields key/value store itself.
func (o *fldModel) Value(key any) any {
	return o.c.Value(key)
}
