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

/*
Package ioutils holds the I/O support code the driver actually exercises:
directory/file creation for the CnC and loss-report state directory
(PathCheckCreate), the write aggregator behind the logger's file hook
(aggregator), and the multi-closer used to unwind logger resources on
shutdown (mapCloser). It does not attempt to be a general-purpose I/O
toolkit; subpackages that had no caller in this driver were removed rather
than kept as unused surface.

	Root Package (ioutils)
	├── PathCheckCreate - directory/file creation with permission management,
	│                     used by driverctx/arbiter when claiming the driver
	│                     directory
	├── aggregator      - thread-safe write aggregator serializing concurrent
	│                     writes to a single writer function
	└── mapCloser       - thread-safe, context-aware manager for multiple
	                      io.Closer instances, used to unwind logger hooks

# Error Handling

All functions return errors; this package never panics.
*/
package ioutils
