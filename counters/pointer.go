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

package counters

import "unsafe"

// asPointer64 reinterprets the 8 bytes at buf[off:off+8] as an *int64, so
// the atomic package can operate directly on a slot inside a byte region
// that may be backed by mmap'd memory shared with other processes. Callers
// are responsible for keeping off aligned to 8 bytes; every caller in this
// package derives off from a CacheLineBytes stride, which satisfies that.
func asPointer64(buf []byte, off int) *int64 {
	return (*int64)(unsafe.Pointer(&buf[off]))
}

// asPointer32 reinterprets the 4 bytes at buf[off:off+4] as an *int32, used
// for the descriptor state word so Allocate/Free can be observed atomically
// by concurrent readers of Get.
func asPointer32(buf []byte, off int) *int32 {
	return (*int32)(unsafe.Pointer(&buf[off]))
}
