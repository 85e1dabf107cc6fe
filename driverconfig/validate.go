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

package driverconfig

import (
	"github.com/nabbar/mediadriver/agent"
	"github.com/nabbar/mediadriver/errs"
)

// MTU and term buffer bounds, following the same fixed header/payload
// budget an Aeron-style UDP media driver enforces on every frame.
const (
	headerLength    = 32
	minPayload      = 32
	minMTULength    = headerLength + minPayload
	maxUDPPayload   = 65504
	minTermBuffer   = 64 * 1024
	maxTermBuffer   = 1 << 31
	socketRcvBuffer = 2 * 1024 * 1024
)

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Validate checks k against spec.md §9.1's rejection rules, returning the
// first violated rule as a CodeError-tagged errs.Config* error. Validate
// does not mutate k; Context.Conclude calls it before any side effect
// (cnc file creation, directory arbitration) takes place.
func (k *Knobs) Validate() error {
	if k.MTULength < minMTULength || k.MTULength > maxUDPPayload {
		return errs.ConfigMTU.Error()
	}
	if k.IPCMTULength < minMTULength || k.IPCMTULength > maxUDPPayload {
		return errs.ConfigMTU.Error()
	}

	for _, length := range []int{k.MaxTermBufferLength, k.PublicationTermBufferLength, k.IPCPublicationTermBufferLength} {
		if !isPowerOfTwo(length) || length < minTermBuffer || length > maxTermBuffer {
			return errs.ConfigTermBuffer.Error()
		}
	}

	if k.PublicationTermBufferLength > k.MaxTermBufferLength {
		return errs.ConfigPublicationTermBuffer.Error()
	}
	if k.IPCPublicationTermBufferLength > k.MaxTermBufferLength {
		return errs.ConfigPublicationTermBuffer.Error()
	}

	if k.InitialWindowLength >= socketRcvBuffer {
		return errs.ConfigInitialWindow.Error()
	}

	if _, err := agent.ParseThreadingMode(k.ThreadingMode); err != nil {
		return errs.ConfigThreadingMode.Error(err)
	}

	return nil
}
