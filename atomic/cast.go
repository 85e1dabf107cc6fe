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

package atomic

import "reflect"

// Cast attempts to safely convert any value to the target type M. It backs
// Value.Load/Swap/CompareAndSwap and Map's key/value accessors, where the
// driver stores heterogeneous state (CnC handles, agent snapshots, shutdown
// flags) behind sync/atomic primitives typed as interface{}.
//
// The function performs two checks:
//  1. Deep equality check to detect if src is already the zero value of M
//  2. Type assertion to convert src to M
func Cast[M any](src any) (model M, casted bool) {
	if reflect.DeepEqual(src, model) {
		return model, false
	} else if v, k := src.(M); !k {
		return model, false
	} else {
		return v, true
	}
}

// IsEmpty checks if the source value is nil, zero, or cannot be cast to type
// M. Value.Store/Swap/CompareAndSwap use it to substitute a configured
// default whenever a caller writes the zero value, so a driver component
// reading back Load never has to special-case "never set" against "set to
// zero".
func IsEmpty[M any](src any) bool {
	if _, k := Cast[M](src); !k {
		return true
	}

	return false
}
