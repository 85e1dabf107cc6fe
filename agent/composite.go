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

import "strings"

// Composite fuses several agents into one, run on a single thread: each
// DoWork call pumps every member once, in order, and sums their work
// counts. This is how spec.md §4.9's SHARED (all three) and
// SHARED_NETWORK (Sender+Receiver) threading modes share a single Runner
// across multiple agents.
type Composite struct {
	name    string
	members []Agent
}

// NewComposite returns a Composite named name pumping members in order on
// every DoWork call.
func NewComposite(name string, members ...Agent) *Composite {
	return &Composite{name: name, members: members}
}

func (c *Composite) RoleName() string { return c.name }

func (c *Composite) DoWork() (int, error) {
	total := 0
	var errs []string
	for _, m := range c.members {
		n, err := m.DoWork()
		total += n
		if err != nil {
			errs = append(errs, m.RoleName()+": "+err.Error())
		}
	}
	if len(errs) > 0 {
		return total, compositeError(errs)
	}
	return total, nil
}

func (c *Composite) OnClose() error {
	var errs []string
	for _, m := range c.members {
		if err := m.OnClose(); err != nil {
			errs = append(errs, m.RoleName()+": "+err.Error())
		}
	}
	if len(errs) > 0 {
		return compositeError(errs)
	}
	return nil
}

type compositeError []string

func (e compositeError) Error() string { return strings.Join(e, "; ") }
