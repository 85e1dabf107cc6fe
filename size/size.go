/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

// Package size provides a byte-count type that parses and formats itself in
// human-readable binary units (KB, MB, GB, ...), so buffer-size configuration
// fields can be expressed as "64KB" instead of a raw integer.
package size

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is a count of bytes.
type Size uint64

const (
	SizeNul  Size = 0
	SizeUnit Size = 1
	SizeKilo Size = SizeUnit << 10
	SizeMega Size = SizeKilo << 10
	SizeGiga Size = SizeMega << 10
	SizeTera Size = SizeGiga << 10
	SizePeta Size = SizeTera << 10
	SizeExa  Size = SizePeta << 10
)

// Rounding layouts accepted by Format, in addition to any fmt float verb
// ("%.2f", "%e", ...).
const (
	FormatRound0 = "%.0f"
	FormatRound1 = "%.1f"
	FormatRound2 = "%.2f"
	FormatRound3 = "%.3f"
)

var defaultUnit rune = 'B'

// SetDefaultUnit changes the rune appended by Unit when called with 0; Code
// always appends 'B' in that case. A zero r leaves the default unchanged.
func SetDefaultUnit(r rune) {
	if r != 0 {
		defaultUnit = r
	}
}

type scale struct {
	size   Size
	prefix string
}

var scales = []scale{
	{SizeExa, "E"},
	{SizePeta, "P"},
	{SizeTera, "T"},
	{SizeGiga, "G"},
	{SizeMega, "M"},
	{SizeKilo, "K"},
}

func (s Size) scale() (Size, string) {
	for _, sc := range scales {
		if s >= sc.size {
			return sc.size, sc.prefix
		}
	}
	return SizeUnit, ""
}

// Unit returns the scale prefix for s ("", "K", "M", ...) suffixed with r,
// or with the package default unit when r is 0.
func (s Size) Unit(r rune) string {
	if r == 0 {
		r = defaultUnit
	}
	_, prefix := s.scale()
	return prefix + string(r)
}

// Code behaves like Unit but always reports the byte-count unit ("B") when
// r is 0, matching the conventional "KB"/"MB" notation regardless of the
// package-wide default.
func (s Size) Code(r rune) string {
	if r == 0 {
		r = 'B'
	}
	_, prefix := s.scale()
	return prefix + string(r)
}

// Format renders the numeric value of s, scaled to its natural unit, using
// layout as a fmt float verb (e.g. FormatRound2, "%.1f", "%e").
func (s Size) Format(layout string) string {
	div, _ := s.scale()
	v := float64(s) / float64(div)
	return fmt.Sprintf(layout, v)
}

// String renders s scaled to its natural unit with two decimals, e.g. "5.00KB".
func (s Size) String() string {
	return s.Format(FormatRound2) + s.Code(0)
}

// Parse reads a size literal such as "10", "1.5KB", "2 GiB" into a Size. The
// unit is case-insensitive; a trailing "B", and an "i" before it, are ignored.
func Parse(s string) (Size, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("size: empty value")
	}

	i := 0
	for i < len(s) && (s[i] == '.' || s[i] == '-' || s[i] == '+' || (s[i] >= '0' && s[i] <= '9')) {
		i++
	}

	numPart := s[:i]
	unitPart := strings.TrimSpace(s[i:])

	if numPart == "" {
		return 0, fmt.Errorf("size: no numeric value in %q", s)
	}

	v, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, fmt.Errorf("size: invalid numeric value in %q: %w", s, err)
	}

	mul, err := unitMultiplier(unitPart)
	if err != nil {
		return 0, err
	}

	return Size(v * float64(mul)), nil
}

func unitMultiplier(unit string) (Size, error) {
	if unit == "" {
		return SizeUnit, nil
	}

	u := strings.TrimSuffix(strings.TrimSuffix(strings.ToUpper(unit), "B"), "I")
	if u == "" {
		return SizeUnit, nil
	}

	switch u {
	case "K":
		return SizeKilo, nil
	case "M":
		return SizeMega, nil
	case "G":
		return SizeGiga, nil
	case "T":
		return SizeTera, nil
	case "P":
		return SizePeta, nil
	case "E":
		return SizeExa, nil
	default:
		return 0, fmt.Errorf("size: unknown unit %q", unit)
	}
}

// MarshalText implements encoding.TextMarshaler so Size can round-trip
// through JSON, YAML and TOML as a human-readable literal.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size) UnmarshalText(p []byte) error {
	v, err := Parse(string(p))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
