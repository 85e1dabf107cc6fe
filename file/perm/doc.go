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

// Package perm provides type-safe, portable file permission handling with support for
// multiple input formats (octal, symbolic, numeric) and serialization protocols.
//
// logger/config.OptionsFile embeds two Perm fields, FileMode and PathMode, so an
// operator can set the mode of a created log file and of the directory holding it
// straight from the driver's configuration file (octal string, symbolic notation,
// or a raw number all decode to the same Perm).
//
// # Permission Formats
//
// The package accepts three input shapes:
//
//	"0644"       octal string, leading zero optional, surrounding quotes stripped
//	"rwxr-xr-x"  Unix symbolic notation, with an optional leading file-type char
//	420          numeric value (ParseInt/ParseInt64), decimal equal to octal 0644
//
// # Serialization
//
// Perm implements the marshal/unmarshal pairs for JSON, YAML, TOML, CBOR, and plain
// text, always round-tripping through the canonical octal string ("0644"), plus a
// Viper decoder hook (ViperDecoderHook) for mapstructure-based config loading.
//
// # Conversions
//
// FileMode() returns the os.FileMode to pass to os.OpenFile/os.Chmod; String()
// returns the canonical octal form; the Int*/Uint* family convert to the requested
// integer width, saturating at the type's max on overflow rather than wrapping.
//
// Perm wraps a uint64 and is an immutable value type: concurrent reads need no
// synchronization, but the usual data-race rules apply to concurrent writes of the
// same variable.
package perm
