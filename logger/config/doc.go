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

// Package config provides configuration structures and validation for the logger package.
//
// Options aggregates three output-specific sub-configs — Stdout (*OptionsStd),
// LogFile (OptionsFiles) and LogSyslog (OptionsSyslogs) — each carrying its own
// level filter and formatting flags, so the driver can send panics to stderr,
// agent traffic to a rotating file, and everything above warning to syslog
// from one Options value. InheritDefault plus LogFileExtend/LogSyslogExtend
// let a per-agent config layer on top of a RegisterDefaultFunc base instead of
// replacing it outright.
//
// Validate (go-playground/validator) must run before the config is handed to
// logger.New; Clone/Merge give the conductor independent per-agent copies it
// can override without touching the shared default.
package config
