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

package ioutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// PathCheckCreate ensures a file or directory exists at path with the given
// permissions, creating parent directories as needed. logger/hookfile's
// aggregator calls it with isFile true before opening the configured log
// file, and with isFile false to pre-create its parent directory; a path
// that already exists as the wrong type (file vs directory) is an error,
// never silently replaced.
//
// Concurrent calls for distinct paths are safe; concurrent calls racing on
// the same path are not and need external synchronization.
func PathCheckCreate(isFile bool, path string, permFile os.FileMode, permDir os.FileMode) error {
	// Check if path exists and get its info
	if inf, err := os.Stat(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		// Stat error other than "does not exist"
		return err
	} else if err == nil && inf.IsDir() {
		// Path exists and is a directory
		if isFile {
			return fmt.Errorf("path '%s' already exists but is a directory", path)
		}
		// Update directory permissions if needed
		if inf.Mode() != permDir {
			_ = os.Chmod(path, permDir)
		}
		return nil
	} else if err == nil && !inf.IsDir() {
		// Path exists and is a file
		if !isFile {
			return fmt.Errorf("path '%s' already exists but is not a directory", path)
		}
		// Update file permissions if needed
		if inf.Mode() != permFile {
			_ = os.Chmod(path, permFile)
		}
		return nil
	} else if !isFile {
		// Path doesn't exist and we want a directory
		return os.MkdirAll(path, permDir)
	} else if err = PathCheckCreate(false, filepath.Dir(path), permFile, permDir); err != nil {
		// Path doesn't exist and we want a file - ensure parent directory exists
		return err
	}

	// Open root directory for atomic file creation
	rt, e := os.OpenRoot(filepath.Dir(path))

	defer func() {
		if rt != nil {
			_ = rt.Close()
		}
	}()

	if e != nil {
		return e
	}

	// Create the file atomically
	hf, e := rt.Create(filepath.Base(path))

	defer func() {
		if hf != nil {
			_ = hf.Close()
		}
	}()

	if e != nil {
		return e
	}

	// Close file handle before setting permissions
	_ = hf.Close()
	hf = nil

	// Set file permissions
	_ = rt.Chmod(filepath.Base(path), permFile)

	return nil
}
