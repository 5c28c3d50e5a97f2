/*
 * MIT License
 *
 * Copyright (c) 2023 Nicolas JUHEL
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

package ssl

import (
	"errors"
)

// Transient engine results. They are sentinel values, not failures: an
// engine implementation must return them unwrapped or wrapped so that
// errors.Is still matches.
var (
	// ErrWantRead means the operation needs more inbound data.
	ErrWantRead = errors.New("ssl: want read")

	// ErrWantWrite means the operation needs the outbound path flushed.
	ErrWantWrite = errors.New("ssl: want write")

	// ErrAppDataReady means a decrypted application record arrived in the
	// middle of a rehandshake and must be drained first.
	ErrAppDataReady = errors.New("ssl: application data ready")
)

// IsWant returns true for the two retry-later results shared by every
// engine operation.
func IsWant(err error) bool {
	return errors.Is(err, ErrWantRead) || errors.Is(err, ErrWantWrite)
}
