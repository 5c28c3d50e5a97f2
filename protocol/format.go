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

package protocol

import (
	"strconv"
)

func (v Version) String() string {
	if v == VersionUnset {
		return ""
	}

	return strconv.Itoa(int(v.Major())) + "." + strconv.Itoa(int(v.Minor()))
}

func (v Version) Code() string {
	return v.String()
}

// Major returns the major component of the version.
func (v Version) Major() uint8 {
	return uint8(v >> 8)
}

// Minor returns the minor component of the version.
func (v Version) Minor() uint8 {
	return uint8(v & 0xFF)
}

// IsUnset returns true while no version has been chosen for the
// connection, either explicitly or from the context default.
func (v Version) IsUnset() bool {
	return v.Major() == 0
}

// LegacyLength returns true when the DATA message length is carried in
// host byte order, which only version 1.0 does.
func (v Version) LegacyLength() bool {
	return v == Version10
}

func (v Version) Uint16() uint16 {
	return uint16(v)
}

func (v Version) Int() int {
	return int(v)
}
