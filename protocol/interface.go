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

// Package protocol defines the application-layer wire protocol version
// carried by a tunnel connection.
//
// A version is a {major, minor} pair packed into a single value. The zero
// value VersionUnset means "not set, take the context default". Version 1.0
// carried the DATA message length in host byte order; 1.1 fixed it to
// network order, and the data-plane codec still honors the 1.0 layout for
// older peers.
package protocol

import (
	"strconv"
	"strings"
)

// Version represents a {major, minor} wire protocol version, packed as
// major<<8 | minor.
type Version uint16

const (
	// VersionUnset is the zero value, meaning use the context default.
	VersionUnset Version = 0

	// Version10 is the initial wire protocol.
	Version10 Version = 0x0100

	// Version11 fixed the DATA length byte order.
	Version11 Version = 0x0101
)

// New packs a {major, minor} pair into a Version.
func New(major, minor uint8) Version {
	return Version(uint16(major)<<8 | uint16(minor))
}

// List returns a slice of all known protocol versions, newest first.
func List() []Version {
	return []Version{
		Version11,
		Version10,
	}
}

// Parse returns the version matching a "major.minor" string, or
// VersionUnset if the string cannot be understood.
func Parse(s string) Version {
	s = strings.ToLower(s)
	s = strings.Replace(s, "\"", "", -1) // nolint
	s = strings.Replace(s, "'", "", -1)  // nolint
	s = strings.Replace(s, "v", "", -1)  // nolint
	s = strings.TrimSpace(s)

	p := strings.SplitN(s, ".", 2)
	if len(p) != 2 {
		return VersionUnset
	}

	var (
		e   error
		mjr uint64
		mnr uint64
	)

	if mjr, e = strconv.ParseUint(p[0], 10, 8); e != nil {
		return VersionUnset
	}

	if mnr, e = strconv.ParseUint(p[1], 10, 8); e != nil {
		return VersionUnset
	}

	return New(uint8(mjr), uint8(mnr))
}

// ParseBytes returns the version matching the given byte slice.
func ParseBytes(p []byte) Version {
	return Parse(string(p))
}
