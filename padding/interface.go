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

// Package padding defines the length-shaping policy applied to data-plane
// packets before encryption.
//
// Padding obfuscates traffic-analysis fingerprints: an observer of the
// encrypted flow sees packet sizes clustered on a few fixed boundaries
// instead of the true plaintext lengths. The policy is a trade-off between
// obfuscation and bandwidth overhead, selected on the shared context and
// copied onto each connection.
package padding

import (
	"strings"
)

// Padding represents a data packet length-shaping policy.
type Padding uint8

const (
	// PaddingNone disables padding, packets keep their true length.
	PaddingNone Padding = iota

	// PaddingFull pads every packet to the maximum inside MTU.
	PaddingFull

	// Padding450 pads packets up to the nearest of the 450 and 900 byte
	// boundaries, and to the maximum inside MTU above that.
	Padding450
)

const (
	boundaryLow  = 450
	boundaryHigh = 900
)

// List returns a slice of all known padding policies.
func List() []Padding {
	return []Padding{
		PaddingNone,
		PaddingFull,
		Padding450,
	}
}

// Parse returns the padding policy matching the given string.
//
// The string is case-insensitive and surrounding quotes or spaces are
// ignored. Unrecognized input falls back to PaddingNone.
func Parse(s string) Padding {
	s = strings.ToLower(s)
	s = strings.Replace(s, "\"", "", -1) // nolint
	s = strings.Replace(s, "'", "", -1)  // nolint
	s = strings.TrimSpace(s)

	switch s {
	case "full":
		return PaddingFull
	case "450", "boundary":
		return Padding450
	default:
		return PaddingNone
	}
}

// ParseInt returns the padding policy matching the given integer.
func ParseInt(d int) Padding {
	switch d {
	case int(PaddingFull):
		return PaddingFull
	case int(Padding450):
		return Padding450
	default:
		return PaddingNone
	}
}

// ParseBytes returns the padding policy matching the given byte slice.
func ParseBytes(p []byte) Padding {
	return Parse(string(p))
}
