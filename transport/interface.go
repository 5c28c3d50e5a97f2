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

// Package transport defines the outer transport mode of a tunnel connection.
//
// A connection runs either over a datagram transport (DTLS over UDP) or a
// stream transport (TLS over TCP). The mode is chosen on the shared context
// and copied onto each connection when it connects; it drives the MTU /
// non-blocking setup of the TLS session and the rekey fallback strategy.
package transport

import (
	"strings"
)

// Transport represents the outer transport mode of a connection.
type Transport uint8

const (
	// TransportDatagram is the DTLS over UDP mode. This is the default.
	TransportDatagram Transport = iota

	// TransportStream is the TLS over TCP mode.
	TransportStream
)

// List returns a slice of all known transport modes.
func List() []Transport {
	return []Transport{
		TransportDatagram,
		TransportStream,
	}
}

// Parse returns the transport mode matching the given string.
//
// The string is case-insensitive and surrounding quotes or spaces are
// ignored. Unrecognized input falls back to TransportDatagram.
func Parse(s string) Transport {
	s = strings.ToLower(s)
	s = strings.Replace(s, "\"", "", -1) // nolint
	s = strings.Replace(s, "'", "", -1)  // nolint
	s = strings.TrimSpace(s)

	switch s {
	case "stream", "tcp":
		return TransportStream
	case "datagram", "udp":
		return TransportDatagram
	default:
		return TransportDatagram
	}
}

// ParseInt returns the transport mode matching the given integer.
func ParseInt(d int) Transport {
	switch d {
	case int(TransportStream):
		return TransportStream
	default:
		return TransportDatagram
	}
}

// ParseBytes returns the transport mode matching the given byte slice.
func ParseBytes(p []byte) Transport {
	return Parse(string(p))
}
