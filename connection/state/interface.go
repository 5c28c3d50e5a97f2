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

// Package state defines the lifecycle states of a tunnel connection.
//
// The order is the natural progression of a healthy connection: a client
// walks none, connecting, link up, authenticating, configuring, online; a
// server skips the client-side steps and goes from link up straight to
// online when it accepts an AUTH. Disconnected is terminal, a connection
// never leaves it.
package state

import (
	"strings"
)

// State represents the lifecycle state of a connection.
type State uint8

const (
	// StateNone is the freshly created, never connected state.
	StateNone State = iota

	// StateConnecting covers the TLS handshake.
	StateConnecting

	// StateLinkUp means the TLS handshake completed, application-layer
	// authentication not yet.
	StateLinkUp

	// StateAuthenticating means an AUTH request is in flight (client).
	StateAuthenticating

	// StateConfiguring means the pushed network configuration is being
	// applied (client).
	StateConfiguring

	// StateOnline permits data-plane traffic.
	StateOnline

	// StateDisconnecting means a teardown started.
	StateDisconnecting

	// StateDisconnected is terminal.
	StateDisconnected
)

// List returns a slice of all connection states in lifecycle order.
func List() []State {
	return []State{
		StateNone,
		StateConnecting,
		StateLinkUp,
		StateAuthenticating,
		StateConfiguring,
		StateOnline,
		StateDisconnecting,
		StateDisconnected,
	}
}

// Parse returns the state matching the given string, or StateNone if the
// string cannot be understood.
func Parse(s string) State {
	s = strings.ToLower(s)
	s = strings.Replace(s, "\"", "", -1) // nolint
	s = strings.Replace(s, "'", "", -1)  // nolint
	s = strings.Replace(s, " ", "", -1)  // nolint
	s = strings.Replace(s, "_", "", -1)  // nolint
	s = strings.Replace(s, "-", "", -1)  // nolint
	s = strings.TrimSpace(s)

	switch s {
	case "connecting":
		return StateConnecting
	case "linkup":
		return StateLinkUp
	case "authenticating":
		return StateAuthenticating
	case "configuring":
		return StateConfiguring
	case "online":
		return StateOnline
	case "disconnecting":
		return StateDisconnecting
	case "disconnected":
		return StateDisconnected
	default:
		return StateNone
	}
}

// ParseInt returns the state matching the given integer.
func ParseInt(d int) State {
	if d < 0 || d > int(StateDisconnected) {
		return StateNone
	}

	return State(d)
}

// ParseBytes returns the state matching the given byte slice.
func ParseBytes(p []byte) State {
	return Parse(string(p))
}
