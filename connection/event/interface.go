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

// Package event defines the out-of-band notifications a connection raises
// to its host besides state changes.
package event

import (
	"strings"
)

// Event represents a host notification.
type Event uint8

const (
	// EventNone is the zero value and never raised.
	EventNone Event = iota

	// EventFirstMessageReceived fires when the first application record
	// of the session arrives.
	EventFirstMessageReceived

	// EventPong fires when the peer answered a keepalive.
	EventPong

	// EventSecureRenegotiationStarted fires when a rekey via secure
	// renegotiation begins.
	EventSecureRenegotiationStarted

	// EventPendingSessionAcknowledged fires when the peer adopted a
	// rotated session id.
	EventPendingSessionAcknowledged
)

// List returns a slice of all known events.
func List() []Event {
	return []Event{
		EventFirstMessageReceived,
		EventPong,
		EventSecureRenegotiationStarted,
		EventPendingSessionAcknowledged,
	}
}

// Parse returns the event matching the given string, or EventNone if the
// string cannot be understood.
func Parse(s string) Event {
	s = strings.ToLower(s)
	s = strings.Replace(s, "\"", "", -1) // nolint
	s = strings.Replace(s, "'", "", -1)  // nolint
	s = strings.Replace(s, " ", "", -1)  // nolint
	s = strings.Replace(s, "_", "", -1)  // nolint
	s = strings.Replace(s, "-", "", -1)  // nolint
	s = strings.TrimSpace(s)

	switch s {
	case "firstmessagereceived":
		return EventFirstMessageReceived
	case "pong":
		return EventPong
	case "securerenegotiationstarted":
		return EventSecureRenegotiationStarted
	case "pendingsessionacknowledged":
		return EventPendingSessionAcknowledged
	default:
		return EventNone
	}
}

// ParseInt returns the event matching the given integer.
func ParseInt(d int) Event {
	if d < 0 || d > int(EventPendingSessionAcknowledged) {
		return EventNone
	}

	return Event(d)
}

// ParseBytes returns the event matching the given byte slice.
func ParseBytes(p []byte) Event {
	return Parse(string(p))
}
