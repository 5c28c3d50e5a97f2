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

// Package message implements the application-layer wire codec of the
// tunnel protocol.
//
// Every message is a fixed layout behind a one-byte identifier; only the
// DATA message carries a length-prefixed payload. Text fields are
// fixed-width and zero-padded; a field occupying its full width has no NUL
// terminator, so decoding always bounds the copy. Integers are network
// byte order, with one exception: protocol version 1.0 carried the DATA
// length in host order, and the codec keeps honoring that layout when
// asked to speak 1.0.
//
// The codec is pure: it never touches a connection, the dispatcher decodes
// the identifier and routes the packet to the matching connection handler.
package message

import (
	libnet "github.com/nabbar/helium/network"
)

// MsgID is the one-byte message identifier opening every record.
type MsgID uint8

const (
	// MsgNoop is ignored by both sides.
	MsgNoop MsgID = iota + 1

	// MsgPing requests a PONG from an online peer.
	MsgPing

	// MsgPong answers a PING.
	MsgPong

	// MsgAuth carries the username/password credential pair.
	MsgAuth

	// MsgData carries one inside IPv4 packet.
	MsgData

	// MsgConfigIPv4 pushes the tunnel network configuration and session
	// id to an authenticated client.
	MsgConfigIPv4

	// MsgAuthResponse is the legacy failed-login response.
	MsgAuthResponse

	// MsgAuthResponseWithConfig is reserved.
	MsgAuthResponseWithConfig

	// MsgGoodbye hints a unilateral teardown.
	MsgGoodbye
)

// AuthType selects the credential scheme of an AUTH message.
type AuthType uint8

const (
	// AuthTypeUserPass is the only scheme currently defined.
	AuthTypeUserPass AuthType = 1
)

const (
	// HeaderSize is the length of the common message header.
	HeaderSize = 1

	// TextFieldLength is the fixed width of the credential fields.
	TextFieldLength = 50

	// AuthSize is the full length of an AUTH message.
	AuthSize = HeaderSize + 3 + 2*TextFieldLength

	// ConfigIPv4Size is the full length of a CONFIG_IPV4 message.
	ConfigIPv4Size = HeaderSize + 8 + 4*libnet.MaxIPv4StringLength

	// DataHeaderSize is the length of the DATA header before the payload.
	DataHeaderSize = HeaderSize + 2
)

func (m MsgID) String() string {
	switch m {
	case MsgNoop:
		return "noop"
	case MsgPing:
		return "ping"
	case MsgPong:
		return "pong"
	case MsgAuth:
		return "auth"
	case MsgData:
		return "data"
	case MsgConfigIPv4:
		return "config ipv4"
	case MsgAuthResponse:
		return "auth response"
	case MsgAuthResponseWithConfig:
		return "auth response with config"
	case MsgGoodbye:
		return "goodbye"
	default:
		return ""
	}
}

func (m MsgID) Uint8() uint8 {
	return uint8(m)
}
