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

// Package connection implements the per-peer core of the tunnel protocol:
// the state machine sitting above one (D)TLS session, the application
// message handlers, the retransmit timer plumbing, the rekey controller
// and the session identifier service.
//
// A connection performs no I/O and starts no goroutine: the host feeds it
// by calling the message handlers after the dispatcher decrypted and
// routed a record, flushes outbound bytes through the OutsideWrite
// callback, and calls Nudge when a deadline announced through the
// NudgeTime callback elapses.
//
//	┌──────────────┐
//	│  Connection  │ ← public interface, one owner
//	└──────────────┘
//	       ↓
//	┌──────────────┐
//	│     conn     │ ← state machine + handlers
//	└──────────────┘
//	       ↓
//	┌──────────────┐
//	│ ssl.Session  │ ← abstract (D)TLS engine
//	└──────────────┘
//
// A connection is single-owner: the host must serialize every call on it.
// Callbacks are invoked synchronously on the caller's stack and may
// re-enter the same connection.
//
// Basic client usage:
//
//	cnn := connection.New()
//	_ = cnn.SetUsername("user")
//	_ = cnn.SetPassword("pass")
//	_ = cnn.SetOutsideMTU(1500)
//
//	if err := cnn.ClientConnect(ctx, nil); err != nil {
//	    panic(err)
//	}
//	// deliver inbound packets to the engine, watch state changes,
//	// call cnn.Nudge() when the announced deadline fires.
//	defer cnn.Close()
package connection

import (
	libatm "github.com/nabbar/golib/atomic"
	liberr "github.com/nabbar/golib/errors"
	liblog "github.com/nabbar/golib/logger"
	libstt "github.com/nabbar/helium/connection/state"
	libpad "github.com/nabbar/helium/padding"
	libprt "github.com/nabbar/helium/protocol"
	libssl "github.com/nabbar/helium/ssl"
	libtpt "github.com/nabbar/helium/transport"
)

// PluginChain is the opaque handle of a packet-transform pipeline attached
// to a connection. The core never looks inside it.
type PluginChain interface{}

// Context is the shared configuration object a connection copies its
// defaults, callbacks and engine handles from at connect time. One context
// typically serves many connections.
type Context interface {
	// Transport returns the outer transport mode of new connections.
	Transport() libtpt.Transport

	// Padding returns the data-plane padding policy.
	Padding() libpad.Padding

	// DisableRoaming disables session-id based connection roaming.
	DisableRoaming() bool

	// AggressiveMode returns the aggressive-mode flag copied onto each
	// connection at connect time. The connection's retransmit timer does
	// not consult it.
	AggressiveMode() bool

	// MaximumSupportedVersion returns the newest protocol version this
	// context speaks, used as default for connections without one.
	MaximumSupportedVersion() libprt.Version

	// IsLatestVersion returns true when v is the newest supported
	// version. Clients must connect with the latest version.
	IsLatestVersion(v libprt.Version) bool

	// IsSupportedVersion returns true when v is any supported version.
	IsSupportedVersion(v libprt.Version) bool

	// ServerDomainName returns the expected server certificate DN, empty
	// when DN verification is disabled.
	ServerDomainName() string

	// NewSession instantiates one (D)TLS session from the context's
	// engine configuration.
	NewSession() (libssl.Session, error)

	// Random returns the engine randomness source shared with every
	// connection of this context.
	Random() libssl.Random

	// Callbacks returns the host capability set copied onto each
	// connection.
	Callbacks() Callbacks
}

// Connection is one tunnel endpoint above one (D)TLS session.
type Connection interface {
	// SetUsername sets the credential to authenticate with. Empty or
	// overlong values are refused.
	SetUsername(user string) liberr.Error

	// Username returns the username previously set, or stored by a
	// server connection after a successful AUTH.
	Username() string

	// IsUsernameSet returns true once a username is stored.
	IsUsernameSet() bool

	// SetPassword sets the credential to authenticate with. Empty or
	// overlong values are refused. There is no getter.
	SetPassword(pass string) liberr.Error

	// IsPasswordSet returns true once a password is stored.
	IsPasswordSet() bool

	// SetOutsideMTU sets the MTU of the outside transport in bytes. It is
	// mandatory before connecting.
	SetOutsideMTU(mtu int) liberr.Error

	// OutsideMTU returns the outside MTU.
	OutsideMTU() int

	// IsOutsideMTUSet returns true once an outside MTU is stored.
	IsOutsideMTUSet() bool

	// SetProtocolVersion pins the wire protocol version instead of
	// taking the context default at connect time.
	SetProtocolVersion(v libprt.Version) liberr.Error

	// ProtocolVersion returns the wire protocol version.
	ProtocolVersion() libprt.Version

	// SetUserData stores an opaque value handed back in every callback.
	SetUserData(data interface{})

	// UserData returns the stored opaque value.
	UserData() interface{}

	// State returns the current lifecycle state.
	State() libstt.State

	// IsServer returns true once the connection connected server-side.
	IsServer() bool

	// SessionID returns the current session identifier, 0 before one is
	// assigned.
	SessionID() uint64

	// PendingSessionID returns the prepared rotation target, 0 when none
	// and always 0 on clients.
	PendingSessionID() uint64

	// SetSessionID assigns the session identifier once; any later call
	// is refused.
	SetSessionID(id uint64) liberr.Error

	// RotateSessionID prepares the next session identifier on a server
	// connection. The current identifier is kept until the peer
	// acknowledges the pending one.
	RotateSessionID() (uint64, liberr.Error)

	// IsValidClient checks the connection holds everything a client
	// needs to connect, returning the first missing piece.
	IsValidClient(x Context) liberr.Error

	// IsValidServer checks the connection holds everything a server
	// needs to connect.
	IsValidServer(x Context) liberr.Error

	// ClientConnect configures the connection from the context, creates
	// the (D)TLS session and starts the handshake client-side. The call
	// is asynchronous: success means the connection is connecting, not
	// connected.
	ClientConnect(x Context, plugins PluginChain) liberr.Error

	// ServerConnect is the server-side counterpart of ClientConnect; it
	// additionally draws the initial session identifier.
	ServerConnect(x Context, plugins PluginChain) liberr.Error

	// Disconnect cleanly tears down an online connection: GOODBYE,
	// engine shutdown, write callbacks dropped.
	Disconnect() liberr.Error

	// Close releases the (D)TLS session and drops every callback. It is
	// always safe, no call is valid afterwards.
	Close()

	// SendKeepalive emits a PING to keep NAT mappings alive. The host
	// owns the schedule.
	SendKeepalive() liberr.Error

	// ScheduleRenegotiation requests a rekey on the next processing
	// cycle of this connection. No time-based guarantee.
	ScheduleRenegotiation() liberr.Error

	// RenegotiationDue returns true while a requested rekey has not been
	// driven yet.
	RenegotiationDue() bool

	// Renegotiate drives a scheduled rekey: secure renegotiation when
	// the peer supports it, key update on stream transports otherwise.
	Renegotiate() liberr.Error

	// SupportsRenegotiation returns true when the peer negotiated the
	// secure renegotiation extension.
	SupportsRenegotiation() bool

	// NudgeTime returns the current deadline in milliseconds, 0 when the
	// connection is online outside a rekey.
	NudgeTime() int

	// Nudge tells the connection a scheduled deadline elapsed, driving
	// handshake retransmission or AUTH re-send.
	Nudge() liberr.Error

	// OutsideWrite forwards ciphertext from the engine I/O path to the
	// host outside-write callback.
	OutsideWrite(packet []byte) liberr.Error

	// DataPacketLength returns the padded on-wire length of a data
	// packet of the given plaintext length.
	DataPacketLength(length int) int

	// RegisterFuncLog attaches a logger factory used for connection
	// lifecycle traces. Nil restores silence.
	RegisterFuncLog(f liblog.FuncLog)

	// HandleNoop processes a NOOP message.
	HandleNoop(packet []byte) liberr.Error

	// HandlePing processes a PING message, answering PONG while online.
	HandlePing(packet []byte) liberr.Error

	// HandlePong processes a PONG message, raising the matching event.
	HandlePong(packet []byte) liberr.Error

	// HandleAuth processes an AUTH message server-side: host
	// authentication, configuration push, transition to online.
	HandleAuth(packet []byte) liberr.Error

	// HandleConfigIPv4 processes a CONFIG_IPV4 message client-side:
	// configuration apply, transition to online.
	HandleConfigIPv4(packet []byte) liberr.Error

	// HandleData processes a DATA message, handing the inside packet to
	// the host.
	HandleData(packet []byte) liberr.Error

	// HandleAuthResponse processes the legacy failed-login response.
	HandleAuthResponse(packet []byte) liberr.Error

	// HandleAuthResponseWithConfig is reserved.
	HandleAuthResponseWithConfig(packet []byte) liberr.Error

	// HandleGoodbye processes a GOODBYE teardown hint.
	HandleGoodbye(packet []byte) liberr.Error
}

// New returns an empty connection: every field zero, state none. The
// connection becomes usable after the credential/MTU setters and one of
// ClientConnect / ServerConnect.
func New() Connection {
	return &conn{
		st:  libatm.NewValue[libstt.State](),
		cb:  libatm.NewValue[Callbacks](),
		tmo: libatm.NewValue[int](),
		tmr: libatm.NewValue[bool](),
		fl:  libatm.NewValue[liblog.FuncLog](),
	}
}
