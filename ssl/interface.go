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

// Package ssl abstracts the (D)TLS record-layer engine a tunnel connection
// runs on.
//
// The connection core never performs I/O or cryptography itself: it drives
// a Session created by the shared context from the engine's configuration,
// and reacts to the transient results WantRead / WantWrite / AppDataReady
// the engine reports while a handshake or rekey is incomplete. Concrete
// implementations of Session live outside this module (engine bindings,
// test fakes); this package only fixes the contract.
package ssl

// MaxHeaderSize is the worst-case record-layer header overhead the engine
// may prepend to a datagram. It is handed back when sizing the engine MTU
// so the engine does not reserve the space twice.
const MaxHeaderSize = 37

// Session is a single (D)TLS session owned by exactly one connection.
//
// All calls are non-blocking: an operation that cannot complete without
// more inbound data returns ErrWantRead (resp. ErrWantWrite) and is
// expected to be retried after the host delivers more packets or signals a
// timeout.
type Session interface {
	// Negotiate starts or resumes the handshake.
	Negotiate() error

	// Write encrypts and emits one application record. The engine copies
	// the buffer before returning; a count of zero with no error means the
	// peer closed the session.
	Write(p []byte) (n int, err error)

	// Read delivers one decrypted application record into p.
	Read(p []byte) (n int, err error)

	// Shutdown sends the courtesy close-notify to the peer.
	Shutdown() error

	// Close releases the session. No call is valid afterwards.
	Close() error

	// SetMTU sizes the engine's datagram fragmentation threshold.
	SetMTU(mtu int) error

	// SetNonBlocking marks the session as externally driven. Datagram
	// sessions must be switched before Negotiate.
	SetNonBlocking(flag bool)

	// CurrentTimeout returns the engine's current retransmit timeout in
	// seconds.
	CurrentTimeout() int

	// GotTimeout tells the engine a scheduled retransmit deadline elapsed.
	GotTimeout() error

	// SupportsRenegotiation returns true when the peer negotiated the
	// secure renegotiation extension.
	SupportsRenegotiation() bool

	// Rehandshake starts a secure renegotiation.
	Rehandshake() error

	// UpdateKeys starts a TLS 1.3 key update. Stream sessions only.
	UpdateKeys() error

	// CheckDomainName pins the expected peer certificate DN.
	CheckDomainName(dn string) error

	// SetIOContext attaches the opaque value the engine hands back on its
	// read/write path, normally the owning connection.
	SetIOContext(ctx interface{})
}

// Random is the engine-provided source of cryptographic randomness,
// shared by reference with the owning context.
type Random interface {
	// GenerateBlock fills p with random bytes.
	GenerateBlock(p []byte) error
}
