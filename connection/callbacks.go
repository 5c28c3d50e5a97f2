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

package connection

import (
	liberr "github.com/nabbar/golib/errors"
	libevt "github.com/nabbar/helium/connection/event"
	libstt "github.com/nabbar/helium/connection/state"
	libnet "github.com/nabbar/helium/network"
)

// FuncStateChange notifies each distinct state transition, before any work
// attached to the new state runs.
type FuncStateChange func(c Connection, st libstt.State, data interface{})

// FuncNudgeTime hands the host a deadline in milliseconds; the host is
// expected to call Nudge once it elapses. At most one deadline is in
// flight at any time.
type FuncNudgeTime func(c Connection, ms int, data interface{})

// FuncInsideWrite delivers one decrypted inside IPv4 packet to the host.
type FuncInsideWrite func(c Connection, packet []byte, data interface{}) liberr.Error

// FuncOutsideWrite delivers ciphertext the host must put on the wire.
type FuncOutsideWrite func(c Connection, packet []byte, data interface{}) liberr.Error

// FuncEvent notifies an out-of-band event.
type FuncEvent func(c Connection, evt libevt.Event, data interface{})

// FuncAuth lets a server host accept or reject a credential pair.
type FuncAuth func(c Connection, username, password string, data interface{}) bool

// FuncPopulateNetworkConfigIPv4 lets a server host fill the network
// configuration pushed to a freshly authenticated client.
type FuncPopulateNetworkConfigIPv4 func(c Connection, cfg *libnet.ConfigIPv4, data interface{}) liberr.Error

// FuncNetworkConfigIPv4 lets a client host apply the network configuration
// received from the server.
type FuncNetworkConfigIPv4 func(c Connection, cfg libnet.ConfigIPv4, data interface{}) liberr.Error

// Callbacks is the capability set a host installs on the shared context;
// it is copied onto each connection when it connects. Every member is
// optional except where a feature needs it: a server cannot authenticate
// without Auth and PopulateNetworkConfigIPv4.
type Callbacks struct {
	StateChange               FuncStateChange
	NudgeTime                 FuncNudgeTime
	InsideWrite               FuncInsideWrite
	OutsideWrite              FuncOutsideWrite
	Event                     FuncEvent
	Auth                      FuncAuth
	PopulateNetworkConfigIPv4 FuncPopulateNetworkConfigIPv4
	NetworkConfigIPv4         FuncNetworkConfigIPv4
}
