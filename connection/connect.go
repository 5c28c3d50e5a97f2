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
	libstt "github.com/nabbar/helium/connection/state"
	libnet "github.com/nabbar/helium/network"
	libssl "github.com/nabbar/helium/ssl"
)

// configure copies the per-connection defaults from the shared context.
// The protocol version is copied only while unset, an explicit one wins.
func (o *conn) configure(x Context) {
	o.rom = x.DisableRoaming()
	o.pad = x.Padding()
	o.agg = x.AggressiveMode()
	o.trs = x.Transport()

	if o.vrs.IsUnset() {
		o.vrs = x.MaximumSupportedVersion()
	}

	o.cb.Store(x.Callbacks())
	o.rnd = x.Random()
}

func (o *conn) connect(x Context, plugins PluginChain) liberr.Error {
	if x == nil {
		return ErrorParamEmpty.Error(nil)
	}

	o.configure(x)
	o.plg = plugins

	if s, e := x.NewSession(); e != nil {
		return ErrorInitFailed.Error(e)
	} else {
		o.ssl = s
	}

	// Streaming sessions are always non-blocking; datagram sessions must
	// be switched, and sized so the engine does not reserve header space
	// twice.
	if o.trs.IsDatagram() {
		o.ssl.SetNonBlocking(true)

		if e := o.ssl.SetMTU(o.mtu - libnet.PacketOverhead + libssl.MaxHeaderSize); e != nil {
			return ErrorInvalidMTUSize.Error(e)
		}
	}

	// The engine read/write path needs a way back to this connection.
	o.ssl.SetIOContext(o)

	if dn := x.ServerDomainName(); dn != "" {
		if e := o.ssl.CheckDomainName(dn); e != nil {
			return ErrorInitFailed.Error(e)
		}
	}

	o.changeState(libstt.StateConnecting)

	if e := o.ssl.Negotiate(); e != nil {
		// A non-blocking handshake always wants more data than it has;
		// the host will deliver it without being asked.
		if libssl.IsWant(e) {
			o.changeState(libstt.StateConnecting)
			o.updateTimeout()
			return nil
		}

		return ErrorConnectFailed.Error(e)
	}

	// Unlikely outside tests: the whole handshake completed in one pass.
	o.changeState(libstt.StateLinkUp)
	o.updateTimeout()

	return nil
}

func (o *conn) ClientConnect(x Context, plugins PluginChain) liberr.Error {
	if err := o.IsValidClient(x); err != nil {
		return err
	}

	// The role must be fixed before the handshake can reach link up:
	// entering link up client-side sends AUTH synchronously.
	o.srv = false

	return o.connect(x, plugins)
}

func (o *conn) ServerConnect(x Context, plugins PluginChain) liberr.Error {
	if err := o.IsValidServer(x); err != nil {
		return err
	}

	o.srv = true

	if err := o.connect(x, plugins); err != nil {
		return err
	}

	// A session id is drawn even with roaming disabled; HandleAuth
	// stamps it into the pushed configuration either way.
	if sid, e := o.generateSessionID(); e != nil {
		return e
	} else {
		o.sid = sid
	}

	return nil
}
