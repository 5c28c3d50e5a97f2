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
	libmsg "github.com/nabbar/helium/message"
)

// sendMessage pushes one application record into the engine. The engine
// copies the buffer, the caller keeps ownership. Any host-side buffering
// happens behind the outside write callback.
func (o *conn) sendMessage(p []byte) liberr.Error {
	if o.ssl == nil {
		return ErrorNeverConnected.Error(nil)
	}

	if n, e := o.ssl.Write(p); e != nil {
		return ErrorSSL.Error(e)
	} else if n == 0 {
		return ErrorConnectionClosed.Error(nil)
	}

	return nil
}

// sendGoodbye is best effort, the peer may already be gone.
func (o *conn) sendGoodbye() liberr.Error {
	_ = o.sendMessage(libmsg.EncodeHeader(libmsg.MsgGoodbye))
	return nil
}

func (o *conn) SendKeepalive() liberr.Error {
	if o.st.Load() != libstt.StateOnline {
		return ErrorInvalidState.Error(nil)
	}

	return o.sendMessage(libmsg.EncodeHeader(libmsg.MsgPing))
}

// sendAuth is idempotent: nudging an authenticating connection re-sends
// the same request without a second state-change notification.
func (o *conn) sendAuth() liberr.Error {
	if st := o.st.Load(); st != libstt.StateLinkUp && st != libstt.StateAuthenticating {
		return ErrorInvalidState.Error(nil)
	}

	o.changeState(libstt.StateAuthenticating)

	m, err := libmsg.EncodeAuth(libmsg.Auth{
		Type:     libmsg.AuthTypeUserPass,
		Username: o.usr,
		Password: o.pwd,
	})

	if err != nil {
		return err
	}

	return o.sendMessage(m)
}

func (o *conn) OutsideWrite(packet []byte) liberr.Error {
	if packet == nil {
		return ErrorParamEmpty.Error(nil)
	}

	if c := o.cb.Load(); c.OutsideWrite != nil {
		return c.OutsideWrite(o, packet, o.dat)
	}

	return nil
}
