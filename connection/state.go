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
)

// changeState is a no-op when the state does not actually change, so the
// host callback fires exactly once per distinct transition. It may
// re-enter itself: a client entering link up sends AUTH, which moves the
// connection to authenticating before the outer call returns.
func (o *conn) changeState(st libstt.State) {
	if o.st.Load() == st {
		return
	}

	o.st.Store(st)
	o.logDebug("connection state changed to %s", st.String())

	if c := o.cb.Load(); c.StateChange != nil {
		c.StateChange(o, st, o.dat)
	}

	if st == libstt.StateLinkUp && !o.srv {
		_ = o.sendAuth()
	}
}

func (o *conn) raiseEvent(evt libevt.Event) {
	if c := o.cb.Load(); c.Event != nil {
		c.Event(o, evt, o.dat)
	}
}

// disconnectAndShutdown assumes the pre-flight checks already happened.
// The engine shutdown is a courtesy call, its result is ignored since the
// session is about to be released anyway.
func (o *conn) disconnectAndShutdown() {
	prv := o.st.Load()

	o.changeState(libstt.StateDisconnecting)

	if prv == libstt.StateOnline {
		_ = o.sendGoodbye()
	}

	if o.ssl != nil {
		_ = o.ssl.Shutdown()
	}

	c := o.cb.Load()
	c.InsideWrite = nil
	c.OutsideWrite = nil
	o.cb.Store(c)

	o.tmo.Store(0)

	o.changeState(libstt.StateDisconnected)
}

func (o *conn) Disconnect() liberr.Error {
	if o.ssl == nil {
		return ErrorNeverConnected.Error(nil)
	}

	if o.st.Load() != libstt.StateOnline {
		return ErrorInvalidState.Error(nil)
	}

	o.disconnectAndShutdown()

	return nil
}
