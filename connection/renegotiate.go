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
	"errors"

	liberr "github.com/nabbar/golib/errors"
	libevt "github.com/nabbar/helium/connection/event"
	libstt "github.com/nabbar/helium/connection/state"
	libssl "github.com/nabbar/helium/ssl"
)

func (o *conn) ScheduleRenegotiation() liberr.Error {
	o.due = true
	return nil
}

func (o *conn) RenegotiationDue() bool {
	return o.due
}

// Renegotiate drives a scheduled rekey. With a rekey already in flight or
// before the initial handshake and authentication completed, there is
// nothing to start. Older datagram peers support neither mechanism, which
// is fine, the tunnel simply keeps its keys.
func (o *conn) Renegotiate() liberr.Error {
	o.due = false

	if o.rip || o.st.Load() != libstt.StateOnline {
		return nil
	}

	if o.ssl == nil {
		return ErrorNeverConnected.Error(nil)
	}

	var e error

	if o.ssl.SupportsRenegotiation() {
		e = o.ssl.Rehandshake()
		o.rip = true
		o.logInfo("secure renegotiation started")
		o.raiseEvent(libevt.EventSecureRenegotiationStarted)
	} else if o.trs.IsStream() {
		e = o.ssl.UpdateKeys()
	} else {
		return nil
	}

	if e != nil {
		// AppDataReady is expected here: application records keep
		// flowing while the rekey is in flight.
		if libssl.IsWant(e) || errors.Is(e, libssl.ErrAppDataReady) {
			o.updateTimeout()
			return nil
		}

		return ErrorSSL.Error(e)
	}

	return nil
}

func (o *conn) SupportsRenegotiation() bool {
	if o.ssl == nil {
		return false
	}

	return o.ssl.SupportsRenegotiation()
}
