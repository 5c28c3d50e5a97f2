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
	libssl "github.com/nabbar/helium/ssl"
)

const (
	// TimeoutMultiplier scales one engine timeout second to 100ms of
	// host deadline during the initial handshake.
	TimeoutMultiplier = 100

	// RenegotiationTimeoutMultiplier keeps the full second during a
	// rekey, the peer may legitimately be slow there.
	RenegotiationTimeoutMultiplier = 1000
)

// updateTimeout refreshes the deadline from the engine and announces it
// to the host. Announcing is skipped while a previous deadline has not
// fired yet, a host re-entering before expiry must not stack timers.
func (o *conn) updateTimeout() {
	// Only the initial handshake and an ongoing rekey are timer driven.
	if o.st.Load() == libstt.StateOnline && !o.rip {
		return
	}

	if o.ssl == nil {
		return
	}

	t := o.ssl.CurrentTimeout()

	if o.rip {
		t *= RenegotiationTimeoutMultiplier
	} else {
		t *= TimeoutMultiplier
	}

	o.tmo.Store(t)

	if c := o.cb.Load(); c.NudgeTime != nil && !o.tmr.Load() {
		c.NudgeTime(o, t, o.dat)
		o.tmr.Store(true)
	}
}

func (o *conn) NudgeTime() int {
	if o.st.Load() == libstt.StateOnline && !o.rip {
		return 0
	}

	return o.tmo.Load()
}

func (o *conn) Nudge() liberr.Error {
	// The host timer fired, nothing is armed anymore.
	o.tmr.Store(false)

	if o.st.Load() == libstt.StateAuthenticating {
		_ = o.sendAuth()
	} else if o.ssl != nil {
		if e := o.ssl.GotTimeout(); e != nil {
			// AppDataReady is fatal here: a pending application record
			// has no business surfacing on a retransmit tick.
			if !libssl.IsWant(e) {
				o.logWarning("connection timed out after nudge")
				o.changeState(libstt.StateDisconnected)
				return ErrorConnectionTimedOut.Error(e)
			}
		}
	}

	o.updateTimeout()

	return nil
}
