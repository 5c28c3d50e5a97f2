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
	"encoding/binary"

	liberr "github.com/nabbar/golib/errors"
)

// generateSessionID draws 8 random bytes from the engine randomness
// source shared with the context.
func (o *conn) generateSessionID() (uint64, liberr.Error) {
	if o.rnd == nil {
		return 0, ErrorRandomFailure.Error(nil)
	}

	p := make([]byte, 8)

	if e := o.rnd.GenerateBlock(p); e != nil {
		return 0, ErrorRandomFailure.Error(e)
	}

	return binary.BigEndian.Uint64(p), nil
}

func (o *conn) SessionID() uint64 {
	return o.sid
}

func (o *conn) PendingSessionID() uint64 {
	return o.psd
}

// SetSessionID assigns the identifier exactly once. Server connections
// draw theirs while connecting, so on a connected server this setter
// always fails.
func (o *conn) SetSessionID(id uint64) liberr.Error {
	if o.sid != 0 {
		return ErrorInvalidState.Error(nil)
	}

	o.sid = id

	return nil
}

// RotateSessionID writes the freshly drawn identifier to the pending
// slot only; the current identifier stays in use until the peer
// acknowledges the pending one.
func (o *conn) RotateSessionID() (uint64, liberr.Error) {
	if !o.srv || o.psd != 0 {
		return 0, ErrorInvalidState.Error(nil)
	}

	if sid, err := o.generateSessionID(); err != nil {
		return 0, err
	} else {
		o.psd = sid
		return sid, nil
	}
}
