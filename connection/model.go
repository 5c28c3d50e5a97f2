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
	libatm "github.com/nabbar/golib/atomic"
	liberr "github.com/nabbar/golib/errors"
	liblog "github.com/nabbar/golib/logger"
	libstt "github.com/nabbar/helium/connection/state"
	libmsg "github.com/nabbar/helium/message"
	libnet "github.com/nabbar/helium/network"
	libpad "github.com/nabbar/helium/padding"
	libprt "github.com/nabbar/helium/protocol"
	libssl "github.com/nabbar/helium/ssl"
	libtpt "github.com/nabbar/helium/transport"
)

// conn is single-owner: only the hot fields touched from re-entrant
// callbacks sit in atomic cells, everything else is plain.
type conn struct {
	st  libatm.Value[libstt.State]
	cb  libatm.Value[Callbacks]
	tmo libatm.Value[int]
	tmr libatm.Value[bool]
	fl  libatm.Value[liblog.FuncLog]

	ssl libssl.Session
	rnd libssl.Random

	usr string
	pwd string
	mtu int
	vrs libprt.Version
	trs libtpt.Transport
	pad libpad.Padding

	agg bool // aggressive retransmit schedule
	rom bool // roaming disabled
	srv bool

	sid uint64
	psd uint64

	due bool // renegotiation requested
	rip bool // renegotiation in flight

	dat interface{}
	plg PluginChain
}

func (o *conn) SetUsername(user string) liberr.Error {
	if user == "" {
		return ErrorEmptyString.Error(nil)
	} else if len(user) > libmsg.TextFieldLength {
		return ErrorStringTooLong.Error(nil)
	}

	o.usr = user
	return nil
}

func (o *conn) Username() string {
	return o.usr
}

func (o *conn) IsUsernameSet() bool {
	return o.usr != ""
}

func (o *conn) SetPassword(pass string) liberr.Error {
	if pass == "" {
		return ErrorEmptyString.Error(nil)
	} else if len(pass) > libmsg.TextFieldLength {
		return ErrorStringTooLong.Error(nil)
	}

	o.pwd = pass
	return nil
}

func (o *conn) IsPasswordSet() bool {
	return o.pwd != ""
}

func (o *conn) SetOutsideMTU(mtu int) liberr.Error {
	if mtu <= 0 {
		return ErrorInvalidMTUSize.Error(nil)
	}

	o.mtu = mtu
	return nil
}

func (o *conn) OutsideMTU() int {
	return o.mtu
}

func (o *conn) IsOutsideMTUSet() bool {
	return o.mtu != 0
}

func (o *conn) SetProtocolVersion(v libprt.Version) liberr.Error {
	o.vrs = v
	return nil
}

func (o *conn) ProtocolVersion() libprt.Version {
	return o.vrs
}

func (o *conn) SetUserData(data interface{}) {
	o.dat = data
}

func (o *conn) UserData() interface{} {
	return o.dat
}

func (o *conn) State() libstt.State {
	return o.st.Load()
}

func (o *conn) IsServer() bool {
	return o.srv
}

func (o *conn) DataPacketLength(length int) int {
	return o.pad.PaddedSize(length, libnet.MaxMTU)
}

func (o *conn) IsValidClient(x Context) liberr.Error {
	if x == nil {
		return ErrorParamEmpty.Error(nil)
	}

	if !o.IsUsernameSet() {
		return ErrorUsernameNotSet.Error(nil)
	}

	if !o.IsPasswordSet() {
		return ErrorPasswordNotSet.Error(nil)
	}

	if !o.IsOutsideMTUSet() {
		return ErrorMTUNotSet.Error(nil)
	}

	if !o.vrs.IsUnset() && !x.IsLatestVersion(o.vrs) {
		return ErrorProtocolVersion.Error(nil)
	}

	return nil
}

func (o *conn) IsValidServer(x Context) liberr.Error {
	if x == nil {
		return ErrorParamEmpty.Error(nil)
	}

	if !o.IsOutsideMTUSet() {
		return ErrorMTUNotSet.Error(nil)
	}

	if !o.vrs.IsUnset() && !x.IsSupportedVersion(o.vrs) {
		return ErrorProtocolVersion.Error(nil)
	}

	return nil
}

func (o *conn) Close() {
	if o.ssl != nil {
		_ = o.ssl.Close()
		o.ssl = nil
	}

	// no callback may fire after Close
	o.cb.Store(Callbacks{})
}

func (o *conn) RegisterFuncLog(f liblog.FuncLog) {
	o.fl.Store(f)
}

func (o *conn) logger() liblog.Logger {
	if f := o.fl.Load(); f != nil {
		return f()
	}

	return nil
}

func (o *conn) logDebug(msg string, args ...interface{}) {
	if l := o.logger(); l != nil {
		l.Debug(msg, nil, args...)
	}
}

func (o *conn) logInfo(msg string, args ...interface{}) {
	if l := o.logger(); l != nil {
		l.Info(msg, nil, args...)
	}
}

func (o *conn) logWarning(msg string, args ...interface{}) {
	if l := o.logger(); l != nil {
		l.Warning(msg, nil, args...)
	}
}
