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
	"strconv"

	liberr "github.com/nabbar/golib/errors"
	libevt "github.com/nabbar/helium/connection/event"
	libstt "github.com/nabbar/helium/connection/state"
	libmsg "github.com/nabbar/helium/message"
	libnet "github.com/nabbar/helium/network"
)

// The handlers below are invoked by the dispatcher after decryption, one
// per message identifier. Each validates state and length before mutating
// the connection; observable effects happen in declaration order.

func (o *conn) HandleNoop(packet []byte) liberr.Error {
	if packet == nil {
		return ErrorParamEmpty.Error(nil)
	}

	return nil
}

func (o *conn) HandlePing(packet []byte) liberr.Error {
	if packet == nil {
		return ErrorParamEmpty.Error(nil)
	}

	if o.st.Load() != libstt.StateOnline {
		return ErrorInvalidState.Error(nil)
	}

	_ = o.sendMessage(libmsg.EncodeHeader(libmsg.MsgPong))

	return nil
}

func (o *conn) HandlePong(packet []byte) liberr.Error {
	if packet == nil {
		return ErrorParamEmpty.Error(nil)
	}

	o.raiseEvent(libevt.EventPong)

	return nil
}

func (o *conn) HandleAuth(packet []byte) liberr.Error {
	if packet == nil {
		return ErrorParamEmpty.Error(nil)
	}

	// Authenticating is a server matter, accepted on the first AUTH
	// after link up and again while online to refresh the pushed
	// configuration.
	if st := o.st.Load(); !o.srv || (st != libstt.StateLinkUp && st != libstt.StateOnline) {
		return ErrorInvalidState.Error(nil)
	}

	c := o.cb.Load()

	if c.Auth == nil || c.PopulateNetworkConfigIPv4 == nil {
		return ErrorInvalidState.Error(nil)
	}

	msg, err := libmsg.DecodeAuth(packet)
	if err != nil {
		return err
	}

	ok := c.Auth(o, msg.Username, msg.Password, o.dat)

	// The credential is consumed either way, keep no copy in the buffer.
	libmsg.ScrubAuthPassword(packet)

	if !ok {
		o.logWarning("authentication rejected for user %s", msg.Username)
		o.changeState(libstt.StateDisconnecting)
		return ErrorAccessDenied.Error(nil)
	}

	o.usr = msg.Username

	var cfg libnet.ConfigIPv4

	if err = c.PopulateNetworkConfigIPv4(o, &cfg, o.dat); err != nil {
		return err
	}

	rsp, err := libmsg.EncodeConfigIPv4(libmsg.ConfigIPv4{
		Session: o.sid,
		LocalIP: cfg.LocalIP,
		PeerIP:  cfg.PeerIP,
		DNSIP:   cfg.DNSIP,
		MTU:     libnet.MaxMTUString,
	})

	if err != nil {
		return err
	}

	_ = o.sendMessage(rsp)

	o.changeState(libstt.StateOnline)

	return nil
}

func (o *conn) HandleConfigIPv4(packet []byte) liberr.Error {
	if packet == nil {
		return ErrorParamEmpty.Error(nil)
	}

	if o.srv || o.st.Load() != libstt.StateAuthenticating {
		return ErrorInvalidState.Error(nil)
	}

	msg, err := libmsg.DecodeConfigIPv4(packet)
	if err != nil {
		return err
	}

	cfg := libnet.ConfigIPv4{
		LocalIP: msg.LocalIP,
		PeerIP:  msg.PeerIP,
		DNSIP:   msg.DNSIP,
	}

	// A server announcing garbage, zero or an oversized mtu gets the
	// maximum instead of breaking the tunnel.
	if v, e := strconv.Atoi(msg.MTU); e != nil || v <= 0 || v > libnet.MaxMTU {
		cfg.MTU = libnet.MaxMTU
	} else {
		cfg.MTU = v
	}

	o.sid = msg.Session

	o.changeState(libstt.StateConfiguring)

	if c := o.cb.Load(); c.NetworkConfigIPv4 != nil {
		// Failing to apply the config is not a state change: the host is
		// expected to disconnect when it sees the fatal code.
		if e := c.NetworkConfigIPv4(o, cfg, o.dat); e != nil {
			return ErrorCallbackFailed.Error(e)
		}
	}

	o.changeState(libstt.StateOnline)

	return nil
}

func (o *conn) HandleData(packet []byte) liberr.Error {
	if packet == nil {
		return ErrorParamEmpty.Error(nil)
	}

	if o.st.Load() != libstt.StateOnline {
		return ErrorInvalidState.Error(nil)
	}

	msg, err := libmsg.DecodeData(packet, o.vrs)
	if err != nil {
		return err
	}

	if !libnet.IsPacketIPv4(msg.Payload) {
		return libmsg.ErrorBadPacket.Error(nil)
	}

	if c := o.cb.Load(); c.InsideWrite != nil {
		_ = c.InsideWrite(o, msg.Payload, o.dat)
	}

	return nil
}

func (o *conn) HandleAuthResponse(packet []byte) liberr.Error {
	if packet == nil {
		return ErrorParamEmpty.Error(nil)
	}

	// A server only sends this on a failed login.
	return ErrorAccessDenied.Error(nil)
}

func (o *conn) HandleAuthResponseWithConfig(packet []byte) liberr.Error {
	if packet == nil {
		return ErrorParamEmpty.Error(nil)
	}

	return nil
}

func (o *conn) HandleGoodbye(packet []byte) liberr.Error {
	if packet == nil {
		return ErrorParamEmpty.Error(nil)
	}

	return ErrorConnectionClosed.Error(nil)
}
