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

package message

import (
	"encoding/binary"

	liberr "github.com/nabbar/golib/errors"
	libnet "github.com/nabbar/helium/network"
	libprt "github.com/nabbar/helium/protocol"
)

// DecodeID returns the message identifier of a packet.
func DecodeID(p []byte) (MsgID, liberr.Error) {
	if len(p) < HeaderSize {
		return 0, ErrorPacketTooSmall.Error(nil)
	}

	return MsgID(p[0]), nil
}

// DecodeAuth decodes an AUTH message. The declared credential lengths are
// clamped to their fixed fields and copies are bounded at the first NUL.
func DecodeAuth(p []byte) (Auth, liberr.Error) {
	if len(p) < AuthSize {
		return Auth{}, ErrorPacketTooSmall.Error(nil)
	}

	var (
		ul = int(p[2])
		pl = int(p[3])
	)

	if ul > TextFieldLength {
		ul = TextFieldLength
	}

	if pl > TextFieldLength {
		pl = TextFieldLength
	}

	return Auth{
		Type:     AuthType(p[1]),
		Username: cutField(p[4 : 4+ul]),
		Password: cutField(p[4+TextFieldLength : 4+TextFieldLength+pl]),
	}, nil
}

// ScrubAuthPassword zeroes the password field of an AUTH packet in place.
// It is safe on any buffer, too-short packets are left untouched.
func ScrubAuthPassword(p []byte) {
	if len(p) < 4+TextFieldLength {
		return
	}

	e := 4 + 2*TextFieldLength
	if e > len(p) {
		e = len(p)
	}

	for i := 4 + TextFieldLength; i < e; i++ {
		p[i] = 0
	}
}

// DecodeConfigIPv4 decodes a CONFIG_IPV4 message. Address and mtu fields
// keep their ASCII form bounded at the first NUL.
func DecodeConfigIPv4(p []byte) (ConfigIPv4, liberr.Error) {
	if len(p) < ConfigIPv4Size {
		return ConfigIPv4{}, ErrorPacketTooSmall.Error(nil)
	}

	o := HeaderSize + 8
	m := ConfigIPv4{
		Session: binary.BigEndian.Uint64(p[1:9]),
	}

	m.LocalIP = cutField(p[o : o+libnet.MaxIPv4StringLength])
	o += libnet.MaxIPv4StringLength
	m.PeerIP = cutField(p[o : o+libnet.MaxIPv4StringLength])
	o += libnet.MaxIPv4StringLength
	m.DNSIP = cutField(p[o : o+libnet.MaxIPv4StringLength])
	o += libnet.MaxIPv4StringLength
	m.MTU = cutField(p[o : o+libnet.MaxIPv4StringLength])

	return m, nil
}

// DecodeData decodes a DATA message under the given protocol version. The
// returned payload aliases p. A declared length larger than the remaining
// buffer is refused.
func DecodeData(p []byte, v libprt.Version) (Data, liberr.Error) {
	if len(p) < DataHeaderSize {
		return Data{}, ErrorPacketTooSmall.Error(nil)
	}

	var l uint16

	if v.LegacyLength() {
		l = binary.NativeEndian.Uint16(p[1:3])
	} else {
		l = binary.BigEndian.Uint16(p[1:3])
	}

	if int(l) > len(p)-DataHeaderSize {
		return Data{}, ErrorPacketTooSmall.Error(nil)
	}

	return Data{
		Length:  l,
		Payload: p[DataHeaderSize : DataHeaderSize+int(l)],
	}, nil
}
