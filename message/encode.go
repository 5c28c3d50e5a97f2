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

// EncodeHeader returns the wire form of a body-less message (NOOP, PING,
// PONG, GOODBYE, ...).
func EncodeHeader(id MsgID) []byte {
	return []byte{id.Uint8()}
}

// EncodeAuth returns the wire form of an AUTH message. Credentials longer
// than their fixed field are refused.
func EncodeAuth(m Auth) ([]byte, liberr.Error) {
	if len(m.Username) > TextFieldLength || len(m.Password) > TextFieldLength {
		return nil, ErrorFieldTooLong.Error(nil)
	}

	p := make([]byte, AuthSize)
	p[0] = MsgAuth.Uint8()
	p[1] = uint8(m.Type)
	p[2] = uint8(len(m.Username))
	p[3] = uint8(len(m.Password))

	putField(p[4:4+TextFieldLength], m.Username)
	putField(p[4+TextFieldLength:4+2*TextFieldLength], m.Password)

	return p, nil
}

// EncodeConfigIPv4 returns the wire form of a CONFIG_IPV4 message.
// Address or mtu values longer than their fixed field are refused.
func EncodeConfigIPv4(m ConfigIPv4) ([]byte, liberr.Error) {
	for _, s := range []string{m.LocalIP, m.PeerIP, m.DNSIP, m.MTU} {
		if len(s) > libnet.MaxIPv4StringLength {
			return nil, ErrorFieldTooLong.Error(nil)
		}
	}

	p := make([]byte, ConfigIPv4Size)
	p[0] = MsgConfigIPv4.Uint8()

	binary.BigEndian.PutUint64(p[1:9], m.Session)

	o := HeaderSize + 8
	putField(p[o:o+libnet.MaxIPv4StringLength], m.LocalIP)
	o += libnet.MaxIPv4StringLength
	putField(p[o:o+libnet.MaxIPv4StringLength], m.PeerIP)
	o += libnet.MaxIPv4StringLength
	putField(p[o:o+libnet.MaxIPv4StringLength], m.DNSIP)
	o += libnet.MaxIPv4StringLength
	putField(p[o:o+libnet.MaxIPv4StringLength], m.MTU)

	return p, nil
}

// EncodeData returns the wire form of a DATA message under the given
// protocol version. Version 1.0 writes the length in host order, anything
// newer in network order.
func EncodeData(m Data, v libprt.Version) ([]byte, liberr.Error) {
	if len(m.Payload) > int(^uint16(0)) {
		return nil, ErrorFieldTooLong.Error(nil)
	}

	p := make([]byte, DataHeaderSize+len(m.Payload))
	p[0] = MsgData.Uint8()

	if v.LegacyLength() {
		binary.NativeEndian.PutUint16(p[1:3], uint16(len(m.Payload)))
	} else {
		binary.BigEndian.PutUint16(p[1:3], uint16(len(m.Payload)))
	}

	copy(p[DataHeaderSize:], m.Payload)

	return p, nil
}
