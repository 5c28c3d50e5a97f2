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

package message_test

import (
	"strings"

	libmsg "github.com/nabbar/helium/message"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Message Codec", func() {
	Describe("Header", func() {
		It("should encode a single identifier byte", func() {
			p := libmsg.EncodeHeader(libmsg.MsgGoodbye)
			Expect(p).To(HaveLen(libmsg.HeaderSize))
			Expect(p[0]).To(Equal(libmsg.MsgGoodbye.Uint8()))
		})

		It("should decode the identifier", func() {
			id, err := libmsg.DecodeID([]byte{libmsg.MsgPing.Uint8()})
			Expect(err).To(BeNil())
			Expect(id).To(Equal(libmsg.MsgPing))
		})

		It("should refuse an empty buffer", func() {
			_, err := libmsg.DecodeID([]byte{})
			Expect(err).ToNot(BeNil())
			Expect(err.IsCode(libmsg.ErrorPacketTooSmall)).To(BeTrue())
		})
	})

	Describe("Auth", func() {
		It("should carry credentials through encode and decode", func() {
			p, err := libmsg.EncodeAuth(libmsg.Auth{
				Type:     libmsg.AuthTypeUserPass,
				Username: "myuser",
				Password: "mypass",
			})
			Expect(err).To(BeNil())
			Expect(p).To(HaveLen(libmsg.AuthSize))
			Expect(p[0]).To(Equal(libmsg.MsgAuth.Uint8()))

			m, err := libmsg.DecodeAuth(p)
			Expect(err).To(BeNil())
			Expect(m.Type).To(Equal(libmsg.AuthTypeUserPass))
			Expect(m.Username).To(Equal("myuser"))
			Expect(m.Password).To(Equal("mypass"))
		})

		It("should carry full width credentials without terminator", func() {
			u := strings.Repeat("u", libmsg.TextFieldLength)
			w := strings.Repeat("p", libmsg.TextFieldLength)

			p, err := libmsg.EncodeAuth(libmsg.Auth{Type: libmsg.AuthTypeUserPass, Username: u, Password: w})
			Expect(err).To(BeNil())

			m, err := libmsg.DecodeAuth(p)
			Expect(err).To(BeNil())
			Expect(m.Username).To(Equal(u))
			Expect(m.Password).To(Equal(w))
		})

		It("should refuse an overlong credential", func() {
			_, err := libmsg.EncodeAuth(libmsg.Auth{
				Username: strings.Repeat("u", libmsg.TextFieldLength+1),
			})
			Expect(err).ToNot(BeNil())
			Expect(err.IsCode(libmsg.ErrorFieldTooLong)).To(BeTrue())
		})

		It("should refuse a short packet", func() {
			_, err := libmsg.DecodeAuth(make([]byte, libmsg.AuthSize-1))
			Expect(err).ToNot(BeNil())
			Expect(err.IsCode(libmsg.ErrorPacketTooSmall)).To(BeTrue())
		})

		It("should clamp a forged declared length to the field", func() {
			p, err := libmsg.EncodeAuth(libmsg.Auth{Type: libmsg.AuthTypeUserPass, Username: "u", Password: "p"})
			Expect(err).To(BeNil())

			p[2] = 0xFF

			m, err := libmsg.DecodeAuth(p)
			Expect(err).To(BeNil())
			Expect(m.Username).To(Equal("u"))
		})
	})

	Describe("ScrubAuthPassword", func() {
		It("should zero only the password field", func() {
			p, err := libmsg.EncodeAuth(libmsg.Auth{Type: libmsg.AuthTypeUserPass, Username: "myuser", Password: "mypass"})
			Expect(err).To(BeNil())

			libmsg.ScrubAuthPassword(p)

			m, err := libmsg.DecodeAuth(p)
			Expect(err).To(BeNil())
			Expect(m.Username).To(Equal("myuser"))
			Expect(m.Password).To(Equal(""))

			for _, b := range p[4+libmsg.TextFieldLength : 4+2*libmsg.TextFieldLength] {
				Expect(b).To(Equal(uint8(0)))
			}
		})

		It("should leave a short buffer untouched", func() {
			p := []byte{1, 2, 3}
			libmsg.ScrubAuthPassword(p)
			Expect(p).To(Equal([]byte{1, 2, 3}))
		})
	})

	Describe("ConfigIPv4", func() {
		It("should carry the session and ascii fields", func() {
			p, err := libmsg.EncodeConfigIPv4(libmsg.ConfigIPv4{
				Session: 0xDEADBEEF01020304,
				LocalIP: "10.125.0.2",
				PeerIP:  "10.125.0.1",
				DNSIP:   "10.125.0.1",
				MTU:     "1350",
			})
			Expect(err).To(BeNil())
			Expect(p).To(HaveLen(libmsg.ConfigIPv4Size))
			Expect(p[0]).To(Equal(libmsg.MsgConfigIPv4.Uint8()))

			m, err := libmsg.DecodeConfigIPv4(p)
			Expect(err).To(BeNil())
			Expect(m.Session).To(Equal(uint64(0xDEADBEEF01020304)))
			Expect(m.LocalIP).To(Equal("10.125.0.2"))
			Expect(m.PeerIP).To(Equal("10.125.0.1"))
			Expect(m.DNSIP).To(Equal("10.125.0.1"))
			Expect(m.MTU).To(Equal("1350"))
		})

		It("should write the session in network order", func() {
			p, err := libmsg.EncodeConfigIPv4(libmsg.ConfigIPv4{Session: 1})
			Expect(err).To(BeNil())
			Expect(p[8]).To(Equal(uint8(1)))
			Expect(p[1]).To(Equal(uint8(0)))
		})

		It("should refuse an overlong field", func() {
			_, err := libmsg.EncodeConfigIPv4(libmsg.ConfigIPv4{
				LocalIP: strings.Repeat("1", 25),
			})
			Expect(err).ToNot(BeNil())
			Expect(err.IsCode(libmsg.ErrorFieldTooLong)).To(BeTrue())
		})

		It("should refuse a short packet", func() {
			_, err := libmsg.DecodeConfigIPv4(make([]byte, libmsg.ConfigIPv4Size-1))
			Expect(err).ToNot(BeNil())
			Expect(err.IsCode(libmsg.ErrorPacketTooSmall)).To(BeTrue())
		})
	})
})
