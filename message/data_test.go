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
	"encoding/binary"

	libmsg "github.com/nabbar/helium/message"
	libprt "github.com/nabbar/helium/protocol"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Data Message", func() {
	var payload = []byte{0x45, 0x00, 0x00, 0x04}

	Describe("Encode", func() {
		It("should frame the payload with its length in network order", func() {
			p, err := libmsg.EncodeData(libmsg.Data{Payload: payload}, libprt.Version11)
			Expect(err).To(BeNil())
			Expect(p).To(HaveLen(libmsg.DataHeaderSize + len(payload)))
			Expect(p[0]).To(Equal(libmsg.MsgData.Uint8()))
			Expect(binary.BigEndian.Uint16(p[1:3])).To(Equal(uint16(len(payload))))
		})

		It("should frame the length in host order for protocol 1.0", func() {
			p, err := libmsg.EncodeData(libmsg.Data{Payload: payload}, libprt.Version10)
			Expect(err).To(BeNil())
			Expect(binary.NativeEndian.Uint16(p[1:3])).To(Equal(uint16(len(payload))))
		})
	})

	Describe("Decode", func() {
		It("should round trip under the same version", func() {
			for _, v := range []libprt.Version{libprt.Version10, libprt.Version11} {
				p, err := libmsg.EncodeData(libmsg.Data{Payload: payload}, v)
				Expect(err).To(BeNil())

				m, err := libmsg.DecodeData(p, v)
				Expect(err).To(BeNil())
				Expect(m.Length).To(Equal(uint16(len(payload))))
				Expect(m.Payload).To(Equal(payload))
			}
		})

		It("should diverge between protocol versions on the same bytes", func() {
			// one byte of payload: 1.1 reads 1, 1.0 reads the swapped
			// length and refuses the packet
			p := []byte{libmsg.MsgData.Uint8(), 0x00, 0x01, 0x45}

			m, err := libmsg.DecodeData(p, libprt.Version11)
			Expect(err).To(BeNil())
			Expect(m.Length).To(Equal(uint16(1)))

			if binary.NativeEndian.Uint16([]byte{0x00, 0x01}) != 1 {
				_, err = libmsg.DecodeData(p, libprt.Version10)
				Expect(err).ToNot(BeNil())
				Expect(err.IsCode(libmsg.ErrorPacketTooSmall)).To(BeTrue())
			}
		})

		It("should refuse a declared length past the buffer", func() {
			p := []byte{libmsg.MsgData.Uint8(), 0x00, 0x05, 0x45, 0x00}

			_, err := libmsg.DecodeData(p, libprt.Version11)
			Expect(err).ToNot(BeNil())
			Expect(err.IsCode(libmsg.ErrorPacketTooSmall)).To(BeTrue())
		})

		It("should refuse a headerless buffer", func() {
			_, err := libmsg.DecodeData([]byte{libmsg.MsgData.Uint8()}, libprt.Version11)
			Expect(err).ToNot(BeNil())
			Expect(err.IsCode(libmsg.ErrorPacketTooSmall)).To(BeTrue())
		})

		It("should alias the payload instead of copying", func() {
			p, err := libmsg.EncodeData(libmsg.Data{Payload: payload}, libprt.Version11)
			Expect(err).To(BeNil())

			m, err := libmsg.DecodeData(p, libprt.Version11)
			Expect(err).To(BeNil())

			p[libmsg.DataHeaderSize] = 0x99
			Expect(m.Payload[0]).To(Equal(uint8(0x99)))
		})
	})
})
