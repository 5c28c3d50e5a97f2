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

package transport_test

import (
	libtpt "github.com/nabbar/helium/transport"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Transport Mode", func() {
	Describe("Parse", func() {
		It("should parse the protocol family aliases", func() {
			Expect(libtpt.Parse("udp")).To(Equal(libtpt.TransportDatagram))
			Expect(libtpt.Parse("datagram")).To(Equal(libtpt.TransportDatagram))
			Expect(libtpt.Parse("tcp")).To(Equal(libtpt.TransportStream))
			Expect(libtpt.Parse("stream")).To(Equal(libtpt.TransportStream))
		})

		It("should be case insensitive", func() {
			Expect(libtpt.Parse("Stream")).To(Equal(libtpt.TransportStream))
		})

		It("should fall back to datagram", func() {
			Expect(libtpt.Parse("sctp")).To(Equal(libtpt.TransportDatagram))
		})
	})

	Describe("String", func() {
		It("should return stable codes", func() {
			Expect(libtpt.TransportDatagram.String()).To(Equal("datagram"))
			Expect(libtpt.TransportStream.String()).To(Equal("stream"))
		})
	})

	Describe("Predicates", func() {
		It("should classify both modes", func() {
			Expect(libtpt.TransportDatagram.IsDatagram()).To(BeTrue())
			Expect(libtpt.TransportDatagram.IsStream()).To(BeFalse())
			Expect(libtpt.TransportStream.IsStream()).To(BeTrue())
			Expect(libtpt.TransportStream.IsDatagram()).To(BeFalse())
		})
	})

	Describe("Encoding", func() {
		It("should round trip through json", func() {
			b, err := libtpt.TransportStream.MarshalJSON()
			Expect(err).ToNot(HaveOccurred())

			var v libtpt.Transport
			Expect(v.UnmarshalJSON(b)).ToNot(HaveOccurred())
			Expect(v).To(Equal(libtpt.TransportStream))
		})
	})
})
