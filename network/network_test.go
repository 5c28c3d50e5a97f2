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

package network_test

import (
	libnet "github.com/nabbar/helium/network"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Network", func() {
	Describe("IsPacketIPv4", func() {
		It("should accept a version nibble of 4", func() {
			Expect(libnet.IsPacketIPv4([]byte{0x45, 0x00})).To(BeTrue())
		})

		It("should refuse a version nibble of 6", func() {
			Expect(libnet.IsPacketIPv4([]byte{0x60, 0x00})).To(BeFalse())
		})

		It("should refuse an empty buffer", func() {
			Expect(libnet.IsPacketIPv4(nil)).To(BeFalse())
			Expect(libnet.IsPacketIPv4([]byte{})).To(BeFalse())
		})
	})

	Describe("Constants", func() {
		It("should keep the mtu ascii form consistent", func() {
			Expect(libnet.MaxMTUString).To(Equal("1350"))
			Expect(libnet.MaxMTU).To(Equal(1350))
			Expect(libnet.MaxWireMTU > libnet.MaxMTU).To(BeTrue())
		})
	})

	Describe("ConfigIPv4 Validate", func() {
		Context("with a valid config", func() {
			It("should validate a fully populated config", func() {
				c := &libnet.ConfigIPv4{
					LocalIP: "10.125.0.2",
					PeerIP:  "10.125.0.1",
					DNSIP:   "10.125.0.1",
					MTU:     1350,
				}
				Expect(c.Validate()).To(BeNil())
			})

			It("should validate an empty config", func() {
				c := &libnet.ConfigIPv4{}
				Expect(c.Validate()).To(BeNil())
			})
		})

		Context("with an invalid config", func() {
			It("should refuse a malformed address", func() {
				c := &libnet.ConfigIPv4{
					LocalIP: "not-an-ip",
				}
				Expect(c.Validate()).ToNot(BeNil())
			})

			It("should refuse an ipv6 address", func() {
				c := &libnet.ConfigIPv4{
					PeerIP: "fd00::1",
				}
				Expect(c.Validate()).ToNot(BeNil())
			})

			It("should refuse an oversized mtu", func() {
				c := &libnet.ConfigIPv4{
					MTU: libnet.MaxWireMTU,
				}
				Expect(c.Validate()).ToNot(BeNil())
			})

			It("should refuse a nil receiver", func() {
				var c *libnet.ConfigIPv4
				Expect(c.Validate()).ToNot(BeNil())
			})
		})
	})
})
