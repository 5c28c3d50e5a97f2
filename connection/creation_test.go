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

package connection_test

import (
	"strings"

	libcnn "github.com/nabbar/helium/connection"
	libstt "github.com/nabbar/helium/connection/state"
	libmsg "github.com/nabbar/helium/message"
	libprt "github.com/nabbar/helium/protocol"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Connection Creation", func() {
	Describe("New", func() {
		It("should start with every field zero", func() {
			c := libcnn.New()

			Expect(c.State()).To(Equal(libstt.StateNone))
			Expect(c.IsServer()).To(BeFalse())
			Expect(c.Username()).To(Equal(""))
			Expect(c.IsUsernameSet()).To(BeFalse())
			Expect(c.IsPasswordSet()).To(BeFalse())
			Expect(c.OutsideMTU()).To(Equal(0))
			Expect(c.IsOutsideMTUSet()).To(BeFalse())
			Expect(c.ProtocolVersion()).To(Equal(libprt.VersionUnset))
			Expect(c.SessionID()).To(Equal(uint64(0)))
			Expect(c.PendingSessionID()).To(Equal(uint64(0)))
			Expect(c.NudgeTime()).To(Equal(0))
			Expect(c.SupportsRenegotiation()).To(BeFalse())
			Expect(c.RenegotiationDue()).To(BeFalse())
			Expect(c.UserData()).To(BeNil())
		})

		It("should be safe to close without ever connecting", func() {
			c := libcnn.New()
			c.Close()
			c.Close()
		})
	})

	Describe("Setters", func() {
		var c libcnn.Connection

		BeforeEach(func() {
			c = libcnn.New()
		})

		Context("credentials", func() {
			It("should store valid values", func() {
				Expect(c.SetUsername("myuser")).To(BeNil())
				Expect(c.Username()).To(Equal("myuser"))
				Expect(c.IsUsernameSet()).To(BeTrue())

				Expect(c.SetPassword("mypass")).To(BeNil())
				Expect(c.IsPasswordSet()).To(BeTrue())
			})

			It("should refuse empty strings", func() {
				err := c.SetUsername("")
				Expect(err).ToNot(BeNil())
				Expect(err.IsCode(libcnn.ErrorEmptyString)).To(BeTrue())

				err = c.SetPassword("")
				Expect(err).ToNot(BeNil())
				Expect(err.IsCode(libcnn.ErrorEmptyString)).To(BeTrue())
			})

			It("should refuse overlong strings", func() {
				l := strings.Repeat("x", libmsg.TextFieldLength+1)

				err := c.SetUsername(l)
				Expect(err).ToNot(BeNil())
				Expect(err.IsCode(libcnn.ErrorStringTooLong)).To(BeTrue())
				Expect(c.IsUsernameSet()).To(BeFalse())

				err = c.SetPassword(l)
				Expect(err).ToNot(BeNil())
				Expect(err.IsCode(libcnn.ErrorStringTooLong)).To(BeTrue())
			})

			It("should accept a string filling its field exactly", func() {
				Expect(c.SetUsername(strings.Repeat("x", libmsg.TextFieldLength))).To(BeNil())
			})
		})

		Context("outside mtu", func() {
			It("should store a positive value", func() {
				Expect(c.SetOutsideMTU(1500)).To(BeNil())
				Expect(c.OutsideMTU()).To(Equal(1500))
				Expect(c.IsOutsideMTUSet()).To(BeTrue())
			})

			It("should refuse zero and negative values", func() {
				err := c.SetOutsideMTU(0)
				Expect(err).ToNot(BeNil())
				Expect(err.IsCode(libcnn.ErrorInvalidMTUSize)).To(BeTrue())

				err = c.SetOutsideMTU(-1)
				Expect(err).ToNot(BeNil())
				Expect(err.IsCode(libcnn.ErrorInvalidMTUSize)).To(BeTrue())
			})
		})

		Context("protocol version", func() {
			It("should store any pair", func() {
				Expect(c.SetProtocolVersion(libprt.Version10)).To(BeNil())
				Expect(c.ProtocolVersion()).To(Equal(libprt.Version10))
			})
		})

		Context("user data", func() {
			It("should hand back the stored value", func() {
				v := &struct{ n int }{n: 42}
				c.SetUserData(v)
				Expect(c.UserData()).To(BeIdenticalTo(v))
			})
		})

		Context("session id", func() {
			It("should accept the first value only", func() {
				Expect(c.SetSessionID(7)).To(BeNil())
				Expect(c.SessionID()).To(Equal(uint64(7)))

				err := c.SetSessionID(8)
				Expect(err).ToNot(BeNil())
				Expect(err.IsCode(libcnn.ErrorInvalidState)).To(BeTrue())
				Expect(c.SessionID()).To(Equal(uint64(7)))
			})
		})
	})

	Describe("DataPacketLength", func() {
		It("should keep the true length before any policy is copied", func() {
			c := libcnn.New()
			Expect(c.DataPacketLength(99)).To(Equal(99))
		})
	})
})
