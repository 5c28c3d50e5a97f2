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
	libcnn "github.com/nabbar/helium/connection"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Connection Session ID", func() {
	var (
		s *fakeSession
		x *fakeContext
	)

	BeforeEach(func() {
		s = &fakeSession{timeout: 1}
		x = newFakeContext(s)
	})

	Describe("RotateSessionID", func() {
		It("should always refuse a client connection", func() {
			c := authenticatingClient(s, x)

			_, err := c.RotateSessionID()
			Expect(err).ToNot(BeNil())
			Expect(err.IsCode(libcnn.ErrorInvalidState)).To(BeTrue())
		})

		It("should refuse a connection that never connected", func() {
			c := libcnn.New()

			_, err := c.RotateSessionID()
			Expect(err).ToNot(BeNil())
			Expect(err.IsCode(libcnn.ErrorInvalidState)).To(BeTrue())
		})

		It("should prepare a pending id without touching the current one", func() {
			c := linkUpServer(s, x)
			cur := c.SessionID()

			sid, err := c.RotateSessionID()
			Expect(err).To(BeNil())
			Expect(sid).ToNot(Equal(uint64(0)))

			Expect(c.PendingSessionID()).To(Equal(sid))
			Expect(c.SessionID()).To(Equal(cur))
		})

		It("should refuse a second rotation while one is pending", func() {
			c := linkUpServer(s, x)

			_, err := c.RotateSessionID()
			Expect(err).To(BeNil())

			_, err = c.RotateSessionID()
			Expect(err).ToNot(BeNil())
			Expect(err.IsCode(libcnn.ErrorInvalidState)).To(BeTrue())
		})

		It("should surface a randomness failure", func() {
			// first draw feeds the connect, the rotation gets the failure
			x.rnd = &fakeRandom{failAfter: 1}

			c := linkUpServer(s, x)

			_, err := c.RotateSessionID()
			Expect(err).ToNot(BeNil())
			Expect(err.IsCode(libcnn.ErrorRandomFailure)).To(BeTrue())
			Expect(c.PendingSessionID()).To(Equal(uint64(0)))
		})
	})

	Describe("SetSessionID", func() {
		It("should refuse a server connection holding its drawn id", func() {
			c := linkUpServer(s, x)

			err := c.SetSessionID(99)
			Expect(err).ToNot(BeNil())
			Expect(err.IsCode(libcnn.ErrorInvalidState)).To(BeTrue())
		})
	})
})
