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
	"bytes"
)

// Auth is the decoded form of an AUTH message.
type Auth struct {
	Type     AuthType
	Username string
	Password string
}

// ConfigIPv4 is the decoded form of a CONFIG_IPV4 message. The address
// and mtu fields keep their ASCII form, interpretation is left to the
// handler.
type ConfigIPv4 struct {
	Session uint64
	LocalIP string
	PeerIP  string
	DNSIP   string
	MTU     string
}

// Data is the decoded form of a DATA message. Payload aliases the input
// buffer, it is not a copy.
type Data struct {
	Length  uint16
	Payload []byte
}

// cutField returns the text content of a fixed-width wire field, bounded
// at the first NUL.
func cutField(p []byte) string {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		return string(p[:i])
	}

	return string(p)
}

// putField copies a string into a fixed-width wire field, leaving the
// remainder zero-padded.
func putField(dst []byte, s string) {
	copy(dst, s)
}
