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

package state

import (
	"strings"
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateLinkUp:
		return "link up"
	case StateAuthenticating:
		return "authenticating"
	case StateConfiguring:
		return "configuring"
	case StateOnline:
		return "online"
	case StateDisconnecting:
		return "disconnecting"
	case StateDisconnected:
		return "disconnected"
	case StateNone:
		return "none"
	default:
		return ""
	}
}

func (s State) Code() string {
	return strings.Replace(s.String(), " ", "_", -1)
}

func (s State) Uint8() uint8 {
	return uint8(s)
}

func (s State) Int() int {
	return int(s)
}

// IsTerminal returns true once the connection can never serve traffic
// again.
func (s State) IsTerminal() bool {
	return s == StateDisconnected
}
