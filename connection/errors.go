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

package connection

import (
	"fmt"

	liberr "github.com/nabbar/golib/errors"
)

const (
	ErrorParamEmpty liberr.CodeError = iota + liberr.MinAvailable
	ErrorEmptyString
	ErrorStringTooLong
	ErrorUsernameNotSet
	ErrorPasswordNotSet
	ErrorMTUNotSet
	ErrorInvalidMTUSize
	ErrorProtocolVersion
	ErrorInvalidState
	ErrorNeverConnected
	ErrorAccessDenied
	ErrorConnectionClosed
	ErrorConnectionTimedOut
	ErrorInitFailed
	ErrorConnectFailed
	ErrorSSL
	ErrorSSLNonFatal
	ErrorRandomFailure
	ErrorCallbackFailed
)

func init() {
	if liberr.ExistInMapMessage(ErrorParamEmpty) {
		panic(fmt.Errorf("error code collision with package helium/connection"))
	}
	liberr.RegisterIdFctMessage(ErrorParamEmpty, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorParamEmpty:
		return "given parameters is empty"
	case ErrorEmptyString:
		return "connection : given string is empty"
	case ErrorStringTooLong:
		return "connection : given string exceeds its bound"
	case ErrorUsernameNotSet:
		return "connection : username has not been set"
	case ErrorPasswordNotSet:
		return "connection : password has not been set"
	case ErrorMTUNotSet:
		return "connection : outside mtu has not been set"
	case ErrorInvalidMTUSize:
		return "connection : outside mtu size is invalid"
	case ErrorProtocolVersion:
		return "connection : protocol version is not usable with this context"
	case ErrorInvalidState:
		return "connection : operation not allowed in the current state"
	case ErrorNeverConnected:
		return "connection : never connected"
	case ErrorAccessDenied:
		return "connection : authentication rejected"
	case ErrorConnectionClosed:
		return "connection : connection was closed by the peer"
	case ErrorConnectionTimedOut:
		return "connection : connection timed out"
	case ErrorInitFailed:
		return "connection : cannot initialize the ssl session"
	case ErrorConnectFailed:
		return "connection : cannot start the ssl negotiation"
	case ErrorSSL:
		return "connection : ssl session trigger an error"
	case ErrorSSLNonFatal:
		return "connection : ssl session trigger a recoverable error"
	case ErrorRandomFailure:
		return "connection : cannot generate a random value"
	case ErrorCallbackFailed:
		return "connection : host callback trigger an error"
	}

	return liberr.NullMessage
}

// IsFatal classifies a result of any connection operation or handler: a
// nil error and the recoverable ssl error are the only results allowing
// the host to keep the connection; everything else should lead to a
// disconnect then a close.
func IsFatal(err liberr.Error) bool {
	if err == nil {
		return false
	}

	return !err.IsCode(ErrorSSLNonFatal)
}
