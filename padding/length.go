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

package padding

// PaddedSize returns the on-wire length of a data packet of the given
// plaintext length under the policy. The full and 450 policies top out at
// the maximum inside MTU max; PaddingNone returns the length unchanged.
//
// Most observed traffic sits below the low boundary, so padding to 450 and
// 900 hides the bulk of the length distribution without filling every
// packet.
func (p Padding) PaddedSize(length int, max int) int {
	if p == PaddingNone {
		return length
	}

	if p == PaddingFull {
		return max
	}

	if length <= boundaryLow {
		return boundaryLow
	} else if length <= boundaryHigh {
		return boundaryHigh
	} else {
		return max
	}
}
