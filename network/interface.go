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

// Package network carries the tunnel-side IPv4 configuration a server
// pushes to an authenticated client, plus the MTU constants shared by the
// connection core and the wire codec.
package network

const (
	// MaxMTU is the maximum inside (tunnel) MTU in bytes.
	MaxMTU = 1350

	// MaxMTUString is the decimal ASCII form of MaxMTU, as carried in the
	// fixed-width mtu field of the IPv4 configuration message.
	MaxMTUString = "1350"

	// MaxWireMTU is the maximum outside (link-layer) MTU in bytes.
	MaxWireMTU = 1500

	// PacketOverhead is the worst-case encapsulation overhead between the
	// outside MTU and the record-layer payload, headers included.
	PacketOverhead = 150

	// MaxIPv4StringLength is the fixed width of the zero-padded ASCII
	// address fields of the IPv4 configuration message.
	MaxIPv4StringLength = 24
)

// ConfigIPv4 is the network configuration exchanged after authentication:
// the server populates it through the host callback, the client applies it
// through its own.
type ConfigIPv4 struct {
	LocalIP string `mapstructure:"localIp" json:"localIp" yaml:"localIp" toml:"localIp" validate:"omitempty,ipv4"`
	PeerIP  string `mapstructure:"peerIp" json:"peerIp" yaml:"peerIp" toml:"peerIp" validate:"omitempty,ipv4"`
	DNSIP   string `mapstructure:"dnsIp" json:"dnsIp" yaml:"dnsIp" toml:"dnsIp" validate:"omitempty,ipv4"`
	MTU     int    `mapstructure:"mtu" json:"mtu" yaml:"mtu" toml:"mtu" validate:"omitempty,gt=0,lte=1350"`
}

// IsPacketIPv4 returns true when the given bytes plausibly start an IPv4
// packet. Only the version nibble is checked, deeper validation belongs to
// the host network stack.
func IsPacketIPv4(p []byte) bool {
	if len(p) < 1 {
		return false
	}

	return p[0]>>4 == 4
}
