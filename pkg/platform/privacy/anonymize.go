// Package privacy keeps client network identity out of logs.
package privacy

import (
	"net"
	"net/netip"
)

const (
	ipv4PrefixBits = 24
	ipv6PrefixBits = 48
)

// AnonymizeIP masks an address to its /24 (IPv4) or /48 (IPv6) network.
// A host:port pair is accepted and the port dropped. Empty input yields
// "unknown", anything unparsable "invalid".
func AnonymizeIP(addr string) string {
	if addr == "" || addr == "unknown" {
		return "unknown"
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}

	ip, err := netip.ParseAddr(addr)
	if err != nil {
		return "invalid"
	}
	ip = ip.Unmap().WithZone("")

	bits := ipv6PrefixBits
	if ip.Is4() {
		bits = ipv4PrefixBits
	}
	prefix, err := ip.Prefix(bits)
	if err != nil {
		return "invalid"
	}
	return prefix.Addr().String()
}
