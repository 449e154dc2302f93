package calc

import "net/netip"

// Address-space tables follow IANA's iana-ipv4-special-registry,
// ipv4-address-space, iana-ipv6-special-registry and ipv6-address-space.
// Entries are evaluated top to bottom and the first match wins; several
// ranges overlap broader entries further down, so the order is part of the
// semantics.

type v4Space struct {
	match func(b [4]byte) bool
	label string
}

var v4Spaces = []v4Space{
	{func(b [4]byte) bool { return b[0] == 0 }, "This host on this network"},
	{func(b [4]byte) bool { return b[0] == 10 }, "Private Use"},
	{func(b [4]byte) bool { return b[0] == 100 && b[1]&0xc0 == 64 }, "Shared Address Space"},
	{func(b [4]byte) bool { return b[0] == 127 }, "Loopback"},
	{func(b [4]byte) bool { return b[0] == 169 && b[1] == 254 }, "Link Local"},
	{func(b [4]byte) bool { return b[0] == 172 && b[1]&0xf0 == 16 }, "Private Use"},
	{func(b [4]byte) bool { return b[0] == 192 && b[1] == 0 && b[2] == 0 }, "IETF Protocol Assignments"},
	{func(b [4]byte) bool { return b[0] == 192 && b[1] == 0 && b[2] == 2 }, "Documentation (TEST-NET-1)"},
	{func(b [4]byte) bool { return b[0] == 198 && b[1] == 51 && b[2] == 100 }, "Documentation (TEST-NET-2)"},
	{func(b [4]byte) bool { return b[0] == 203 && b[1] == 0 && b[2] == 113 }, "Documentation (TEST-NET-3)"},
	{func(b [4]byte) bool { return b[0] == 192 && b[1] == 88 && b[2] == 99 }, "6 to 4 Relay Anycast (Deprecated)"},
	{func(b [4]byte) bool { return b[0] == 192 && b[1] == 52 && b[2] == 193 }, "AMT"},
	{func(b [4]byte) bool { return b[0] == 192 && b[1] == 168 }, "Private Use"},
	{func(b [4]byte) bool { return b[0] == 255 && b[1] == 255 && b[2] == 255 && b[3] == 255 }, "Limited Broadcast"},
	// The two consecutive /24 blocks 192.18 and 192.19, kept as a masked
	// byte check rather than a CIDR entry.
	{func(b [4]byte) bool { return b[0] == 192 && b[1]&0xfe == 18 }, "Private Use"},
	{func(b [4]byte) bool { return b[0] >= 224 && b[0] <= 239 }, "Multicast"},
	{func(b [4]byte) bool { return b[0]&0xf0 == 240 }, "Reserved"},
	{func(b [4]byte) bool { return true }, "Internet or Reserved for Future use"},
}

type v6Space struct {
	match func(b [16]byte) bool
	label string
}

var v6Spaces = []v6Space{
	{func(b [16]byte) bool { return b == [16]byte{15: 1} }, "Loopback Address"},
	{func(b [16]byte) bool { return b == [16]byte{} }, "Unspecified Address"},
	{func(b [16]byte) bool { return zeroTo(b, 10) && b[10] == 0xff && b[11] == 0xff }, "IPv4-mapped Address"},
	{func(b [16]byte) bool {
		return b[0] == 0 && b[1] == 0x64 && b[2] == 0xff && b[3] == 0x9b && zeroBetween(b, 4, 12)
	}, "IPv4-IPv6 Translat."},
	{func(b [16]byte) bool { return b[0] == 0x01 && b[1] == 0 && zeroBetween(b, 2, 8) }, "Discard-Only Address Block"},
	{func(b [16]byte) bool { return word(b, 0)&0xfffe == 0x2000 && word(b, 1) == 0 }, "IETF Protocol Assignments"},
	{func(b [16]byte) bool { return b[0]&0xe0 == 0x20 }, "Global Unicast"},
	{func(b [16]byte) bool { return b[0]&0xfe == 0xfc }, "Unique Local Unicast"},
	{func(b [16]byte) bool { return word(b, 0)&0xffc0 == 0xfe80 }, "Link-Scoped Unicast"},
	{func(b [16]byte) bool { return b[0] == 0xff }, "Multicast"},
	{func(b [16]byte) bool { return word(b, 0) == 0x2002 }, "6to4"},
	{func(b [16]byte) bool { return true }, "Reserved"},
}

func word(b [16]byte, i int) uint16 {
	return uint16(b[2*i])<<8 | uint16(b[2*i+1])
}

func zeroTo(b [16]byte, n int) bool {
	return zeroBetween(b, 0, n)
}

func zeroBetween(b [16]byte, from, to int) bool {
	for i := from; i < to; i++ {
		if b[i] != 0 {
			return false
		}
	}
	return true
}

// Classify labels the address space a network address belongs to. The final
// table entries are catch-alls, so every address receives a label.
func Classify(network netip.Addr) string {
	if network.Is4() {
		b := network.As4()
		for _, s := range v4Spaces {
			if s.match(b) {
				return s.label
			}
		}
	}
	b := network.As16()
	for _, s := range v6Spaces {
		if s.match(b) {
			return s.label
		}
	}
	return "Reserved"
}
