package calc

import (
	"fmt"
	"net/netip"
	"strings"
)

// ParseAddr parses a textual address and checks it belongs to the requested
// family.
func ParseAddr(s string, family Family) (netip.Addr, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrMalformedAddress, s)
	}
	switch family {
	case FamilyIPv4:
		if !a.Is4() {
			return netip.Addr{}, fmt.Errorf("%w: %q is not IPv4", ErrMalformedAddress, s)
		}
	case FamilyIPv6:
		if a.Is4() {
			return netip.Addr{}, fmt.Errorf("%w: %q is not IPv6", ErrMalformedAddress, s)
		}
	}
	return a, nil
}

// Expand renders an IPv6 address in its full form: eight groups of four
// lowercase hex digits, no compression, no leading-zero suppression.
func Expand(a netip.Addr) string {
	b := a.As16()
	var sb strings.Builder
	sb.Grow(39)
	for i := 0; i < 16; i += 2 {
		if i > 0 {
			sb.WriteByte(':')
		}
		fmt.Fprintf(&sb, "%02x%02x", b[i], b[i+1])
	}
	return sb.String()
}

// PadShorthand right-pads a dotted-quad shorthand with ".0" components until
// it has four, so that "172" (from an entry such as 172/8) parses as
// "172.0.0.0". Full addresses pass through unchanged.
func PadShorthand(s string) string {
	for n := strings.Count(s, "."); n < 3; n++ {
		s += ".0"
	}
	return s
}
