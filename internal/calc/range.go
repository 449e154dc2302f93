package calc

import (
	"fmt"
	"math/bits"
	"net/netip"
	"strconv"

	"go4.org/netipx"
)

// NetworkAddr clears the host bits of addr under mask. Both values must be
// of the same width.
func NetworkAddr(addr, mask netip.Addr) netip.Addr {
	if addr.Is4() {
		a, m := addr.As4(), mask.As4()
		for i := range a {
			a[i] &= m[i]
		}
		return netip.AddrFrom4(a)
	}
	a, m := addr.As16(), mask.As16()
	for i := range a {
		a[i] &= m[i]
	}
	return netip.AddrFrom16(a)
}

// BroadcastAddr sets the host bits of the network address, yielding the
// IPv4 broadcast address. IPv6 has no broadcast concept.
func BroadcastAddr(network netip.Addr, prefix int) netip.Addr {
	return netipx.PrefixLastIP(netip.PrefixFrom(network, prefix))
}

// HostRange returns the usable host addresses of a network.
//
// IPv4 networks of /30 and wider reserve the network and broadcast
// addresses, so the range runs network+1 .. broadcast-1. At /31 and /32 the
// point-to-point and single-host conventions apply and nothing is reserved.
// IPv6 reserves nothing: the range runs from the network address to the
// all-ones host suffix, collapsing to a single address at /128.
func HostRange(network netip.Addr, prefix int) netipx.IPRange {
	last := netipx.PrefixLastIP(netip.PrefixFrom(network, prefix))
	if network.Is4() && prefix <= 30 {
		return netipx.IPRangeFrom(network.Next(), last.Prev())
	}
	return netipx.IPRangeFrom(network, last)
}

// HostCount renders the number of usable hosts in a network. IPv4 counts are
// always numeric. IPv6 counts are numeric while the host-bit exponent fits a
// machine word and reported symbolically as "2^(k)" beyond that.
func HostCount(family Family, prefix int) string {
	if family == FamilyIPv4 {
		n := uint64(1) << (32 - prefix)
		if prefix <= 30 {
			n -= 2
		}
		return strconv.FormatUint(n, 10)
	}
	k := 128 - prefix
	if k >= bits.UintSize {
		return fmt.Sprintf("2^(%d)", k)
	}
	return strconv.FormatUint(uint64(1)<<k, 10)
}
