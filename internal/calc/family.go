// Package calc implements IP address arithmetic for both address families:
// prefix/netmask conversion, network and host-range derivation, address-space
// classification, and textual rendering. All operations are pure functions
// over fixed-width values.
package calc

import "strings"

// Family selects the address family a calculation operates on.
type Family int

const (
	FamilyIPv4 Family = iota + 1
	FamilyIPv6
)

func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "ipv4"
	case FamilyIPv6:
		return "ipv6"
	}
	return "unknown"
}

// Bits returns the address width of the family.
func (f Family) Bits() int {
	if f == FamilyIPv6 {
		return 128
	}
	return 32
}

// DetectFamily decides the family of a textual address. Anything containing
// a colon is IPv6, everything else is IPv4.
func DetectFamily(s string) Family {
	if strings.Contains(s, ":") {
		return FamilyIPv6
	}
	return FamilyIPv4
}
