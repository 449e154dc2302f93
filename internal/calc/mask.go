package calc

import (
	"encoding/binary"
	"fmt"
	"net/netip"
)

// PrefixToMask builds the netmask with the top prefix bits set.
//
// IPv4 accepts 0..32; a zero prefix yields the all-zero mask. IPv6 accepts
// 1..128 only: a zero IPv6 prefix has no meaning here and is rejected.
func PrefixToMask(prefix int, family Family) (netip.Addr, error) {
	switch family {
	case FamilyIPv4:
		if prefix < 0 || prefix > 32 {
			return netip.Addr{}, fmt.Errorf("%w: %d for %s", ErrInvalidPrefix, prefix, family)
		}
		var m uint32
		if prefix > 0 {
			m = ^uint32(0) << (32 - prefix)
		}
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], m)
		return netip.AddrFrom4(b), nil
	case FamilyIPv6:
		if prefix < 1 || prefix > 128 {
			return netip.Addr{}, fmt.Errorf("%w: %d for %s", ErrInvalidPrefix, prefix, family)
		}
		var b [16]byte
		for i := range b {
			left := prefix - i*8
			switch {
			case left >= 8:
				b[i] = 0xff
			case left > 0:
				b[i] = 0xff << (8 - left)
			}
		}
		return netip.AddrFrom16(b), nil
	}
	return netip.Addr{}, fmt.Errorf("%w: unknown family", ErrInvalidPrefix)
}

// MaskToPrefix counts the leading one bits of a netmask. A mask with a zero
// bit before a later one bit is not a prefix and is rejected, as is the
// all-zero mask.
func MaskToPrefix(mask netip.Addr) (int, error) {
	var ones int
	var seenZero bool
	for _, b := range mask.AsSlice() {
		for bit := 7; bit >= 0; bit-- {
			if b>>uint(bit)&1 == 1 {
				if seenZero {
					return 0, fmt.Errorf("%w: %s", ErrNonContiguousMask, mask)
				}
				ones++
			} else {
				seenZero = true
			}
		}
	}
	if ones == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNonContiguousMask, mask)
	}
	return ones, nil
}
