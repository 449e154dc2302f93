package calc

import (
	"net/netip"
	"testing"
)

func TestNetworkAddr(t *testing.T) {
	tests := []struct {
		addr     string
		prefix   int
		family   Family
		expected string
	}{
		{"192.168.1.5", 24, FamilyIPv4, "192.168.1.0"},
		{"10.11.12.13", 8, FamilyIPv4, "10.0.0.0"},
		{"172.16.31.254", 12, FamilyIPv4, "172.16.0.0"},
		{"192.168.1.5", 32, FamilyIPv4, "192.168.1.5"},
		{"0.0.0.0", 0, FamilyIPv4, "0.0.0.0"},
		{"2001:db8::1", 32, FamilyIPv6, "2001:db8::"},
		{"fe80::dead:beef", 10, FamilyIPv6, "fe80::"},
		{"2001:db8:aaaa:bbbb::1", 64, FamilyIPv6, "2001:db8:aaaa:bbbb::"},
	}

	for _, tt := range tests {
		addr := netip.MustParseAddr(tt.addr)
		mask, err := PrefixToMask(tt.prefix, tt.family)
		if err != nil {
			t.Fatalf("PrefixToMask(%d): %v", tt.prefix, err)
		}
		network := NetworkAddr(addr, mask)
		if network.String() != tt.expected {
			t.Errorf("NetworkAddr(%s/%d) = %s, want %s", tt.addr, tt.prefix, network, tt.expected)
		}
	}
}

func TestBroadcastAddr(t *testing.T) {
	tests := []struct {
		network  string
		prefix   int
		expected string
	}{
		{"192.168.1.0", 24, "192.168.1.255"},
		{"10.0.0.0", 8, "10.255.255.255"},
		{"192.168.1.4", 30, "192.168.1.7"},
		{"10.0.0.0", 31, "10.0.0.1"},
		{"10.0.0.1", 32, "10.0.0.1"},
		{"0.0.0.0", 0, "255.255.255.255"},
	}

	for _, tt := range tests {
		network := netip.MustParseAddr(tt.network)
		got := BroadcastAddr(network, tt.prefix)
		if got.String() != tt.expected {
			t.Errorf("BroadcastAddr(%s/%d) = %s, want %s", tt.network, tt.prefix, got, tt.expected)
		}
	}
}

func TestHostRange_IPv4(t *testing.T) {
	tests := []struct {
		name    string
		network string
		prefix  int
		min     string
		max     string
	}{
		{"/24 reserves network and broadcast", "192.168.1.0", 24, "192.168.1.1", "192.168.1.254"},
		{"/30 two hosts", "192.168.1.4", 30, "192.168.1.5", "192.168.1.6"},
		{"/31 point to point", "10.0.0.0", 31, "10.0.0.0", "10.0.0.1"},
		{"/32 single host", "10.0.0.1", 32, "10.0.0.1", "10.0.0.1"},
		{"/8 private", "10.0.0.0", 8, "10.0.0.1", "10.255.255.254"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := HostRange(netip.MustParseAddr(tt.network), tt.prefix)
			if r.From().String() != tt.min {
				t.Errorf("HostMin = %s, want %s", r.From(), tt.min)
			}
			if r.To().String() != tt.max {
				t.Errorf("HostMax = %s, want %s", r.To(), tt.max)
			}
		})
	}
}

func TestHostRange_IPv6(t *testing.T) {
	tests := []struct {
		name    string
		network string
		prefix  int
		min     string
		max     string
	}{
		{"/64 full host suffix", "2001:db8::", 64, "2001:db8::", "2001:db8::ffff:ffff:ffff:ffff"},
		{"/32", "2001:db8::", 32, "2001:db8::", "2001:db8:ffff:ffff:ffff:ffff:ffff:ffff"},
		{"/128 single host", "2001:db8::1", 128, "2001:db8::1", "2001:db8::1"},
		{"/127", "2001:db8::", 127, "2001:db8::", "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := HostRange(netip.MustParseAddr(tt.network), tt.prefix)
			if r.From().String() != tt.min {
				t.Errorf("HostMin = %s, want %s", r.From(), tt.min)
			}
			if r.To().String() != tt.max {
				t.Errorf("HostMax = %s, want %s", r.To(), tt.max)
			}
		})
	}
}

func TestHostCount(t *testing.T) {
	tests := []struct {
		family   Family
		prefix   int
		expected string
	}{
		{FamilyIPv4, 24, "254"},
		{FamilyIPv4, 30, "2"},
		{FamilyIPv4, 31, "2"},
		{FamilyIPv4, 32, "1"},
		{FamilyIPv4, 0, "4294967294"},
		{FamilyIPv6, 128, "1"},
		{FamilyIPv6, 127, "2"},
		{FamilyIPv6, 65, "9223372036854775808"},
		{FamilyIPv6, 64, "2^(64)"},
		{FamilyIPv6, 32, "2^(96)"},
		{FamilyIPv6, 1, "2^(127)"},
	}

	for _, tt := range tests {
		if got := HostCount(tt.family, tt.prefix); got != tt.expected {
			t.Errorf("HostCount(%s, %d) = %s, want %s", tt.family, tt.prefix, got, tt.expected)
		}
	}
}
