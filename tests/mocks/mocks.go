package mocks

import (
	"context"
	"net/netip"
)

type MockResolver struct {
	LookupHostnameFunc func(ctx context.Context, addr netip.Addr) (string, error)
}

func (m *MockResolver) LookupHostname(ctx context.Context, addr netip.Addr) (string, error) {
	return m.LookupHostnameFunc(ctx, addr)
}
