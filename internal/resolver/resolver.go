// Package resolver performs reverse-DNS hostname lookups for the address
// calculation service.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strings"
	"time"

	"github.com/miekg/dns"
	"go.uber.org/zap"
)

// ErrHostnameUnavailable is returned when no PTR record could be obtained
// for an address.
var ErrHostnameUnavailable = errors.New("resolver: hostname unavailable")

const defaultServer = "8.8.8.8:53"

type DNSResolver struct {
	server string
	client *dns.Client
	logger *zap.Logger
}

// NewDNSResolver builds a resolver querying the given "host:port" server.
// When server is empty, the first nameserver from /etc/resolv.conf is used,
// or a public default if that cannot be read.
func NewDNSResolver(server string, timeout time.Duration, logger *zap.Logger) *DNSResolver {
	if server == "" {
		server = systemServer()
	}
	return &DNSResolver{
		server: server,
		client: &dns.Client{Timeout: timeout},
		logger: logger,
	}
}

func systemServer() string {
	conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(conf.Servers) == 0 {
		return defaultServer
	}
	return net.JoinHostPort(conf.Servers[0], conf.Port)
}

// LookupHostname resolves the PTR record for addr and returns the hostname
// lowercased with the trailing dot removed.
func (r *DNSResolver) LookupHostname(ctx context.Context, addr netip.Addr) (string, error) {
	rev, err := dns.ReverseAddr(addr.String())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHostnameUnavailable, err)
	}

	m := new(dns.Msg)
	m.SetQuestion(rev, dns.TypePTR)

	in, _, err := r.client.ExchangeContext(ctx, m, r.server)
	if err != nil {
		r.logger.Warn("PTR query failed",
			zap.String("server", r.server),
			zap.String("addr", addr.String()),
			zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrHostnameUnavailable, err)
	}

	for _, rr := range in.Answer {
		if ptr, ok := rr.(*dns.PTR); ok {
			return Normalize(ptr.Ptr), nil
		}
	}
	return "", fmt.Errorf("%w: no PTR record for %s", ErrHostnameUnavailable, addr)
}

// Normalize lowercases a DNS name and strips the trailing root dot.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSuffix(name, "."))
}
