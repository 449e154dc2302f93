package service

import (
	"context"
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cicorias/ipcalc/internal/calc"
	"github.com/cicorias/ipcalc/internal/config"
	"github.com/cicorias/ipcalc/internal/model"
)

// Resolver supplies the optional reverse-DNS hostname for an address. It is
// the only potentially blocking collaborator; the result is treated as an
// opaque string.
type Resolver interface {
	LookupHostname(ctx context.Context, addr netip.Addr) (string, error)
}

type CalcService struct {
	resolver Resolver
	config   *config.Config
	logger   *zap.Logger
}

func NewCalcService(resolver Resolver, config *config.Config, logger *zap.Logger) *CalcService {
	return &CalcService{
		resolver: resolver,
		config:   config,
		logger:   logger,
	}
}

// ParseQuery splits an "address/prefix" argument into a Query. The prefix
// part may be a decimal prefix length or, for IPv4, a dotted netmask. The
// family is decided by the presence of a colon in the address part.
func ParseQuery(arg string) (model.Query, error) {
	q := model.Query{Address: arg, Prefix: -1}

	if i := strings.IndexByte(arg, '/'); i >= 0 {
		q.Address = arg[:i]
		suffix := arg[i+1:]
		q.Family = calc.DetectFamily(q.Address)

		if q.Family == calc.FamilyIPv4 && strings.Contains(suffix, ".") {
			q.Netmask = suffix
			return q, nil
		}
		prefix, err := strconv.Atoi(suffix)
		if err != nil || prefix < 0 || prefix > q.Family.Bits() {
			return model.Query{}, fmt.Errorf("%w: %q", calc.ErrInvalidPrefix, suffix)
		}
		q.Prefix = prefix
		return q, nil
	}

	q.Family = calc.DetectFamily(q.Address)
	return q, nil
}

// Describe runs the full derivation for one query: resolve the prefix or
// netmask, parse the address, derive the network, broadcast and host range,
// classify the address space, and optionally attach the hostname. Either a
// complete record is returned or a typed error and no record.
func (s *CalcService) Describe(ctx context.Context, q model.Query) (*model.AddressInfo, error) {
	family := q.Family
	if family == 0 {
		family = calc.DetectFamily(q.Address)
	}

	prefix, err := s.resolvePrefix(q, family)
	if err != nil {
		return nil, err
	}

	addrText := q.Address
	if family == calc.FamilyIPv4 {
		if prefix >= 0 {
			// CIDR shorthand such as 172/8.
			addrText = calc.PadShorthand(addrText)
		} else {
			prefix = 32
		}
	} else if prefix < 0 {
		prefix = 128
	}

	addr, err := calc.ParseAddr(addrText, family)
	if err != nil {
		return nil, err
	}

	mask, err := calc.PrefixToMask(prefix, family)
	if err != nil {
		return nil, err
	}

	network := calc.NetworkAddr(addr, mask)
	hosts := calc.HostRange(network, prefix)

	info := &model.AddressInfo{
		Family:       family.String(),
		Address:      addrText,
		Netmask:      mask.String(),
		Prefix:       prefix,
		Network:      network.String(),
		HostMin:      hosts.From().String(),
		HostMax:      hosts.To().String(),
		Hosts:        calc.HostCount(family, prefix),
		AddressSpace: calc.Classify(network),
	}

	if family == calc.FamilyIPv4 {
		info.Broadcast = calc.BroadcastAddr(network, prefix).String()
	} else {
		info.ExpandedAddress = calc.Expand(addr)
		info.ExpandedNetwork = calc.Expand(network)
	}

	if q.Hostname {
		name, err := s.resolver.LookupHostname(ctx, addr)
		if err != nil {
			s.logger.Warn("hostname lookup failed",
				zap.String("address", addrText),
				zap.Error(err))
			return nil, fmt.Errorf("looking up hostname for %s: %w", addrText, err)
		}
		info.Hostname = name
	}

	s.logger.Debug("derived address info",
		zap.String("address", addrText),
		zap.Int("prefix", prefix),
		zap.String("network", info.Network),
		zap.String("address_space", info.AddressSpace))

	return info, nil
}

// resolvePrefix reconciles the explicit prefix and netmask inputs. Supplying
// both is ambiguous and rejected; a netmask must decode to a contiguous run
// of one bits. Returns -1 when neither was supplied.
func (s *CalcService) resolvePrefix(q model.Query, family calc.Family) (int, error) {
	if q.Netmask == "" {
		return q.Prefix, nil
	}
	if q.Prefix >= 0 {
		return 0, fmt.Errorf("%w: %s and /%d", calc.ErrAmbiguousInput, q.Netmask, q.Prefix)
	}
	if family != calc.FamilyIPv4 {
		return 0, fmt.Errorf("%w: dotted netmask with an IPv6 address", calc.ErrInvalidPrefix)
	}
	mask, err := calc.ParseAddr(q.Netmask, calc.FamilyIPv4)
	if err != nil {
		return 0, err
	}
	return calc.MaskToPrefix(mask)
}
