package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/cicorias/ipcalc/internal/calc"
	"github.com/cicorias/ipcalc/internal/config"
	"github.com/cicorias/ipcalc/internal/model"
	"github.com/cicorias/ipcalc/internal/resolver"
	"github.com/cicorias/ipcalc/internal/service"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("ipcalc", pflag.ContinueOnError)
	flags.SetOutput(os.Stderr)

	var (
		doCheck       = flags.BoolP("check", "c", false, "Validate IP address")
		doInfo        = flags.BoolP("info", "i", false, "Print information on the provided IP address")
		_             = flags.BoolP("ipv4", "4", false, "IPv4 address family (deprecated)")
		_             = flags.BoolP("ipv6", "6", false, "IPv6 address family (deprecated)")
		showBroadcast = flags.BoolP("broadcast", "b", false, "Display calculated broadcast address")
		showHostname  = flags.BoolP("hostname", "h", false, "Show hostname determined via DNS")
		showNetmask   = flags.BoolP("netmask", "m", false, "Display netmask for IP")
		showNetwork   = flags.BoolP("network", "n", false, "Display network address")
		showPrefix    = flags.BoolP("prefix", "p", false, "Display network prefix")
		showHostMin   = flags.Bool("minaddr", false, "Display the minimum address in the network")
		showHostMax   = flags.Bool("maxaddr", false, "Display the maximum address in the network")
		showAddrSpace = flags.Bool("addrspace", false, "Display the address space the network resides on")
		beSilent      = flags.BoolP("silent", "s", false, "Don't ever display error messages")
	)

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ipcalc: failed to load configuration: %v\n", err)
		return 1
	}
	silent := *beSilent || cfg.Silent

	fail := func(format string, a ...any) int {
		if !silent {
			fmt.Fprintf(os.Stderr, "ipcalc: "+format+"\n", a...)
			flags.Usage()
		}
		return 1
	}

	rest := flags.Args()
	if len(rest) == 0 {
		return fail("ip address expected")
	}
	if len(rest) > 2 {
		return fail("unexpected argument: %s", rest[2])
	}

	q, err := service.ParseQuery(rest[0])
	if err != nil {
		if !silent {
			fmt.Fprintf(os.Stderr, "ipcalc: %v\n", err)
		}
		return 1
	}
	if len(rest) == 2 {
		if q.Netmask != "" || q.Prefix >= 0 {
			return fail("both netmask and prefix specified")
		}
		q.Netmask = rest[1]
	}
	q.Hostname = *showHostname

	if (*showBroadcast || *showNetwork || *showPrefix) &&
		q.Family == calc.FamilyIPv4 && q.Prefix < 0 && q.Netmask == "" {
		return fail("netmask or prefix expected")
	}

	logger := zap.NewNop()
	if !silent {
		devCfg := zap.NewDevelopmentConfig()
		devCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		logger, _ = devCfg.Build()
	}

	dnsResolver := resolver.NewDNSResolver(cfg.DNSServer, cfg.DNSTimeout, logger)
	svc := service.NewCalcService(dnsResolver, cfg, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DNSTimeout)
	defer cancel()

	info, err := svc.Describe(ctx, q)
	if err != nil {
		if !silent {
			fmt.Fprintf(os.Stderr, "ipcalc: %v\n", err)
		}
		return 1
	}

	if *doCheck {
		return 0
	}

	// With no selection flags, print the full information block.
	if !(*showNetmask || *showPrefix || *showBroadcast || *showNetwork ||
		*showHostMin || *showHostMax || *showHostname || *showAddrSpace) {
		*doInfo = true
	}

	if *doInfo {
		printInfo(os.Stdout, info)
		return 0
	}

	printFields(os.Stdout, info, fields{
		netmask:   *showNetmask,
		prefix:    *showPrefix,
		broadcast: *showBroadcast,
		network:   *showNetwork,
		hostMin:   *showHostMin,
		hostMax:   *showHostMax,
		addrSpace: *showAddrSpace,
		hostname:  *showHostname,
	})

	return 0
}

type fields struct {
	netmask   bool
	prefix    bool
	broadcast bool
	network   bool
	hostMin   bool
	hostMax   bool
	addrSpace bool
	hostname  bool
}

// printFields emits the KEY=value lines selected by the show flags, suitable
// for eval in shell scripts.
func printFields(w io.Writer, info *model.AddressInfo, f fields) {
	if f.netmask {
		fmt.Fprintf(w, "NETMASK=%s\n", info.Netmask)
	}
	if f.prefix {
		fmt.Fprintf(w, "PREFIX=%d\n", info.Prefix)
	}
	if f.broadcast && info.Broadcast != "" {
		fmt.Fprintf(w, "BROADCAST=%s\n", info.Broadcast)
	}
	if f.network {
		fmt.Fprintf(w, "NETWORK=%s\n", info.Network)
	}
	if f.hostMin {
		fmt.Fprintf(w, "MINADDR=%s\n", info.HostMin)
	}
	if f.hostMax {
		fmt.Fprintf(w, "MAXADDR=%s\n", info.HostMax)
	}
	if f.addrSpace {
		fmt.Fprintf(w, "ADDRSPACE=%q\n", info.AddressSpace)
	}
	if f.hostname {
		fmt.Fprintf(w, "HOSTNAME=%s\n", info.Hostname)
	}
}

func printInfo(w io.Writer, info *model.AddressInfo) {
	if info.ExpandedAddress != "" {
		fmt.Fprintf(w, "Full Address:\t%s\n", info.ExpandedAddress)
	}
	fmt.Fprintf(w, "Address:\t%s\n", info.Address)

	// A host-width prefix leaves nothing to derive beyond the address space.
	if (info.Family == "ipv4" && info.Prefix == 32) ||
		(info.Family == "ipv6" && info.Prefix == 128) {
		fmt.Fprintf(w, "Address space:\t%s\n", info.AddressSpace)
		return
	}

	fmt.Fprintf(w, "Netmask:\t%s = %d\n", info.Netmask, info.Prefix)
	if info.ExpandedNetwork != "" {
		fmt.Fprintf(w, "Full Network:\t%s\n", info.ExpandedNetwork)
	}
	fmt.Fprintf(w, "Network:\t%s/%d\n", info.Network, info.Prefix)
	fmt.Fprintf(w, "Address space:\t%s\n", info.AddressSpace)
	if info.Broadcast != "" {
		fmt.Fprintf(w, "Broadcast:\t%s\n", info.Broadcast)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "HostMin:\t%s\n", info.HostMin)
	fmt.Fprintf(w, "HostMax:\t%s\n", info.HostMax)
	fmt.Fprintf(w, "Hosts/Net:\t%s\n", info.Hosts)
	if info.Hostname != "" {
		fmt.Fprintf(w, "Hostname:\t%s\n", info.Hostname)
	}
}
