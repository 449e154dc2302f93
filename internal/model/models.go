package model

import (
	"github.com/cicorias/ipcalc/internal/calc"
)

// Query describes one calculation request. Prefix is -1 when the caller
// supplied no explicit prefix; Netmask is the optional dotted netmask text.
type Query struct {
	Address  string
	Family   calc.Family
	Prefix   int
	Netmask  string
	Hostname bool
}

// AddressInfo is the fully derived record for one query. All address fields
// are rendered text; the record is populated once and not mutated afterwards.
type AddressInfo struct {
	Family          string `json:"family"`
	Address         string `json:"address"`
	ExpandedAddress string `json:"expanded_address,omitempty"` // IPv6 only
	Netmask         string `json:"netmask"`
	Prefix          int    `json:"prefix"`
	Network         string `json:"network"`
	ExpandedNetwork string `json:"expanded_network,omitempty"` // IPv6 only
	Broadcast       string `json:"broadcast,omitempty"` // IPv4 only
	HostMin         string `json:"host_min"`
	HostMax         string `json:"host_max"`
	Hosts           string `json:"hosts"`
	AddressSpace    string `json:"address_space"`
	Hostname        string `json:"hostname,omitempty"`
}

type Error struct {
	Message string `json:"message"`
}
