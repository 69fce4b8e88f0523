// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AddressFamily is the IP family the client is allowed to use when it dials
// the NTS-KE server and, later, the NTP server negotiated during NTS-KE.
type AddressFamily int

const (
	// NoPreference lets the dialer probe both families and pick one.
	NoPreference AddressFamily = iota
	// ForceIPv4 restricts every connection of the run to IPv4.
	ForceIPv4
	// ForceIPv6 restricts every connection of the run to IPv6.
	ForceIPv6
)

// addressFamilyTable maps the (ipv4, ipv6) flag pair to a preference.
// IPv4 wins when both flags are set.
var addressFamilyTable = map[[2]bool]AddressFamily{
	{true, true}:   ForceIPv4,
	{true, false}:  ForceIPv4,
	{false, true}:  ForceIPv6,
	{false, false}: NoPreference,
}

// ResolveAddressFamily derives the address-family preference from the two
// mutually exclusive CLI flags. It does not rely on the caller having
// rejected the (true, true) combination.
func ResolveAddressFamily(forceIPv4, forceIPv6 bool) AddressFamily {
	return addressFamilyTable[[2]bool{forceIPv4, forceIPv6}]
}

// String returns a short label used in log output.
func (f AddressFamily) String() string {
	switch f {
	case ForceIPv4:
		return "ipv4"
	case ForceIPv6:
		return "ipv6"
	default:
		return "any"
	}
}

// Network returns the Go network name for the given base network
// ("tcp" or "udp"), e.g. "tcp4" for ForceIPv4.
func (f AddressFamily) Network(base string) string {
	switch f {
	case ForceIPv4:
		return base + "4"
	case ForceIPv6:
		return base + "6"
	default:
		return base
	}
}
