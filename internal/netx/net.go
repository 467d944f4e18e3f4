// Package netx holds small networking helpers shared across the client.
package netx

import (
	"net"
	"strings"
)

// Backend origins. The deployed origin is the default; a local-loopback
// hostname selects the development backend instead.
const (
	LocalOrigin    = "http://localhost:8000"
	DeployedOrigin = "https://api.villagesamaj.org"
)

// IsLoopbackHost reports whether host names the local machine: "localhost",
// a loopback IP, or an address of the form host:port with such a host.
func IsLoopbackHost(host string) bool {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// ResolveOrigin selects the backend origin for the given runtime hostname:
// loopback hosts get the local development backend, everything else the
// deployed one.
func ResolveOrigin(host string) string {
	if IsLoopbackHost(host) {
		return LocalOrigin
	}
	return DeployedOrigin
}
