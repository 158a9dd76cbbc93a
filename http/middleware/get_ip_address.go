package middleware

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/xy-planning-network/conneg"
)

// UnknownIPAddress stands in for a client address that cannot be determined.
const UnknownIPAddress = "0.0.0.0"

// Non-public ranges as defined by IANA.
var privatePrefixes = []netip.Prefix{
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.168.0.0/16"),
	netip.MustParsePrefix("198.18.0.0/15"),
	netip.MustParsePrefix("fc00::/7"),
}

// InjectIPAddress grabs the client IP address of the *http.Request
// and promotes it to *http.Request.Context under conneg.IpAddrKey.
//
// Addresses forwarded by proxies win over the address of the connection.
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := GetIPAddress(r.Header)
			if ip == UnknownIPAddress {
				ip = remoteAddr(r)
			}

			h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), conneg.IpAddrKey, ip)))
		})
	}
}

// GetIPAddress parses "X-Forwarded-For" and "X-Real-Ip" headers for the IP address
// from the request.
//
// GetIPAddress skips addresses from non-public ranges.
// If none remain, UnknownIPAddress returns.
func GetIPAddress(hm http.Header) string {
	for _, h := range []string{"X-Forwarded-For", "X-Real-Ip"} {
		addresses := strings.Split(hm.Get(h), ",")
		// march from right to left until we get a public address
		// that will be the address right before our proxy.
		for i := len(addresses) - 1; i >= 0; i-- {
			ip := strings.TrimSpace(addresses[i])
			if isPublic(ip) {
				return ip
			}
		}
	}

	return UnknownIPAddress
}

func isPublic(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil || !addr.IsGlobalUnicast() {
		return false
	}

	addr = addr.Unmap()
	for _, p := range privatePrefixes {
		if p.Contains(addr) {
			return false
		}
	}

	return true
}

func remoteAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return UnknownIPAddress
	}

	return host
}
