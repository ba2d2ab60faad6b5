package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders lists the proxy headers consulted by GetIP, highest priority first.
var DefaultHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver extracts the client address from a request.
type Resolver struct {
	headers []string
}

// New returns a Resolver that trusts the given headers in order.
// With no headers only RemoteAddr is used, which is the right choice when the
// service is reachable without a proxy in front of it.
func New(headers ...string) *Resolver {
	return &Resolver{headers: headers}
}

var defaultResolver = New(DefaultHeaders...)

// GetIP resolves the client IP using DefaultHeaders.
func GetIP(r *http.Request) string {
	return defaultResolver.IP(r)
}

// IP returns the first valid address found in the trusted headers, then
// RemoteAddr. Comma separated header values yield their first valid entry.
// An empty string means nothing usable was found.
func (res *Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		for part := range strings.SplitSeq(v, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return parseIP(host)
	}
	return parseIP(r.RemoteAddr)
}

// parseIP normalizes s, unmapping IPv4-in-IPv6 and dropping zones.
func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
