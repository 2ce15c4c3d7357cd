package ipresolver

import (
	"net/http"
	"net/netip"
	"strings"
)

const UNKNOWN_CLIENT = "unknown"

// ClientIdentity picks the address used as the rate-limit key for a request.
//
// The first entry of the forwarding header wins when it cleans up into a valid IP,
// otherwise the socket address is tried. It never fails: when neither source yields
// an address the literal "unknown" is returned.
func ClientIdentity(forwardedFor string, remoteAddr string) string {
	candidate := strings.TrimSpace(forwardedFor)
	if candidate != "" {
		candidate, _, _ = strings.Cut(candidate, ",")
	} else {
		candidate = remoteAddr
	}
	if ip, ok := cleanAddress(candidate); ok {
		return ip
	}
	if ip, ok := cleanAddress(remoteAddr); ok {
		return ip
	}
	return UNKNOWN_CLIENT
}

// FromRequest applies ClientIdentity to the X-Forwarded-For header and socket address.
func FromRequest(r *http.Request) string {
	return ClientIdentity(r.Header.Get("X-Forwarded-For"), r.RemoteAddr)
}

func cleanAddress(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	if strings.HasPrefix(s, "[") {
		end := strings.Index(s, "]")
		if end < 0 {
			return "", false
		}
		return parseAddress(s[1:end])
	}

	if strings.Count(s, ":") == 1 {
		// host:port. Bare IPv6 always carries more than one colon.
		host, port, _ := strings.Cut(s, ":")
		if isDigits(port) {
			s = host
		}
	}
	if ip, ok := parseAddress(s); ok {
		return ip, true
	}

	// unbracketed IPv6 with a port, e.g. ::ffff:203.0.113.7:54321
	if i := strings.LastIndex(s, ":"); i > 0 && isDigits(s[i+1:]) {
		return parseAddress(s[:i])
	}
	return "", false
}

func parseAddress(s string) (string, bool) {
	s = strings.ToLower(s)
	if strings.HasPrefix(s, "::ffff:") && strings.Contains(s, ".") {
		s = strings.TrimPrefix(s, "::ffff:")
	}

	addr, err := netip.ParseAddr(s)
	if err != nil {
		return "", false
	}
	return addr.Unmap().String(), true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
