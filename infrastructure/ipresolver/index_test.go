package ipresolver

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIdentity(t *testing.T) {
	tests := []struct {
		name         string
		forwardedFor string
		remoteAddr   string
		want         string
	}{
		{
			name:         "first forwarded entry with port",
			forwardedFor: "203.0.113.7:54321, 10.0.0.1",
			remoteAddr:   "10.0.0.1:4000",
			want:         "203.0.113.7",
		},
		{
			name:         "ipv4 mapped ipv6",
			forwardedFor: "::ffff:203.0.113.7",
			want:         "203.0.113.7",
		},
		{
			name:         "ipv4 mapped ipv6 with port",
			forwardedFor: "::ffff:203.0.113.7:54321, 10.0.0.1",
			remoteAddr:   "10.0.0.1:4000",
			want:         "203.0.113.7",
		},
		{
			name:         "invalid ipv6 with port falls back to socket",
			forwardedFor: "2001:db8::zz:443",
			remoteAddr:   "10.0.0.1:4000",
			want:         "10.0.0.1",
		},
		{
			name:         "bracketed ipv6 with port",
			forwardedFor: "[2001:db8::1]:8443",
			want:         "2001:db8::1",
		},
		{
			name:         "bare ipv6 ending in digits is not treated as a port",
			forwardedFor: "2001:db8::1",
			want:         "2001:db8::1",
		},
		{
			name:         "malformed header falls back to socket",
			forwardedFor: "not-an-ip",
			remoteAddr:   "198.51.100.23:61000",
			want:         "198.51.100.23",
		},
		{
			name:       "socket address only",
			remoteAddr: "[::1]:1234",
			want:       "::1",
		},
		{
			name:       "mapped socket address",
			remoteAddr: "[::ffff:192.0.2.10]:80",
			want:       "192.0.2.10",
		},
		{
			name:         "non numeric port suffix is rejected",
			forwardedFor: "192.0.2.1:http",
			remoteAddr:   "garbage",
			want:         UNKNOWN_CLIENT,
		},
		{
			name: "nothing usable",
			want: UNKNOWN_CLIENT,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClientIdentity(tt.forwardedFor, tt.remoteAddr))
		})
	}
}

func TestFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	req.RemoteAddr = "192.0.2.44:5050"
	assert.Equal(t, "192.0.2.44", FromRequest(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 192.0.2.44")
	assert.Equal(t, "203.0.113.9", FromRequest(req))
}
