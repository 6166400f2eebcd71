package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	proxies := NewIPMatcher([]string{"127.0.0.1", "::1"})

	tests := []struct {
		name    string
		remote  string
		headers map[string]string
		trusted *IPMatcher
		want    string
	}{
		{"no trust ignores headers", "198.51.100.9:4000", map[string]string{"X-Forwarded-For": "10.0.0.1"}, nil, "198.51.100.9"},
		{"untrusted peer ignores headers", "198.51.100.9:4000", map[string]string{"CF-Connecting-IP": "10.0.0.1"}, proxies, "198.51.100.9"},
		{"trusted peer cf header", "127.0.0.1:4000", map[string]string{"CF-Connecting-IP": "203.0.113.7", "X-Forwarded-For": "10.0.0.1"}, proxies, "203.0.113.7"},
		{"trusted peer left-most xff", "[::1]:4000", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, proxies, "203.0.113.7"},
		{"trusted peer x-real-ip", "127.0.0.1:4000", map[string]string{"X-Real-IP": "203.0.113.8"}, proxies, "203.0.113.8"},
		{"trusted peer without headers", "127.0.0.1:4000", nil, proxies, "127.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := ClientIP(req, tt.trusted); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIPMatcherNilAllowsNothing(t *testing.T) {
	var m *IPMatcher
	if m.Allow("127.0.0.1") {
		t.Error("nil matcher allowed an address")
	}
	if !m.IsEmpty() {
		t.Error("nil matcher is not empty")
	}
}
