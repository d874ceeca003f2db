package auth

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	apperrors "github.com/shopworks/storefront-admin/src/internal/errors"
)

func newRequest(remoteAddr string, headers map[string]string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "http://shop.example/api/admin/status", nil)
	r.RemoteAddr = remoteAddr
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	return r
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr", "203.0.113.7:5123", nil, "203.0.113.7"},
		{"remote addr v6", "[2001:db8::1]:443", nil, "2001:db8::1"},
		{"remote addr without port", "203.0.113.7", nil, "203.0.113.7"},
		{"real ip", "10.0.0.1:1", map[string]string{"X-Real-IP": "198.51.100.2"}, "198.51.100.2"},
		{"forwarded first entry", "10.0.0.1:1", map[string]string{
			"X-Forwarded-For": "198.51.100.9, 10.0.0.5",
			"X-Real-IP":       "198.51.100.2",
		}, "198.51.100.9"},
		{"empty forwarded falls through", "10.0.0.1:1", map[string]string{"X-Forwarded-For": " ,x"}, "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClientIP(newRequest(tt.remoteAddr, tt.headers)); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIPAllowlist_Allowed(t *testing.T) {
	a, err := NewIPAllowlist([]string{"203.0.113.7", "192.168.10.0/24", " "})
	if err != nil {
		t.Fatalf("NewIPAllowlist() error = %v", err)
	}

	tests := []struct {
		ip   string
		want bool
	}{
		{"127.0.0.1", true},
		{"::1", true},
		{"::ffff:127.0.0.1", true},
		{"203.0.113.7", true},
		{"192.168.10.42", true},
		{"::ffff:192.168.10.42", true},
		{"203.0.113.8", false},
		{"192.168.11.1", false},
		{"127.0.0.2", false},
		{"not-an-ip", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			if got := a.Allowed(tt.ip); got != tt.want {
				t.Errorf("Allowed(%q) = %v, want %v", tt.ip, got, tt.want)
			}
		})
	}

	if got := a.Entries(); !reflect.DeepEqual(got, []string{"203.0.113.7", "192.168.10.0/24"}) {
		t.Errorf("Entries() = %v", got)
	}
}

func TestIPAllowlist_InvalidPrefix(t *testing.T) {
	_, err := NewIPAllowlist([]string{"10.0.0.0/99"})
	if apperrors.CodeOf(err) != apperrors.ErrCodeConfig {
		t.Errorf("Expected CONFIG_ERROR, got %v", err)
	}
}

func TestIPAllowlist_Authorize(t *testing.T) {
	a, _ := NewIPAllowlist([]string{"203.0.113.7"})

	caller, err := a.Authorize(newRequest("203.0.113.7:4000", nil))
	if err != nil || caller != "203.0.113.7" {
		t.Errorf("Expected allowlisted caller to pass, got caller=%q err=%v", caller, err)
	}

	caller, err = a.Authorize(newRequest("198.51.100.1:4000", nil))
	if apperrors.CodeOf(err) != apperrors.ErrCodeForbidden {
		t.Errorf("Expected FORBIDDEN, got %v", err)
	}
	if caller != "198.51.100.1" {
		t.Errorf("Expected denied caller address to be reported, got %q", caller)
	}

	// Forwarding headers override the peer address.
	_, err = a.Authorize(newRequest("198.51.100.1:4000", map[string]string{"X-Forwarded-For": "127.0.0.1"}))
	if err != nil {
		t.Errorf("Expected forwarded loopback to pass, got %v", err)
	}

	r := newRequest("198.51.100.1:4000", nil)
	r.Host = "localhost:3001"
	if _, err := a.Authorize(r); err != nil {
		t.Errorf("Expected localhost hostname to pass, got %v", err)
	}
}
