package auth

import (
	"fmt"
	"net/http"
	"net/netip"
	"strings"

	apperrors "github.com/shopworks/storefront-admin/src/internal/errors"
)

// Authorizer decides whether a request may use admin endpoints.
// It returns the caller identity used for audit fields (modifiedBy) and a
// FORBIDDEN error when access is denied.
type Authorizer interface {
	Authorize(r *http.Request) (caller string, err error)
}

// loopbackAddresses are the textual loopback forms accepted without allowlisting.
var loopbackAddresses = map[string]struct{}{
	"127.0.0.1":        {},
	"::1":              {},
	"::ffff:127.0.0.1": {},
	"localhost":        {},
}

// IPAllowlist grants access to loopback callers and to a static set of
// addresses or CIDR prefixes fixed at construction time.
//
// This is a coarse capability check, not authentication: the caller address
// comes from spoofable forwarding headers.
type IPAllowlist struct {
	entries  []string
	addrs    map[string]struct{}
	prefixes []netip.Prefix
}

// NewIPAllowlist builds an allowlist. Entries are literal addresses or CIDR
// prefixes such as "192.168.1.0/24".
func NewIPAllowlist(entries []string) (*IPAllowlist, error) {
	a := &IPAllowlist{addrs: make(map[string]struct{})}

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, apperrors.NewConfigError(fmt.Sprintf("invalid allowlist prefix %q", entry), err)
			}
			a.prefixes = append(a.prefixes, prefix.Masked())
		} else {
			a.addrs[entry] = struct{}{}
		}
		a.entries = append(a.entries, entry)
	}

	return a, nil
}

// Entries returns the configured allowlist in configuration order.
func (a *IPAllowlist) Entries() []string {
	return append([]string(nil), a.entries...)
}

// Allowed reports whether ip is loopback or allowlisted.
func (a *IPAllowlist) Allowed(ip string) bool {
	if _, ok := loopbackAddresses[ip]; ok {
		return true
	}
	if _, ok := a.addrs[ip]; ok {
		return true
	}
	if len(a.prefixes) == 0 {
		return false
	}

	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range a.prefixes {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// Authorize implements Authorizer.
func (a *IPAllowlist) Authorize(r *http.Request) (string, error) {
	ip := ClientIP(r)

	if requestHostname(r) == "localhost" || a.Allowed(ip) {
		return ip, nil
	}
	return ip, apperrors.NewForbidden("Access denied")
}
