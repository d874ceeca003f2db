package auth

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP derives the caller address from the request. It checks the first
// X-Forwarded-For entry, then X-Real-IP, then falls back to RemoteAddr.
//
// Both headers are client-controlled. Anyone who can reach the server directly
// can claim any address, so this is only meaningful behind a proxy that
// overwrites them.
func ClientIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// X-Forwarded-For can contain multiple IPs, take the first one
		ips := strings.Split(forwarded, ",")
		if first := strings.TrimSpace(ips[0]); first != "" {
			return first
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// requestHostname returns the Host header without port.
func requestHostname(r *http.Request) string {
	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(strings.Trim(host, "[]"))
}
