// Package auth gates mutating endpoints behind an address allowlist.
//
// The Authorizer interface is what the HTTP layer depends on; IPAllowlist is
// the only implementation. A request is admitted when:
//   - its Host header names "localhost", or
//   - the derived caller address is a loopback literal (127.0.0.1, ::1,
//     ::ffff:127.0.0.1), or
//   - the address is listed in the allowlist, literally or inside a CIDR entry
//
// The caller address is taken from X-Forwarded-For, X-Real-IP or the peer
// address, in that order. All of these except the peer address are trivially
// spoofed by the client, and so is the Host header. Treat the gate as a
// convenience for a trusted network, not as authentication.
package auth
