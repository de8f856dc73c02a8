package middleware

import (
	"net"
	"net/http"
	"strings"
)

// UnknownClientIP is used when the request carries no usable address.
const UnknownClientIP = "unknown"

// ClientIP derives the caller's address: the first X-Forwarded-For entry,
// then X-Real-IP, then the connection's remote host.
//
// Forwarding headers are trusted as sent; the service is expected to sit
// behind a proxy that overwrites them.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
			return host
		}
		return r.RemoteAddr
	}

	return UnknownClientIP
}
