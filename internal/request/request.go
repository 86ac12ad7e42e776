// Package request holds small helpers for reading client information
// off incoming HTTP requests.
package request

import (
	"net/http"
	"strings"
)

// ClientIP extracts the originating client IP, preferring proxy
// headers over the socket address. X-Forwarded-For wins, then
// X-Real-IP, then RemoteAddr. The rate limiter keys on this value.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// First hop is the original client
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	return r.RemoteAddr
}
