package httputil

import (
	"net"
	"net/http"
	"strings"
)

// ReadUserIP returns the client IP of the request, preferring the
// X-Forwarded-For and X-Real-Ip headers set by reverse proxies.
func ReadUserIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	if realIP := r.Header.Get("X-Real-Ip"); realIP != "" {
		return strings.TrimSpace(realIP)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
