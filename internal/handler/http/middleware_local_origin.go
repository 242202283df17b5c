package http

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// withLocalOrigin only lets through requests addressed to a loopback name or
// the listen address, and whose Origin, when sent, is the API itself. This
// closes the API to DNS rebinding and to cross-site form posts.
func (h *Handler) withLocalOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.isLocalHost(hostname(r.Host)) {
			h.writeError(w, r, "http.withLocalOrigin", fmt.Errorf("%w: %q", ErrForeignHost, r.Host))
			return
		}

		if origin := r.Header.Get("Origin"); origin != "" && !sameOrigin(origin, r.Host) {
			h.writeError(w, r, "http.withLocalOrigin", fmt.Errorf("%w: %q", ErrForeignOrigin, origin))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) isLocalHost(host string) bool {
	if host == "" {
		return false
	}
	if strings.EqualFold(host, "localhost") {
		return true
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return true
	}
	return h.listenHost != "" && strings.EqualFold(host, h.listenHost)
}

// hostname strips the port and IPv6 brackets from a Host header.
func hostname(hostport string) string {
	if host, _, err := net.SplitHostPort(hostport); err == nil {
		return host
	}
	return strings.TrimSuffix(strings.TrimPrefix(hostport, "["), "]")
}

// sameOrigin reports whether origin is an http(s) origin for host. "null"
// and opaque origins never match.
func sameOrigin(origin, host string) bool {
	u, err := url.Parse(origin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	return strings.EqualFold(u.Host, host)
}
