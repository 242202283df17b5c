package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLocalOrigin_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		host       string
		origin     string
		wantStatus int
	}{
		{name: "loopback ip", host: "127.0.0.1:8080", wantStatus: http.StatusOK},
		{name: "localhost", host: "localhost:8080", wantStatus: http.StatusOK},
		{name: "ipv6 loopback", host: "[::1]:8080", wantStatus: http.StatusOK},
		{name: "listen host", host: "vault.lan:8080", wantStatus: http.StatusOK},
		{name: "same origin", host: "127.0.0.1:8080", origin: "http://127.0.0.1:8080", wantStatus: http.StatusOK},
		{name: "rebound name", host: "evil.example:8080", wantStatus: http.StatusMisdirectedRequest},
		{name: "empty host", host: "", wantStatus: http.StatusMisdirectedRequest},
		{name: "foreign origin", host: "127.0.0.1:8080", origin: "http://evil.example", wantStatus: http.StatusForbidden},
		{name: "other local port", host: "127.0.0.1:8080", origin: "http://127.0.0.1:3000", wantStatus: http.StatusForbidden},
		{name: "null origin", host: "127.0.0.1:8080", origin: "null", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			h.listenHost = "vault.lan"
			nextCalled := false

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
			req.Host = tt.host
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(h.withLocalOrigin(next)).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, nextCalled)
		})
	}
}

func TestHostname(t *testing.T) {
	assert.Equal(t, "127.0.0.1", hostname("127.0.0.1:8080"))
	assert.Equal(t, "::1", hostname("[::1]:80"))
	assert.Equal(t, "::1", hostname("[::1]"))
	assert.Equal(t, "localhost", hostname("localhost"))
	assert.Equal(t, "", hostname(":8080"))
}
