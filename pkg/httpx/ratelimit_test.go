package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimitByIP(t *testing.T) {
	t.Parallel()

	cfg := RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), RateLimitByIP(cfg))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, do("10.0.0.1:1234"))
	require.Equal(t, http.StatusOK, do("10.0.0.1:1234"))
	require.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:1234"))

	// A different client gets its own bucket.
	require.Equal(t, http.StatusOK, do("10.0.0.2:1234"))
}

func TestClientIPHonorsProxyHeaders(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:9999"
	require.Equal(t, "127.0.0.1", clientIP(req))

	req.Header.Set("X-Real-IP", "203.0.113.7")
	require.Equal(t, "203.0.113.7", clientIP(req))

	req.Header.Set("X-Forwarded-For", "198.51.100.4, 203.0.113.7")
	require.Equal(t, "198.51.100.4", clientIP(req))
}
