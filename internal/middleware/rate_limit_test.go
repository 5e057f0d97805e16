package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"cosmogen-server/internal/metrics"
	"cosmogen-server/internal/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "192.0.2.1:54321"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterDisabledPassesThrough(t *testing.T) {
	rl := middleware.NewRateLimiter(middleware.RateLimitConfig{Enabled: false}, nil)
	handler := rl.Middleware(okHandler())

	for i := 0; i < 10; i++ {
		require.Equal(t, http.StatusOK, get(handler, "/api/classifications").Code)
	}
}

// Generation calls have their own bucket: exhausting it must not block the
// catalog read paths for the same client.
func TestRateLimiterGenerateClassIsSeparate(t *testing.T) {
	m := metrics.New()
	rl := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Enabled:                   true,
		RequestsPerSecond:         100,
		BurstSize:                 100,
		GenerateRequestsPerSecond: 1,
		GenerateBurstSize:         1,
	}, m)
	handler := rl.Middleware(okHandler())

	require.Equal(t, http.StatusOK, get(handler, "/api/generate/single").Code)
	require.Equal(t, http.StatusTooManyRequests, get(handler, "/api/generate/binary").Code)

	require.Equal(t, http.StatusOK, get(handler, "/api/classifications").Code)

	require.Equal(t, 1.0, testutil.ToFloat64(m.RateLimited.WithLabelValues("generate")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.RateLimited.WithLabelValues("default")))
}

func TestRateLimiterGenerateLimitDefaultsToGlobal(t *testing.T) {
	rl := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 1,
		BurstSize:         2,
	}, nil)
	handler := rl.Middleware(okHandler())

	require.Equal(t, http.StatusOK, get(handler, "/api/generate/single").Code)
	require.Equal(t, http.StatusOK, get(handler, "/api/generate/single").Code)

	rec := get(handler, "/api/generate/single")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "1", rec.Header().Get("Retry-After"))
}
