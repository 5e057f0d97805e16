package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"cosmogen-server/internal/metrics"
)

// Generation endpoints run the full physics derivation per request, so they
// get their own, tighter limit class than the read-only catalog and listing
// routes.
const (
	classDefault  = "default"
	classGenerate = "generate"

	generateRoutePrefix = "/api/generate/"
)

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int

	// Limit applied to the generate route class. Falls back to the default
	// limit when left at zero.
	GenerateRequestsPerSecond float64
	GenerateBurstSize         int

	Enabled    bool
	TrustProxy bool
}

// RateLimiter enforces a per-client token bucket, keyed by (route class, IP)
// so a burst of generation calls cannot starve the cheap read paths.
type RateLimiter struct {
	config  RateLimitConfig
	metrics *metrics.Metrics
	clients map[string]*rate.Limiter
	mu      sync.RWMutex
}

func NewRateLimiter(config RateLimitConfig, m *metrics.Metrics) *RateLimiter {
	if config.GenerateRequestsPerSecond <= 0 {
		config.GenerateRequestsPerSecond = config.RequestsPerSecond
	}
	if config.GenerateBurstSize <= 0 {
		config.GenerateBurstSize = config.BurstSize
	}

	rl := &RateLimiter{
		config:  config,
		metrics: m,
		clients: make(map[string]*rate.Limiter),
	}

	if config.Enabled {
		go rl.cleanupClients()
	}

	return rl
}

func routeClass(path string) string {
	if strings.HasPrefix(path, generateRoutePrefix) {
		return classGenerate
	}
	return classDefault
}

func (rl *RateLimiter) limitFor(class string) (float64, int) {
	if class == classGenerate {
		return rl.config.GenerateRequestsPerSecond, rl.config.GenerateBurstSize
	}
	return rl.config.RequestsPerSecond, rl.config.BurstSize
}

func (rl *RateLimiter) getLimiter(class, ip string) *rate.Limiter {
	key := class + "|" + ip

	rl.mu.RLock()
	limiter, exists := rl.clients[key]
	rl.mu.RUnlock()

	if !exists {
		rps, burst := rl.limitFor(class)
		limiter = rate.NewLimiter(rate.Limit(rps), burst)

		rl.mu.Lock()
		rl.clients[key] = limiter
		rl.mu.Unlock()
	}

	return limiter
}

func (rl *RateLimiter) cleanupClients() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		// A bucket back at full burst has been idle long enough to drop.
		for key, limiter := range rl.clients {
			if limiter.TokensAt(time.Now()) == float64(limiter.Burst()) {
				delete(rl.clients, key)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.config.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		class := routeClass(r.URL.Path)
		ip := getClientIP(r, rl.config.TrustProxy)
		limiter := rl.getLimiter(class, ip)

		if !limiter.Allow() {
			rps, burst := rl.limitFor(class)
			slog.Warn("Rate limit exceeded",
				"middleware", "rate_limit",
				"client_ip", ip,
				"route_class", class,
				"path", r.URL.Path,
				"requests_per_second", rps,
				"burst_size", burst,
			)

			if rl.metrics != nil {
				rl.metrics.RateLimited.WithLabelValues(class).Inc()
			}

			w.Header().Set("Retry-After", "1")
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func getClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			// X-Forwarded-For can be comma-separated; first entry is the client
			if i := strings.IndexByte(xff, ','); i != -1 {
				return strings.TrimSpace(xff[:i])
			}
			return xff
		}

		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return xri
		}
	}

	// Strip port from RemoteAddr (e.g. "192.168.1.1:12345" -> "192.168.1.1")
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
