package api

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/howaiconnects/seogate/internal/logger"
)

// ipRateLimiter keeps a token bucket per client IP.
type ipRateLimiter struct {
	buckets sync.Map // map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

func newIPRateLimiter(ratePerMinute, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limit: rate.Limit(float64(ratePerMinute) / 60.0),
		burst: burst,
	}
}

func (rl *ipRateLimiter) allow(ip string) bool {
	value, _ := rl.buckets.LoadOrStore(ip, rate.NewLimiter(rl.limit, rl.burst))
	return value.(*rate.Limiter).Allow()
}

// requireAuth rejects requests whose bearer token does not match the
// configured static API token.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token != s.apiToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"detail": "Invalid authentication token",
			})
			return
		}
		next(w, r)
	}
}

// rateLimit throttles per client IP.
func (s *Server) rateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !s.limiter.allow(ip) {
			logger.Log.WithField("ip", ip).Warn("rate limit exceeded")
			writeJSON(w, http.StatusTooManyRequests, map[string]string{
				"detail": "Rate limit exceeded",
			})
			return
		}
		next(w, r)
	}
}

// logRequest logs method, path, and duration for each request.
func logRequest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		logger.Log.WithFields(map[string]any{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request handled")
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
