package middleware

import (
	"net"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"infinite-experiment/airport-lookup/internal/common"
	"infinite-experiment/airport-lookup/internal/constants"
	"infinite-experiment/airport-lookup/internal/metrics"
)

// RateLimiter keeps one token bucket per client IP. Buckets of clients that
// have gone quiet expire after idleTTL.
type RateLimiter struct {
	limiters  *cache.Cache
	limit     rate.Limit
	burst     int
	whitelist map[string]bool
	metrics   *metrics.MetricsRegistry
}

func NewRateLimiter(perSecond float64, burst int, idleTTL time.Duration, metricsReg *metrics.MetricsRegistry) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiters: cache.New(idleTTL, 2*idleTTL),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		whitelist: map[string]bool{
			"127.0.0.1": true, // local probes
			"::1":       true,
		},
		metrics: metricsReg,
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	if existing, found := rl.limiters.Get(ip); found {
		limiter := existing.(*rate.Limiter)
		rl.limiters.SetDefault(ip, limiter)
		return limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	if err := rl.limiters.Add(ip, limiter, cache.DefaultExpiration); err != nil {
		// Lost the race to another request from the same client.
		if existing, found := rl.limiters.Get(ip); found {
			return existing.(*rate.Limiter)
		}
	}
	return limiter
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if rl.whitelist[ip] {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.getLimiter(ip).Allow() {
			if rl.metrics != nil {
				rl.metrics.RateLimitedTotal.Inc()
			}
			common.RespondError(w, http.StatusTooManyRequests, constants.MsgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
