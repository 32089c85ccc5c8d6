package main

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/dmitrymomot/formcheck/pkg/cache"
	"github.com/dmitrymomot/formcheck/pkg/clientip"
)

type rateLimitConfig struct {
	Enabled bool    `env:"SIGNUP_RATE_LIMIT_ENABLED" envDefault:"true"`
	RPS     float64 `env:"SIGNUP_RATE_LIMIT_RPS" envDefault:"1"`
	Burst   int     `env:"SIGNUP_RATE_LIMIT_BURST" envDefault:"5"`
	Clients int     `env:"SIGNUP_RATE_LIMIT_CLIENTS" envDefault:"10000"`
}

// rateLimit throttles requests per client IP. Limiters live in an LRU, so
// the least recently seen clients are forgotten first.
func rateLimit(cfg rateLimitConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}

	clients := cache.NewLRU[string, *rate.Limiter](max(cfg.Clients, 1))
	newLimiter := func() (*rate.Limiter, error) {
		return rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst), nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter, _ := clients.GetOrLoad(clientip.FromContext(r.Context()), newLimiter)
			if !limiter.Allow() {
				writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
