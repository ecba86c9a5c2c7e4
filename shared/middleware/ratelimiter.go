package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/dondesang/dondesang/shared/logger"
	"github.com/dondesang/dondesang/shared/middleware/ratelimiter"
	"github.com/dondesang/dondesang/shared/utils"
)

// RateLimit rejects requests whose identity ran out of tokens.
// Only state-changing methods are counted.
func RateLimit(rl *ratelimiter.UserRateLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				logger.Log.Warn("rate limit exceeded", "identity", identity, "path", r.URL.Path)
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Max(1, math.Round(rl.RetryAfter().Seconds())))))
				http.Error(w, "Too many attempts, try again in a minute", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP is RateLimit keyed on the client address.
func RateLimitByIP(rl *ratelimiter.UserRateLimiter) func(http.Handler) http.Handler {
	return RateLimit(rl, utils.GetIP)
}
