package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dondesang/dondesang/shared/middleware/ratelimiter"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitByIP(t *testing.T) {
	rl := ratelimiter.NewUserRateLimiter(1, 1, time.Minute)
	handler := RateLimitByIP(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(method, remote string) int {
		req := httptest.NewRequest(method, "/login", nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code == http.StatusTooManyRequests {
			assert.Equal(t, "60", rr.Header().Get("Retry-After"))
		}
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, send(http.MethodPost, "192.0.2.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, send(http.MethodPost, "192.0.2.1:1235"))
	assert.Equal(t, http.StatusOK, send(http.MethodGet, "192.0.2.1:1236"), "GET is not counted")
	assert.Equal(t, http.StatusOK, send(http.MethodPost, "192.0.2.2:1234"))
	assert.Equal(t, http.StatusBadRequest, send(http.MethodPost, "nowhere"))
}
