package middleware

import (
	"net/http"

	"github.com/dondesang/dondesang/frontend/internal/auth"
)

// LoadSession initializes the auth context from storage once per request and
// attaches the resulting state to the request context.
func LoadSession(provider *auth.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := provider.Init(w, r)
			next.ServeHTTP(w, r.WithContext(auth.WithState(r.Context(), state)))
		})
	}
}
