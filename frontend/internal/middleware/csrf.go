package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/dondesang/dondesang/shared/csrf"
	"github.com/dondesang/dondesang/shared/logger"
)

const (
	csrfCookieName = "csrf_token"
	csrfFormField  = "csrf_token"
)

type csrfContextKey struct{}

// CSRFConfig holds CSRF middleware configuration
type CSRFConfig struct {
	Signer        *csrf.Signer
	SecureCookies bool
	MaxAge        time.Duration
}

// CSRF issues a double-submit token cookie and checks it against the
// csrf_token form field of every unsafe request.
func CSRF(config CSRFConfig) func(http.Handler) http.Handler {
	if config.MaxAge <= 0 {
		config.MaxAge = 24 * time.Hour
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(csrfCookieName)

			if isUnsafe(r.Method) {
				if err != nil {
					logger.Log.Warn("CSRF token cookie missing", "path", r.URL.Path)
					http.Error(w, "CSRF token missing", http.StatusForbidden)
					return
				}
				if err := r.ParseForm(); err != nil {
					logger.Log.Warn("failed to parse form", "error", err)
					http.Error(w, "Invalid form data", http.StatusBadRequest)
					return
				}
				if !config.Signer.Verify(cookie.Value, r.PostForm.Get(csrfFormField)) {
					logger.Log.Warn("CSRF token validation failed", "path", r.URL.Path)
					http.Error(w, "CSRF token invalid", http.StatusForbidden)
					return
				}
			}

			var token string
			if err == nil && config.Signer.Valid(cookie.Value) {
				token = cookie.Value
			} else {
				token, err = config.Signer.Issue()
				if err != nil {
					logger.Log.Error("failed to generate CSRF token", "error", err)
					http.Error(w, "Internal server error", http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     csrfCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					Secure:   config.SecureCookies,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   int(config.MaxAge.Seconds()),
				})
			}

			ctx := context.WithValue(r.Context(), csrfContextKey{}, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isUnsafe(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// GetCSRFTokenFromContext retrieves CSRF token from request context
func GetCSRFTokenFromContext(r *http.Request) string {
	token, _ := r.Context().Value(csrfContextKey{}).(string)
	return token
}
