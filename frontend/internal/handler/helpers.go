package handler

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/dondesang/dondesang/frontend/internal/auth"
	"github.com/dondesang/dondesang/frontend/internal/view"
	"github.com/dondesang/dondesang/shared/domain"
	internal_errors "github.com/dondesang/dondesang/shared/errors"
	"github.com/dondesang/dondesang/shared/logger"
)

const (
	flashCookieError   = "flash_error"
	flashCookieSuccess = "flash_success"
	emailPrefillCookie = "email_prefill"
)

// setFlash stores a one-shot value read back by the next rendered page.
// Values are base64 encoded so any text survives the cookie.
func (h *Handler) setFlash(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    base64.StdEncoding.EncodeToString([]byte(value)),
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   h.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads a flash value and expires it.
func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	decoded, err := base64.StdEncoding.DecodeString(c.Value)
	if err != nil {
		return ""
	}
	return string(decoded)
}

func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, url, name, value string) {
	h.setFlash(w, name, value)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// userMessage returns the text to show for err. Only errors carrying a
// status were written for users; anything else is logged and replaced.
func userMessage(err error, fallback string) string {
	var e *internal_errors.ErrorWithStatusCode
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	logger.Log.Error("unexpected error", "error", err)
	return fallback
}

// currentUser returns the logged-in identity or nil.
func currentUser(r *http.Request) *domain.Session {
	if u, ok := auth.FromContext(r.Context()).User(); ok {
		return &u
	}
	return nil
}

// syncView reconciles the saved router with the current auth status.
func (h *Handler) syncView(w http.ResponseWriter, r *http.Request) view.Router {
	router := view.Load(r).Observe(auth.FromContext(r.Context()).IsAuthenticated())
	view.Save(w, router, h.Public.SecureCookies)
	return router
}

// enterView reconciles the router then moves it to v, for form posts that
// render a view in place.
func (h *Handler) enterView(w http.ResponseWriter, r *http.Request, v view.View) view.Router {
	router := view.Load(r).Observe(auth.FromContext(r.Context()).IsAuthenticated()).Navigate(v)
	view.Save(w, router, h.Public.SecureCookies)
	return router
}
