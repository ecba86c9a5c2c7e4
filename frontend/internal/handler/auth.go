package handler

import (
	"net/http"

	"github.com/dondesang/dondesang/frontend/internal/forms"
	"github.com/dondesang/dondesang/frontend/internal/view"
	"github.com/dondesang/dondesang/shared/logger"
)

func (h *Handler) LoginPostHandler(w http.ResponseWriter, r *http.Request) {
	form := forms.ParseLogin(r)
	fail := func(msg string) {
		h.setFlash(w, emailPrefillCookie, form.Email)
		h.redirectWithFlash(w, r, "/", flashCookieError, msg)
	}

	if err := form.Validate(); err != nil {
		fail(userMessage(err, "Please enter your email and password."))
		return
	}

	token, err := h.APIClient.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		fail(userMessage(err, "Login failed."))
		return
	}

	// A token without a full identity must never reach storage.
	user, err := h.Tokens.Decode(token.AccessToken)
	if err != nil {
		logger.Log.Warn("rejected access token", "error", err)
		fail("The server returned an invalid login response.")
		return
	}

	if _, err := h.Auth.Login(w, r, user); err != nil {
		logger.Log.Error("failed to store session", "error", err)
		fail("Login failed. Please try again.")
		return
	}

	view.Save(w, view.Load(r).Observe(true), h.Public.SecureCookies)
	logger.Log.Info("user logged in", "user_id", user.Id, "role", user.Role)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	h.Auth.Logout(w, r)
	view.Save(w, view.Load(r).Observe(false), h.Public.SecureCookies)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
