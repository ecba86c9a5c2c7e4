package view

import (
	"net/http"
	"strings"
)

const cookieName = "view"

// Load restores the router saved in the request cookie, or a fresh router.
func Load(r *http.Request) Router {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return New()
	}
	name, flag, ok := strings.Cut(c.Value, ".")
	if !ok {
		return New()
	}
	v, ok := Parse(name)
	if !ok {
		return New()
	}
	return Router{current: v, authenticated: flag == "1"}
}

// Save writes router to the response so the next request resumes from it.
func Save(w http.ResponseWriter, router Router, secure bool) {
	flag := "0"
	if router.authenticated {
		flag = "1"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    string(router.current) + "." + flag,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
