package router

import (
	"net/http"

	"github.com/dondesang/dondesang/frontend/internal/handler"
	frontend_mw "github.com/dondesang/dondesang/frontend/internal/middleware"
	"github.com/dondesang/dondesang/frontend/internal/setup"
	mw "github.com/dondesang/dondesang/shared/middleware"
	"github.com/dondesang/dondesang/shared/middleware/metrics"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(deps *setup.Dependencies) *mux.Router {
	h := deps.Handler
	r := mux.NewRouter()
	r.Use(mw.RequestLogger, metrics.Middleware, mw.SecurityHeaders(mw.SecurityConfig{HTTPS: deps.Public.SecureCookies, CSP: mw.DefaultCSP}))

	// Infrastructure routes
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/healthz", handler.HealthHandler).Methods("GET")
	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(deps.Public.StaticPath))),
	)

	// Pages: every request reads the stored session exactly once.
	pages := r.NewRoute().Subrouter()
	pages.Use(
		mw.NoStore,
		frontend_mw.CSRF(frontend_mw.CSRFConfig{Signer: deps.CSRF, SecureCookies: deps.Public.SecureCookies}),
		frontend_mw.LoadSession(deps.Auth),
	)
	pages.HandleFunc("/", h.IndexHandler).Methods("GET")
	pages.HandleFunc("/navigate/{view}", h.NavigateHandler).Methods("GET")
	pages.HandleFunc("/logout", h.LogoutHandler).Methods("POST")
	pages.HandleFunc("/offers", h.OfferPostHandler).Methods("POST")
	pages.HandleFunc("/requests", h.RequestPostHandler).Methods("POST")
	pages.HandleFunc("/assignments", h.AssignmentPostHandler).Methods("POST")

	// Credential endpoints are throttled per client address.
	credentials := pages.NewRoute().Subrouter()
	if deps.RateLimiter != nil {
		credentials.Use(mw.RateLimitByIP(deps.RateLimiter))
	}
	credentials.HandleFunc("/login", h.LoginPostHandler).Methods("POST")
	credentials.HandleFunc("/register", h.RegisterPostHandler).Methods("POST")

	return r
}
