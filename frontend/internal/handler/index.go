package handler

import (
	"net/http"

	"github.com/dondesang/dondesang/frontend/internal/auth"
	frontend_domain "github.com/dondesang/dondesang/frontend/internal/domain"
	"github.com/dondesang/dondesang/frontend/internal/forms"
	"github.com/dondesang/dondesang/frontend/internal/registration"
	"github.com/dondesang/dondesang/frontend/internal/view"
	"github.com/gorilla/mux"
)

// IndexHandler renders the current view of the router.
func (h *Handler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	if auth.FromContext(r.Context()).Loading() {
		h.renderTemplate(w, r, "loading.html", nil)
		return
	}
	router := h.syncView(w, r)
	h.showView(w, r, router.Current(), notice{})
}

// NavigateHandler switches to the view named in the path. Any view can be
// reached; the view itself checks what the user may see.
func (h *Handler) NavigateHandler(w http.ResponseWriter, r *http.Request) {
	v, ok := view.Parse(mux.Vars(r)["view"])
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.enterView(w, r, v)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) showView(w http.ResponseWriter, r *http.Request, v view.View, n notice) {
	switch v {
	case view.Register:
		h.renderRegister(w, r, registration.New(), n)
	case view.Dashboard:
		h.renderView(w, r, v, frontend_domain.DashboardPageData{AccessDenied: currentUser(r) == nil}, n)
	case view.OfferForm:
		h.renderView(w, r, v, frontend_domain.OfferPageData{}, n)
	case view.RequestForm:
		h.renderRequest(w, r, forms.Request{}, n)
	case view.AssignmentAdmin:
		h.renderAssignments(w, r, forms.Assignment{}, n)
	case view.StatsAdmin:
		h.renderStats(w, r, n)
	default:
		h.renderView(w, r, view.Login, nil, n)
	}
}
