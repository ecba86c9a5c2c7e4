package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/dondesang/dondesang/frontend/internal/auth"
	frontend_domain "github.com/dondesang/dondesang/frontend/internal/domain"
	"github.com/dondesang/dondesang/frontend/internal/middleware"
	"github.com/dondesang/dondesang/frontend/internal/view"
	"github.com/dondesang/dondesang/shared/logger"
)

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common frontend_domain.CommonTemplateData
}

// notice is the status line rendered above a view.
type notice struct {
	Error   string
	Success string
}

func errorNotice(msg string) notice   { return notice{Error: msg} }
func successNotice(msg string) notice { return notice{Success: msg} }

// withError keeps an existing error and otherwise sets msg.
func (n notice) withError(msg string) notice {
	if n.Error == "" {
		n.Error = msg
	}
	return n
}

var viewTemplates = map[view.View]string{
	view.Login:           "login.html",
	view.Register:        "register.html",
	view.Dashboard:       "dashboard.html",
	view.OfferForm:       "offer.html",
	view.RequestForm:     "request.html",
	view.AssignmentAdmin: "assignments.html",
	view.StatsAdmin:      "stats.html",
}

// navViews are the header links. Admin panels only show for admins.
var navViews = []view.View{view.Dashboard, view.OfferForm, view.RequestForm, view.AssignmentAdmin, view.StatsAdmin}

func (h *Handler) renderView(w http.ResponseWriter, r *http.Request, v view.View, data any, n notice) {
	h.renderTemplateWithNotice(w, r, viewTemplates[v], v, data, n)
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	h.renderTemplateWithNotice(w, r, name, "", data, notice{})
}

func (h *Handler) renderTemplateWithNotice(w http.ResponseWriter, r *http.Request, name string, current view.View, data any, n notice) {
	tmpl, ok := h.getTemplate(name)
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	common := h.initCommonTemplateData(w, r, current)
	if n.Error != "" {
		common.Error = n.Error
	}
	if n.Success != "" {
		common.Success = n.Success
	}

	wrapped := TemplateData{
		Data:   data,
		Common: common,
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, wrapped); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

func (h *Handler) initCommonTemplateData(w http.ResponseWriter, r *http.Request, current view.View) frontend_domain.CommonTemplateData {
	state := auth.FromContext(r.Context())
	common := frontend_domain.CommonTemplateData{
		Error:            h.popFlash(w, r, flashCookieError),
		Success:          h.popFlash(w, r, flashCookieSuccess),
		IsAdmin:          state.IsAdmin(),
		CSRFToken:        middleware.GetCSRFTokenFromContext(r),
		EmailPlaceholder: h.popFlash(w, r, emailPrefillCookie),
		CurrentView:      current,
		Validation:       frontend_domain.ValidationData{PasswordMinLen: 6},
	}
	if u, ok := state.User(); ok {
		common.User = &u
		for _, v := range navViews {
			if v.AdminOnly() && !state.IsAdmin() {
				continue
			}
			common.Nav = append(common.Nav, frontend_domain.NavItem{View: v, Title: v.Title(), Active: v == current})
		}
	}
	return common
}
