package handler

import (
	"fmt"
	"net/http"

	frontend_domain "github.com/dondesang/dondesang/frontend/internal/domain"
	"github.com/dondesang/dondesang/frontend/internal/registration"
	"github.com/dondesang/dondesang/frontend/internal/view"
	"github.com/dondesang/dondesang/shared/domain"
	"github.com/dondesang/dondesang/shared/logger"
)

func (h *Handler) renderRegister(w http.ResponseWriter, r *http.Request, wizard registration.Wizard, n notice) {
	groups, err := h.APIClient.GetBloodGroups(r.Context())
	if err != nil {
		n = n.withError(userMessage(err, "Failed to load blood groups."))
	}
	h.renderView(w, r, view.Register, frontend_domain.RegisterPageData{
		Wizard:      wizard,
		Steps:       registration.Steps,
		BloodGroups: groups,
		Genders:     []domain.Gender{domain.GenderMale, domain.GenderFemale},
	}, n)
}

// RegisterPostHandler drives the wizard. Every step posts back the whole form
// with an action: next, prev or submit.
func (h *Handler) RegisterPostHandler(w http.ResponseWriter, r *http.Request) {
	h.enterView(w, r, view.Register)
	wizard := registration.Restore(registration.ParseStep(r.PostFormValue("step")), registration.ParseForm(r))

	switch r.PostFormValue("action") {
	case "next":
		next, err := wizard.Next()
		if err != nil {
			h.renderRegister(w, r, wizard, errorNotice(userMessage(err, "Please check the form.")))
			return
		}
		h.renderRegister(w, r, next, notice{})
	case "prev":
		h.renderRegister(w, r, wizard.Prev(), notice{})
	case "submit":
		payload, err := wizard.Submission()
		if err != nil {
			h.renderRegister(w, r, wizard, errorNotice(userMessage(err, "Please check the form.")))
			return
		}
		if _, err := h.APIClient.CreateUser(r.Context(), payload); err != nil {
			h.renderRegister(w, r, wizard, errorNotice(userMessage(err, "Registration failed.")))
			return
		}
		logger.Log.Info("account registered", "email", payload.Email)
		h.renderRegister(w, r, registration.New(),
			successNotice(fmt.Sprintf("Registration successful for %s! You can now log in.", payload.Email)))
	default:
		h.renderRegister(w, r, wizard, notice{})
	}
}
