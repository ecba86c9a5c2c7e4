package handler

import (
	"net/http"

	frontend_domain "github.com/dondesang/dondesang/frontend/internal/domain"
	"github.com/dondesang/dondesang/frontend/internal/forms"
	"github.com/dondesang/dondesang/frontend/internal/view"
	"github.com/dondesang/dondesang/shared/domain"
	"github.com/dondesang/dondesang/shared/logger"
)

func (h *Handler) OfferPostHandler(w http.ResponseWriter, r *http.Request) {
	h.enterView(w, r, view.OfferForm)
	form := forms.ParseOffer(r)

	payload, err := form.Build(currentUser(r), h.Location)
	if err != nil {
		h.renderView(w, r, view.OfferForm, frontend_domain.OfferPageData{Form: form}, errorNotice(userMessage(err, "Please check the form.")))
		return
	}
	if _, err := h.APIClient.CreateOffer(r.Context(), payload); err != nil {
		h.renderView(w, r, view.OfferForm, frontend_domain.OfferPageData{Form: form}, errorNotice(userMessage(err, "Failed to submit the donation offer.")))
		return
	}

	logger.Log.Info("donation offer created", "user_id", payload.UserId)
	h.renderView(w, r, view.OfferForm, frontend_domain.OfferPageData{}, successNotice("Your donation offer has been submitted successfully!"))
}

func (h *Handler) renderRequest(w http.ResponseWriter, r *http.Request, form forms.Request, n notice) {
	groups, err := h.APIClient.GetBloodGroups(r.Context())
	if err != nil {
		n = n.withError(userMessage(err, "Failed to load blood groups."))
	}
	h.renderView(w, r, view.RequestForm, frontend_domain.RequestPageData{
		Form:        form,
		BloodGroups: groups,
		Urgencies:   domain.Urgencies,
	}, n)
}

func (h *Handler) RequestPostHandler(w http.ResponseWriter, r *http.Request) {
	h.enterView(w, r, view.RequestForm)
	form := forms.ParseRequest(r)

	payload, err := form.Build(currentUser(r))
	if err != nil {
		h.renderRequest(w, r, form, errorNotice(userMessage(err, "Please check the form.")))
		return
	}
	if _, err := h.APIClient.CreateRequest(r.Context(), payload); err != nil {
		h.renderRequest(w, r, form, errorNotice(userMessage(err, "Failed to submit the donation request.")))
		return
	}

	logger.Log.Info("donation request created", "user_id", payload.UserId, "urgency", payload.Urgency)
	h.renderRequest(w, r, forms.Request{}, successNotice("Your donation request has been submitted successfully!"))
}
