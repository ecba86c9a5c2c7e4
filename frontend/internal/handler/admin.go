package handler

import (
	"context"
	"net/http"

	"github.com/dondesang/dondesang/frontend/internal/auth"
	frontend_domain "github.com/dondesang/dondesang/frontend/internal/domain"
	"github.com/dondesang/dondesang/frontend/internal/forms"
	"github.com/dondesang/dondesang/frontend/internal/view"
	"github.com/dondesang/dondesang/shared/domain"
	"github.com/dondesang/dondesang/shared/logger"
	"golang.org/x/sync/errgroup"
)

// loadAssignmentPanel fetches everything the assignment panel shows. Pending
// entries are filtered here, not by the API.
func (h *Handler) loadAssignmentPanel(ctx context.Context) (frontend_domain.AssignmentPageData, error) {
	var (
		data        frontend_domain.AssignmentPageData
		offers      []domain.Offer
		requests    []domain.Request
		assignments []domain.Assignment
		groups      []domain.BloodGroup
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		offers, err = h.APIClient.GetOffers(gctx)
		return err
	})
	g.Go(func() (err error) {
		requests, err = h.APIClient.GetRequests(gctx)
		return err
	})
	g.Go(func() (err error) {
		assignments, err = h.APIClient.GetAssignments(gctx)
		return err
	})
	g.Go(func() error {
		// Labels fall back to the group id.
		var err error
		if groups, err = h.APIClient.GetBloodGroups(gctx); err != nil {
			logger.Log.Warn("blood groups unavailable for labels", "error", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return data, err
	}

	for _, o := range domain.PendingOffers(offers) {
		data.Offers = append(data.Offers, frontend_domain.OfferOption{
			Id:    o.Id,
			Label: frontend_domain.OfferLabel(o),
			Notes: h.TextProcessor.RenderPtr(o.Notes),
		})
	}
	for _, req := range domain.PendingRequests(requests) {
		data.Requests = append(data.Requests, frontend_domain.RequestOption{
			Id:          req.Id,
			Label:       frontend_domain.RequestLabel(req, groups),
			Urgency:     req.Urgency,
			Description: h.TextProcessor.Render(req.Description),
		})
	}
	for _, a := range assignments {
		data.History = append(data.History, frontend_domain.AssignmentRow{
			Assignment: a,
			Notes:      h.TextProcessor.RenderPtr(a.AdminNotes),
		})
	}
	return data, nil
}

func (h *Handler) renderAssignments(w http.ResponseWriter, r *http.Request, form forms.Assignment, n notice) {
	if !auth.FromContext(r.Context()).IsAdmin() {
		h.renderView(w, r, view.AssignmentAdmin, frontend_domain.AssignmentPageData{AccessDenied: true}, n)
		return
	}

	data, err := h.loadAssignmentPanel(r.Context())
	if err != nil {
		n = n.withError(userMessage(err, "Failed to load donation data."))
	}
	data.Form = form
	h.renderView(w, r, view.AssignmentAdmin, data, n)
}

func (h *Handler) AssignmentPostHandler(w http.ResponseWriter, r *http.Request) {
	h.enterView(w, r, view.AssignmentAdmin)
	if !auth.FromContext(r.Context()).IsAdmin() {
		h.renderView(w, r, view.AssignmentAdmin, frontend_domain.AssignmentPageData{AccessDenied: true}, notice{})
		return
	}

	form := forms.ParseAssignment(r)
	payload, err := form.Build(currentUser(r))
	if err != nil {
		h.renderAssignments(w, r, form, errorNotice(userMessage(err, "Please check the form.")))
		return
	}
	if _, err := h.APIClient.CreateAssignment(r.Context(), payload); err != nil {
		h.renderAssignments(w, r, form, errorNotice(userMessage(err, "Failed to create the assignment.")))
		return
	}

	logger.Log.Info("assignment created", "offer_id", payload.OfferId, "request_id", payload.RequestId, "admin_id", payload.AdminId)
	// Rendering reloads the lists, so the matched entries drop out.
	h.renderAssignments(w, r, forms.Assignment{}, successNotice("Assignment created successfully!"))
}

func (h *Handler) renderStats(w http.ResponseWriter, r *http.Request, n notice) {
	if !auth.FromContext(r.Context()).IsAdmin() {
		h.renderView(w, r, view.StatsAdmin, frontend_domain.StatsPageData{AccessDenied: true}, n)
		return
	}

	stats, err := h.APIClient.GetStats(r.Context())
	if err != nil {
		n = n.withError(userMessage(err, "Failed to load statistics."))
	}
	h.renderView(w, r, view.StatsAdmin, frontend_domain.StatsPageData{Loaded: err == nil, Stats: stats}, n)
}
