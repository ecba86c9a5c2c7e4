package apiclient

import (
	"context"

	"github.com/dondesang/dondesang/shared/api"
	"github.com/dondesang/dondesang/shared/domain"
)

// === Offer Methods ===

func (c *APIClient) GetOffers(ctx context.Context) ([]domain.Offer, error) {
	var offers []domain.Offer
	err := c.getJSON(ctx, "/propositionsdon/", &offers, "Failed to load donation offers.")
	return offers, err
}

func (c *APIClient) CreateOffer(ctx context.Context, req api.CreateOfferRequest) (domain.Offer, error) {
	var offer domain.Offer
	err := c.postJSON(ctx, "/propositionsdon/", req, &offer, "Failed to submit the donation offer.")
	return offer, err
}

// === Request Methods ===

func (c *APIClient) GetRequests(ctx context.Context) ([]domain.Request, error) {
	var requests []domain.Request
	err := c.getJSON(ctx, "/demandesdon/", &requests, "Failed to load donation requests.")
	return requests, err
}

func (c *APIClient) CreateRequest(ctx context.Context, req api.CreateRequestRequest) (domain.Request, error) {
	var request domain.Request
	err := c.postJSON(ctx, "/demandesdon/", req, &request, "Failed to submit the donation request.")
	return request, err
}

// === Assignment Methods ===

func (c *APIClient) GetAssignments(ctx context.Context) ([]domain.Assignment, error) {
	var assignments []domain.Assignment
	err := c.getJSON(ctx, "/affectationsdon/", &assignments, "Failed to load assignments.")
	return assignments, err
}

func (c *APIClient) CreateAssignment(ctx context.Context, req api.CreateAssignmentRequest) (domain.Assignment, error) {
	var assignment domain.Assignment
	err := c.postJSON(ctx, "/affectationsdon/", req, &assignment, "Failed to create the assignment.")
	return assignment, err
}

// === Stats ===

func (c *APIClient) GetStats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats
	err := c.getJSON(ctx, "/stats/", &stats, "Failed to load statistics.")
	return stats, err
}
