package handler

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfferPostSuccess(t *testing.T) {
	env := newTestEnv(t)
	env.store(t, donorRecord)

	rr := env.post("/offers", url.Values{
		"available_at": {"2024-05-01T10:00"},
		"location":     {"Lyon"},
		"notes":        {"mornings"},
	}, "offer-form.1")

	body := rr.Body.String()
	assert.Contains(t, body, "view=offer-form|")
	assert.Contains(t, body, "success=Your donation offer has been submitted successfully!|")
	assert.NotContains(t, body, "Location:Lyon")

	sent := env.api.body(t, "POST /propositionsdon/")
	assert.Equal(t, float64(7), sent["id_utilisateur"])
	assert.Equal(t, "2024-05-01T10:00:00.000Z", sent["disponibilite_date_heure"])
	assert.Equal(t, "Lyon", sent["localisation_proposition"])
	assert.Equal(t, "mornings", sent["notes"])
	assert.Equal(t, "en attente", sent["statut"])
}

func TestOfferPostMissingLocation(t *testing.T) {
	env := newTestEnv(t)
	env.store(t, donorRecord)

	rr := env.post("/offers", url.Values{"available_at": {"2024-05-01T10:00"}}, "offer-form.1")

	assert.Contains(t, rr.Body.String(), "error=Please fill in all required fields (date/time and location).|")
	assert.Contains(t, rr.Body.String(), "AvailableAt:2024-05-01T10:00")
	assert.Zero(t, env.api.count("POST /propositionsdon/"))
}

func TestOfferPostWithoutSession(t *testing.T) {
	env := newTestEnv(t)

	rr := env.post("/offers", url.Values{"available_at": {"2024-05-01T10:00"}, "location": {"Lyon"}}, "offer-form.0")

	assert.Contains(t, rr.Body.String(), "error=Unable to identify the user. Please log in again.|")
	assert.Zero(t, env.api.total())
}

func TestOfferPostAPIError(t *testing.T) {
	env := newTestEnv(t)
	env.store(t, donorRecord)
	env.api.respond("POST /propositionsdon/", 422, `{"detail":"date in the past"}`)

	rr := env.post("/offers", url.Values{"available_at": {"2020-01-01T10:00"}, "location": {"Lyon"}}, "offer-form.1")

	assert.Contains(t, rr.Body.String(), "error=date in the past|")
	assert.Contains(t, rr.Body.String(), "Location:Lyon")
}

func TestRequestPostQuantityRejected(t *testing.T) {
	for _, qty := range []string{"0", "-5", "abc"} {
		t.Run(qty, func(t *testing.T) {
			env := newTestEnv(t)
			env.store(t, donorRecord)

			rr := env.post("/requests", url.Values{
				"blood_group_id": {"2"},
				"quantity_ml":    {qty},
				"description":    {"surgery"},
			}, "request-form.1")

			assert.Contains(t, rr.Body.String(), "error=The requested quantity must be a positive number.|")
			assert.Zero(t, env.api.count("POST /demandesdon/"))
		})
	}
}

func TestRequestPostSuccess(t *testing.T) {
	env := newTestEnv(t)
	env.store(t, donorRecord)

	rr := env.post("/requests", url.Values{
		"blood_group_id": {"2"},
		"quantity_ml":    {"450"},
		"location":       {"CHU Nantes"},
		"description":    {"surgery"},
	}, "request-form.1")

	assert.Contains(t, rr.Body.String(), "success=Your donation request has been submitted successfully!|")

	sent := env.api.body(t, "POST /demandesdon/")
	assert.Equal(t, float64(7), sent["id_utilisateur"])
	assert.Equal(t, float64(2), sent["id_groupe_sanguin_requis"])
	assert.Equal(t, float64(450), sent["quantite_demandee_ml"])
	assert.Equal(t, "moyenne", sent["urgence"])
	assert.Equal(t, "CHU Nantes", sent["localisation_demande"])
}
