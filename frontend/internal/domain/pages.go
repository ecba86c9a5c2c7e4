package frontend_domain

import (
	"html/template"

	"github.com/dondesang/dondesang/frontend/internal/forms"
	"github.com/dondesang/dondesang/frontend/internal/registration"
	"github.com/dondesang/dondesang/shared/domain"
)

type RegisterPageData struct {
	Wizard      registration.Wizard
	Steps       []registration.Step
	BloodGroups []domain.BloodGroup
	Genders     []domain.Gender
}

type DashboardPageData struct {
	AccessDenied bool
}

type OfferPageData struct {
	Form forms.Offer
}

type RequestPageData struct {
	Form        forms.Request
	BloodGroups []domain.BloodGroup
	Urgencies   []domain.Urgency
}

type AssignmentPageData struct {
	AccessDenied bool
	Offers       []OfferOption
	Requests     []RequestOption
	History      []AssignmentRow
	Form         forms.Assignment
}

type StatsPageData struct {
	AccessDenied bool
	Loaded       bool
	Stats        domain.Stats
}

// OfferOption is a pending offer in the assignment picker.
type OfferOption struct {
	Id    domain.OfferId
	Label string
	Notes template.HTML
}

// RequestOption is a pending request in the assignment picker.
type RequestOption struct {
	Id          domain.RequestId
	Label       string
	Urgency     domain.Urgency
	Description template.HTML
}

type AssignmentRow struct {
	domain.Assignment
	Notes template.HTML
}
