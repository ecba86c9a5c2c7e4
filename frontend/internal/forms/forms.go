// Package forms turns submitted form values into API payloads. Validation
// runs before any network call.
package forms

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dondesang/dondesang/shared/api"
	"github.com/dondesang/dondesang/shared/domain"
	internal_errors "github.com/dondesang/dondesang/shared/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var (
	ErrLoginIncomplete   = withStatus(http.StatusBadRequest, "Please enter your email and password.")
	ErrNotLoggedIn       = withStatus(http.StatusUnauthorized, "Unable to identify the user. Please log in again.")
	ErrOfferIncomplete   = withStatus(http.StatusBadRequest, "Please fill in all required fields (date/time and location).")
	ErrInvalidDate       = withStatus(http.StatusBadRequest, "Invalid availability date.")
	ErrRequestIncomplete = withStatus(http.StatusBadRequest, "Please fill in all required fields (blood group, quantity and description).")
	ErrInvalidQuantity   = withStatus(http.StatusBadRequest, "The requested quantity must be a positive number.")
	ErrInvalidBloodGroup = withStatus(http.StatusBadRequest, "Invalid blood group.")
	ErrInvalidUrgency    = withStatus(http.StatusBadRequest, "Invalid urgency level.")
	ErrSelectionMissing  = withStatus(http.StatusBadRequest, "Please select an offer and a request.")
	ErrNotAdmin          = withStatus(http.StatusForbidden, "Only administrators can create assignments.")
)

func withStatus(code int, msg string) error {
	return &internal_errors.ErrorWithStatusCode{Message: msg, StatusCode: code}
}

// DefaultAdminNote is attached to every assignment created from the panel.
const DefaultAdminNote = "Created via the admin dashboard."

// DateTimeLocal is the layout of <input type="datetime-local"> values.
const DateTimeLocal = "2006-01-02T15:04"

// isoMillis matches the timestamps browsers produce with toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

func value(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

type Login struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

func ParseLogin(r *http.Request) Login {
	// Passwords are sent as typed.
	return Login{Email: value(r, "email"), Password: r.FormValue("password")}
}

func (f Login) Validate() error {
	if err := validate.Struct(f); err != nil {
		return ErrLoginIncomplete
	}
	return nil
}

type Offer struct {
	AvailableAt string `validate:"required"`
	Location    string `validate:"required"`
	Notes       string
}

func ParseOffer(r *http.Request) Offer {
	return Offer{
		AvailableAt: value(r, "available_at"),
		Location:    value(r, "location"),
		Notes:       value(r, "notes"),
	}
}

// Build validates the offer and produces the payload for user. loc is the
// zone the availability was typed in.
func (f Offer) Build(user *domain.Session, loc *time.Location) (api.CreateOfferRequest, error) {
	if user == nil {
		return api.CreateOfferRequest{}, ErrNotLoggedIn
	}
	if err := validate.Struct(f); err != nil {
		return api.CreateOfferRequest{}, ErrOfferIncomplete
	}
	at, err := time.ParseInLocation(DateTimeLocal, f.AvailableAt, loc)
	if err != nil {
		return api.CreateOfferRequest{}, ErrInvalidDate
	}
	return api.CreateOfferRequest{
		UserId:      user.Id,
		AvailableAt: at.UTC().Format(isoMillis),
		Location:    f.Location,
		Notes:       f.Notes,
		Status:      domain.StatusPending,
	}, nil
}

type Request struct {
	BloodGroupId string `validate:"required"`
	QuantityMl   string `validate:"required"`
	Location     string
	Urgency      string
	Description  string `validate:"required"`
}

func ParseRequest(r *http.Request) Request {
	return Request{
		BloodGroupId: value(r, "blood_group_id"),
		QuantityMl:   value(r, "quantity_ml"),
		Location:     value(r, "location"),
		Urgency:      value(r, "urgency"),
		Description:  value(r, "description"),
	}
}

// UrgencyOrDefault is the urgency shown preselected in the form.
func (f Request) UrgencyOrDefault() domain.Urgency {
	if f.Urgency == "" {
		return domain.UrgencyMedium
	}
	return domain.Urgency(f.Urgency)
}

func (f Request) Build(user *domain.Session) (api.CreateRequestRequest, error) {
	if user == nil {
		return api.CreateRequestRequest{}, ErrNotLoggedIn
	}
	if err := validate.Struct(f); err != nil {
		return api.CreateRequestRequest{}, ErrRequestIncomplete
	}
	qty, err := strconv.Atoi(f.QuantityMl)
	if err != nil || qty <= 0 {
		return api.CreateRequestRequest{}, ErrInvalidQuantity
	}
	group, err := strconv.ParseInt(f.BloodGroupId, 10, 64)
	if err != nil {
		return api.CreateRequestRequest{}, ErrInvalidBloodGroup
	}
	urgency := f.UrgencyOrDefault()
	if !urgency.Valid() {
		return api.CreateRequestRequest{}, ErrInvalidUrgency
	}
	return api.CreateRequestRequest{
		UserId:               user.Id,
		RequiredBloodGroupId: group,
		QuantityMl:           qty,
		Location:             f.Location,
		Urgency:              urgency,
		Description:          f.Description,
	}, nil
}

type Assignment struct {
	OfferId   string `validate:"required,number"`
	RequestId string `validate:"required,number"`
}

func ParseAssignment(r *http.Request) Assignment {
	return Assignment{OfferId: value(r, "offer_id"), RequestId: value(r, "request_id")}
}

func (f Assignment) Build(admin *domain.Session) (api.CreateAssignmentRequest, error) {
	if err := validate.Struct(f); err != nil {
		return api.CreateAssignmentRequest{}, ErrSelectionMissing
	}
	if admin == nil || !admin.IsAdmin() {
		return api.CreateAssignmentRequest{}, ErrNotAdmin
	}
	offerId, err := strconv.ParseInt(f.OfferId, 10, 64)
	if err != nil {
		return api.CreateAssignmentRequest{}, ErrSelectionMissing
	}
	requestId, err := strconv.ParseInt(f.RequestId, 10, 64)
	if err != nil {
		return api.CreateAssignmentRequest{}, ErrSelectionMissing
	}
	return api.CreateAssignmentRequest{
		OfferId:    offerId,
		RequestId:  requestId,
		AdminId:    admin.Id,
		Status:     domain.AssignmentInProgress,
		AdminNotes: DefaultAdminNote,
	}, nil
}
