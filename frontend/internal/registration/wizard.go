// Package registration implements the three-step sign-up wizard. Only the
// first step is validated when moving forward; the password rules are
// checked again on submit.
package registration

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dondesang/dondesang/shared/api"
	"github.com/dondesang/dondesang/shared/domain"
	internal_errors "github.com/dondesang/dondesang/shared/errors"
	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

type Step int

const (
	StepPersonal Step = iota + 1
	StepContact
	StepFinalize
)

var Steps = []Step{StepPersonal, StepContact, StepFinalize}

// ParseStep reads a step number. Anything unknown restarts the wizard.
func ParseStep(s string) Step {
	n, err := strconv.Atoi(s)
	if err != nil || n < int(StepPersonal) || n > int(StepFinalize) {
		return StepPersonal
	}
	return Step(n)
}

func (s Step) Label() string {
	switch s {
	case StepPersonal:
		return "Personal information"
	case StepContact:
		return "Contact details"
	case StepFinalize:
		return "Finalize"
	}
	return ""
}

var (
	ErrStepIncomplete   = badRequest("Please fill in all required fields of step 1 correctly.")
	ErrPasswordMismatch = badRequest("Passwords do not match.")
	ErrPasswordTooShort = badRequest("Password must be at least 6 characters long.")
	ErrInvalidBirthDate = badRequest("Invalid birth date.")
	ErrInvalidGroup     = badRequest("Invalid blood group.")
	ErrNotFinalStep     = badRequest("Please complete every step before submitting.")
)

func badRequest(msg string) error {
	return &internal_errors.ErrorWithStatusCode{Message: msg, StatusCode: http.StatusBadRequest}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Form holds every field of the wizard. Fields of steps the user is not on
// travel as hidden inputs.
type Form struct {
	LastName        string `validate:"required"`
	FirstName       string `validate:"required"`
	Email           string `validate:"required,contains=@,contains=."`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`

	Address string
	City    string
	Phone   string

	BirthDate    string
	Gender       string
	BloodGroupId string
}

func ParseForm(r *http.Request) Form {
	v := func(key string) string { return strings.TrimSpace(r.FormValue(key)) }
	return Form{
		LastName:        v("last_name"),
		FirstName:       v("first_name"),
		Email:           v("email"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
		Address:         v("address"),
		City:            v("city"),
		Phone:           v("phone"),
		BirthDate:       v("birth_date"),
		Gender:          v("gender"),
		BloodGroupId:    v("blood_group_id"),
	}
}

// Wizard is a value; transitions return the next wizard.
type Wizard struct {
	step Step
	Form Form
}

func New() Wizard {
	return Wizard{step: StepPersonal}
}

// Restore rebuilds a wizard from submitted values.
func Restore(step Step, form Form) Wizard {
	return Wizard{step: step, Form: form}
}

func (w Wizard) Step() Step { return w.step }

// Next advances one step. Leaving the first step requires its fields to be
// valid; on error the wizard stays where it is.
func (w Wizard) Next() (Wizard, error) {
	if w.step == StepPersonal {
		if err := validate.Struct(w.Form); err != nil {
			return w, ErrStepIncomplete
		}
	}
	if w.step < StepFinalize {
		w.step++
	}
	return w, nil
}

// Prev goes back one step without validation.
func (w Wizard) Prev() Wizard {
	if w.step > StepPersonal {
		w.step--
	}
	return w
}

// Submission builds the account creation payload.
func (w Wizard) Submission() (api.CreateUserRequest, error) {
	f := w.Form
	if w.step != StepFinalize {
		return api.CreateUserRequest{}, ErrNotFinalStep
	}
	if f.Password != f.ConfirmPassword {
		return api.CreateUserRequest{}, ErrPasswordMismatch
	}
	if len(f.Password) < 6 {
		return api.CreateUserRequest{}, ErrPasswordTooShort
	}

	req := api.CreateUserRequest{
		LastName:  f.LastName,
		FirstName: f.FirstName,
		Email:     f.Email,
		Password:  f.Password,
		Role:      domain.RoleNormal,
		Address:   f.Address,
		City:      f.City,
		Phone:     normalizePhone(f.Phone),
		Gender:    f.Gender,
	}
	if f.BirthDate != "" {
		if _, err := time.Parse(domain.DateOnly, f.BirthDate); err != nil {
			return api.CreateUserRequest{}, ErrInvalidBirthDate
		}
		date := f.BirthDate
		req.BirthDate = &date
	}
	if f.BloodGroupId != "" {
		id, err := strconv.ParseInt(f.BloodGroupId, 10, 64)
		if err != nil {
			return api.CreateUserRequest{}, ErrInvalidGroup
		}
		req.BloodGroupId = &id
	}
	return req, nil
}

// defaultPhoneRegion resolves numbers typed without a country code.
const defaultPhoneRegion = "FR"

// normalizePhone rewrites a valid number in E.164. Anything else is sent as
// typed: the phone is optional and never blocks registration.
func normalizePhone(raw string) string {
	if raw == "" {
		return ""
	}
	number, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return raw
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}
