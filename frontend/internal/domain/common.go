package frontend_domain

import (
	"github.com/dondesang/dondesang/frontend/internal/view"
	"github.com/dondesang/dondesang/shared/domain"
)

// CommonTemplateData holds fields that are common to all page templates.
// Available in templates as .Common via the TemplateData wrapper.
type CommonTemplateData struct {
	Error            string
	Success          string
	User             *domain.Session
	IsAdmin          bool
	CSRFToken        string
	EmailPlaceholder string // pre-filled login email, from cookie
	CurrentView      view.View
	Nav              []NavItem
	Validation       ValidationData
}

// DisplayName is the local part of the user's email.
func (c CommonTemplateData) DisplayName() string {
	if c.User == nil {
		return ""
	}
	return domain.EmailLocalPart(c.User.Email)
}

type NavItem struct {
	View   view.View
	Title  string
	Active bool
}

// ValidationData holds the limits templates mirror in input attributes.
type ValidationData struct {
	PasswordMinLen int
}
