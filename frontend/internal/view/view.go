// Package view decides which screen is shown. It keeps one current view and
// reacts to changes of the authentication status.
package view

type View string

const (
	Login           View = "login"
	Register        View = "register"
	Dashboard       View = "dashboard"
	OfferForm       View = "offer-form"
	RequestForm     View = "request-form"
	AssignmentAdmin View = "assignment-admin"
	StatsAdmin      View = "stats-admin"
)

var all = []View{Login, Register, Dashboard, OfferForm, RequestForm, AssignmentAdmin, StatsAdmin}

// Parse maps a view name to a View.
func Parse(s string) (View, bool) {
	for _, v := range all {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

// Title is the heading shown in the breadcrumb.
func (v View) Title() string {
	switch v {
	case Login:
		return "Log in"
	case Register:
		return "Create an account"
	case Dashboard:
		return "Dashboard"
	case OfferForm:
		return "Offer a donation"
	case RequestForm:
		return "Request a donation"
	case AssignmentAdmin:
		return "Assign donations"
	case StatsAdmin:
		return "Statistics"
	default:
		return string(v)
	}
}

// AdminOnly reports whether v is an administration panel.
func (v View) AdminOnly() bool {
	return v == AssignmentAdmin || v == StatsAdmin
}

// Router is the view state machine. It is a value: every transition returns
// a new Router.
type Router struct {
	current       View
	authenticated bool
}

// New starts on the login view with the user logged out.
func New() Router {
	return Router{current: Login}
}

func (r Router) Current() View { return r.current }

// Authenticated is the last authentication status the router observed.
func (r Router) Authenticated() bool { return r.authenticated }

// Navigate moves to v. Any view may be reached from any other.
func (r Router) Navigate(v View) Router {
	r.current = v
	return r
}

// Observe feeds the current authentication status. Only a change triggers a
// transition: logging in always lands on the dashboard, logging out lands on
// the login view unless the user is registering.
func (r Router) Observe(authenticated bool) Router {
	if authenticated == r.authenticated {
		return r
	}
	r.authenticated = authenticated
	switch {
	case authenticated:
		r.current = Dashboard
	case r.current != Register:
		r.current = Login
	}
	return r
}
