package domain

// Session is the identity of the logged-in user as kept by the client.
// It is only ever replaced as a whole.
type Session struct {
	Id    UserId `json:"id"`
	Email Email  `json:"email"`
	Role  Role   `json:"role"`
}

// Complete reports whether every identity field is populated.
// A zero id counts as missing.
func (s Session) Complete() bool {
	return s.Id != 0 && s.Email != "" && s.Role != ""
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
