package api

// The login endpoint takes OAuth2 password-form fields, not JSON.
const (
	LoginUsernameField = "username"
	LoginPasswordField = "password"
)

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
