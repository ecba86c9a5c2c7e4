package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/dondesang/dondesang/shared/api"
	"github.com/dondesang/dondesang/shared/domain"
	"github.com/dondesang/dondesang/shared/utils"
)

// Login exchanges credentials for an access token.
func (c *APIClient) Login(ctx context.Context, email, password string) (api.TokenResponse, error) {
	form := url.Values{}
	form.Set(api.LoginUsernameField, email)
	form.Set(api.LoginPasswordField, password)

	var token api.TokenResponse
	resp, err := c.do(ctx, http.MethodPost, "/token", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return token, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return token, responseError(resp, "Login failed. Please check your credentials.")
	}
	if err := utils.Decode(resp.Body, &token); err != nil {
		return token, err
	}
	return token, nil
}

// CreateUser registers a new account.
func (c *APIClient) CreateUser(ctx context.Context, req api.CreateUserRequest) (domain.User, error) {
	var user domain.User
	err := c.postJSON(ctx, "/utilisateurs/", req, &user, "Registration failed.")
	return user, err
}

func (c *APIClient) GetBloodGroups(ctx context.Context) ([]domain.BloodGroup, error) {
	var groups []domain.BloodGroup
	err := c.getJSON(ctx, "/groupesanguin/", &groups, "Failed to load blood groups.")
	return groups, err
}
