package rest

import (
	"context"
	"net/http"
)

const (
	loginPath    = "/accounts/login/"
	registerPath = "/accounts/register/"
	logoutPath   = "/accounts/logout/"
	profilePath  = "/accounts/profile/"
)

// TokenPair is the credential pair issued by login, register and refresh.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// ProfilePayload is the customer profile as the accounts API serializes it.
type ProfilePayload struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	LoyaltyCard string `json:"loyalty_card"`
	IsStaff     bool   `json:"is_staff"`
}

// AuthResponse is the login/register envelope.
type AuthResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Tokens  TokenPair       `json:"tokens"`
	User    *ProfilePayload `json:"user"`
}

// RegisterPayload is the registration request body.
type RegisterPayload struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ProfileUpdatePayload is the profile update request body.
type ProfileUpdatePayload struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Login exchanges username/password for a token pair.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	body := map[string]string{"username": username, "password": password}
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, loginPath, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns tokens plus the created profile.
func (c *Client) Register(ctx context.Context, payload RegisterPayload) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, registerPath, nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout asks the server to blacklist the refresh token.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refresh": refreshToken}
	return c.do(ctx, http.MethodPost, logoutPath, nil, body, nil)
}

// Profile fetches the current user's profile.
func (c *Client) Profile(ctx context.Context) (*ProfilePayload, error) {
	var out ProfilePayload
	if err := c.do(ctx, http.MethodGet, profilePath, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile updates editable profile fields and returns the new profile.
func (c *Client) UpdateProfile(ctx context.Context, payload ProfileUpdatePayload) (*ProfilePayload, error) {
	var out struct {
		Success bool            `json:"success"`
		User    *ProfilePayload `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, profilePath, nil, payload, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}
