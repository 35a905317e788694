// Package gateway translates between the REST driver's payloads and domain
// types, and normalizes every driver error before it reaches a use case.
package gateway

import (
	"context"
	"log/slog"

	"freshmart-client/app/domain"
	"freshmart-client/app/driver/rest"
	"freshmart-client/app/port"
)

// AuthGateway implements port.AuthGateway over the REST client.
type AuthGateway struct {
	client *rest.Client
	logger *slog.Logger
}

// NewAuthGateway creates a new auth gateway.
func NewAuthGateway(client *rest.Client, logger *slog.Logger) port.AuthGateway {
	return &AuthGateway{client: client, logger: logger}
}

// Login exchanges credentials for a token pair.
func (g *AuthGateway) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error) {
	resp, err := g.client.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, mapRestError(err)
	}
	return &domain.AuthResult{Credentials: g.credentialsFrom(resp.Tokens)}, nil
}

// Register creates an account; the response carries the profile directly, so
// no follow-up profile fetch is needed.
func (g *AuthGateway) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error) {
	resp, err := g.client.Register(ctx, rest.RegisterPayload{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return nil, mapRestError(err)
	}

	result := &domain.AuthResult{Credentials: g.credentialsFrom(resp.Tokens)}
	if resp.User != nil {
		result.Profile = profileFrom(resp.User)
	}
	return result, nil
}

// Logout asks the server to invalidate the refresh token.
func (g *AuthGateway) Logout(ctx context.Context, refreshToken string) error {
	return mapRestError(g.client.Logout(ctx, refreshToken))
}

// FetchProfile loads the current user's profile.
func (g *AuthGateway) FetchProfile(ctx context.Context) (*domain.UserProfile, error) {
	payload, err := g.client.Profile(ctx)
	if err != nil {
		return nil, mapRestError(err)
	}
	return profileFrom(payload), nil
}

// UpdateProfile updates editable profile fields.
func (g *AuthGateway) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.UserProfile, error) {
	payload, err := g.client.UpdateProfile(ctx, rest.ProfileUpdatePayload{
		Email:     update.Email,
		FirstName: update.FirstName,
		LastName:  update.LastName,
		Phone:     update.Phone,
	})
	if err != nil {
		return nil, mapRestError(err)
	}
	if payload == nil {
		return nil, domain.NewAPIError(domain.KindInternal, "profile update returned no profile")
	}
	return profileFrom(payload), nil
}

// credentialsFrom builds domain credentials from a token pair, decoding the
// access token's expiry offline.
func (g *AuthGateway) credentialsFrom(tokens rest.TokenPair) domain.Credentials {
	creds := domain.Credentials{
		AccessToken:  tokens.Access,
		RefreshToken: tokens.Refresh,
	}
	if exp, err := domain.DecodeExpiry(tokens.Access); err == nil {
		creds.AccessExpiresAt = exp
	} else {
		g.logger.Warn("issued access token has no readable expiry", "error", err)
	}
	return creds
}

func profileFrom(p *rest.ProfilePayload) *domain.UserProfile {
	return &domain.UserProfile{
		ID:          p.ID,
		Username:    p.Username,
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Phone:       p.Phone,
		LoyaltyCard: p.LoyaltyCard,
		IsStaff:     p.IsStaff,
	}
}
