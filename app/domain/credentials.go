package domain

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credentials is the access/refresh token pair for a web session. It is owned
// by the session use case and the authorized transport's refresh procedure;
// no other component writes it.
type Credentials struct {
	AccessToken     string    `json:"access_token,omitempty"`
	RefreshToken    string    `json:"refresh_token,omitempty"`
	AccessExpiresAt time.Time `json:"access_expires_at,omitempty"`
}

// IsZero returns true if no tokens are held.
func (c Credentials) IsZero() bool {
	return c.AccessToken == "" && c.RefreshToken == ""
}

// Expired reports whether the access token should be treated as expired.
// The token is considered expired skew before its actual expiry so that a
// request issued just under the wire does not arrive with a dead token.
func (c Credentials) Expired(skew time.Duration) bool {
	if c.AccessToken == "" {
		return true
	}
	if c.AccessExpiresAt.IsZero() {
		return false
	}
	return !time.Now().Before(c.AccessExpiresAt.Add(-skew))
}

// DecodeExpiry extracts the expiry claim from an access token without
// verifying the signature. The client never holds the signing key; expiry is
// the only claim it needs and the server remains the authority on validity.
func DecodeExpiry(accessToken string) (time.Time, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := jwt.MapClaims{}

	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}, fmt.Errorf("decode access token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("read expiry claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrMalformedToken
	}

	return exp.Time, nil
}
