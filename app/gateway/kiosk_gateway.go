package gateway

import (
	"context"
	"log/slog"

	"freshmart-client/app/domain"
	"freshmart-client/app/driver/rest"
	"freshmart-client/app/port"
)

// KioskGateway implements port.KioskGateway over the REST client.
type KioskGateway struct {
	client *rest.Client
	logger *slog.Logger
}

// NewKioskGateway creates a new kiosk gateway.
func NewKioskGateway(client *rest.Client, logger *slog.Logger) port.KioskGateway {
	return &KioskGateway{client: client, logger: logger}
}

// RequestOTP asks the server to send a passcode to the loyalty-card holder.
func (g *KioskGateway) RequestOTP(ctx context.Context, loyaltyCard string) (*domain.OTPChallenge, error) {
	resp, err := g.client.KioskRequestOTP(ctx, loyaltyCard)
	if err != nil {
		return nil, mapRestError(err)
	}
	return &domain.OTPChallenge{
		CustomerName:     resp.CustomerName,
		Message:          resp.Message,
		ExpiresInMinutes: resp.ExpiresInMinutes,
	}, nil
}

// VerifyOTP exchanges the passcode for a kiosk session.
func (g *KioskGateway) VerifyOTP(ctx context.Context, loyaltyCard, code string) (*domain.KioskSession, error) {
	resp, err := g.client.KioskVerifyOTP(ctx, loyaltyCard, code)
	if err != nil {
		return nil, mapRestError(err)
	}
	if resp.SessionID == "" || resp.Customer == nil {
		return nil, domain.NewAPIError(domain.KindInternal, "verify-otp returned no session")
	}
	return &domain.KioskSession{
		SessionID: resp.SessionID,
		Customer: domain.CustomerSummary{
			ID:          resp.Customer.ID,
			Username:    resp.Customer.Username,
			FirstName:   resp.Customer.FirstName,
			Email:       resp.Customer.Email,
			LoyaltyCard: resp.Customer.LoyaltyCard,
		},
	}, nil
}

// Logout invalidates the kiosk session server-side.
func (g *KioskGateway) Logout(ctx context.Context, sessionID string) error {
	return mapRestError(g.client.KioskLogout(ctx, sessionID))
}
