package port

//go:generate mockgen -source=gateway_port.go -destination=../mocks/mock_gateway_port.go -package=mocks

import (
	"context"

	"freshmart-client/app/domain"
)

// AuthGateway talks to the accounts endpoints of the storefront backend and
// translates responses into domain types. All errors it returns are
// normalized domain errors.
type AuthGateway interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error)
	Logout(ctx context.Context, refreshToken string) error
	FetchProfile(ctx context.Context) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.UserProfile, error)
}

// CartGateway talks to the cart and checkout endpoints. The kiosk variants
// carry the kiosk session identifier as a routing header instead of a bearer
// token.
type CartGateway interface {
	FetchCart(ctx context.Context) (*domain.Cart, error)
	AddItem(ctx context.Context, productID int64, quantity int) error
	UpdateItem(ctx context.Context, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, itemID int64) error
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context, req domain.CheckoutRequest) (*domain.OrderConfirmation, error)

	AddItemKiosk(ctx context.Context, sessionID string, productID int64, quantity int) error
	CheckoutKiosk(ctx context.Context, sessionID string, req domain.CheckoutRequest) (*domain.OrderConfirmation, error)
}

// KioskGateway talks to the kiosk identity endpoints.
type KioskGateway interface {
	RequestOTP(ctx context.Context, loyaltyCard string) (*domain.OTPChallenge, error)
	VerifyOTP(ctx context.Context, loyaltyCard, code string) (*domain.KioskSession, error)
	Logout(ctx context.Context, sessionID string) error
}
