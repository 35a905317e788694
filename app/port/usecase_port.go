package port

//go:generate mockgen -source=usecase_port.go -destination=../mocks/mock_usecase_port.go -package=mocks

import (
	"context"

	"freshmart-client/app/domain"
)

// SessionUsecase owns the credential lifecycle and the session state
// machine. Hydrate and Logout never fail outward; all failures degrade to an
// anonymous session.
type SessionUsecase interface {
	Hydrate(ctx context.Context)
	Login(ctx context.Context, req domain.LoginRequest) error
	Register(ctx context.Context, req domain.RegisterRequest) error
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error

	Status() domain.SessionStatus
	Profile() *domain.UserProfile
	Snapshot() domain.Session

	// OnReset registers a callback invoked whenever the session drops to
	// anonymous, so dependent surfaces drop authenticated-only state.
	OnReset(fn func())
	// HandleReauth is invoked by the authorized transport after a terminal
	// refresh failure; the vault is already cleared at that point.
	HandleReauth()
}

// CartUsecase is the authoritative server cart bound to the authenticated
// session. Every mutation is followed by a full refetch; the cached cart is
// always a mirror of the last successful fetch.
type CartUsecase interface {
	Fetch(ctx context.Context) (*domain.Cart, error)
	AddItem(ctx context.Context, productID int64, quantity int) error
	UpdateQuantity(ctx context.Context, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, itemID int64) error
	Clear(ctx context.Context) error
	Checkout(ctx context.Context, paymentMethod, shippingAddress string) (*domain.OrderConfirmation, error)
	Current() *domain.Cart
}

// KioskUsecase maintains the locally persisted in-store basket and the
// loyalty-card session, and merges the basket into the server cart at
// checkout.
type KioskUsecase interface {
	Resume(ctx context.Context) error
	RequestOTP(ctx context.Context, loyaltyCard string) (*domain.OTPChallenge, error)
	VerifyOTP(ctx context.Context, loyaltyCard, code string) (*domain.KioskSession, error)
	Logout(ctx context.Context)

	Session() *domain.KioskSession
	Cart() *domain.LocalCart
	AddOrIncrement(ctx context.Context, product domain.ProductSnapshot) error
	UpdateQuantity(ctx context.Context, itemID string, delta int) error
	RemoveItem(ctx context.Context, itemID string) error
	Checkout(ctx context.Context, paymentMethod string) (*domain.OrderConfirmation, error)
}
