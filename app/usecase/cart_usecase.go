package usecase

import (
	"context"
	"log/slog"
	"sync"

	"freshmart-client/app/domain"
	"freshmart-client/app/port"
)

// CartUseCase is the authoritative server cart bound to the authenticated
// session. No optimistic mutation is applied: every mutation posts to the
// server and then refetches, so the cached cart is always a mirror of the
// last successful fetch.
type CartUseCase struct {
	mu   sync.RWMutex
	cart *domain.Cart

	session port.SessionUsecase
	cartGW  port.CartGateway
	logger  *slog.Logger
}

// NewCartUseCase creates a cart use case and registers it to drop its cache
// whenever the session resets.
func NewCartUseCase(session port.SessionUsecase, cartGW port.CartGateway, logger *slog.Logger) *CartUseCase {
	uc := &CartUseCase{
		session: session,
		cartGW:  cartGW,
		logger:  logger,
	}
	session.OnReset(uc.reset)
	return uc
}

// Fetch loads the authoritative cart. A 404 means the cart was never
// created, which is an empty cart, not an error.
func (uc *CartUseCase) Fetch(ctx context.Context) (*domain.Cart, error) {
	if err := uc.requireAuth(); err != nil {
		return nil, err
	}

	cart, err := uc.cartGW.FetchCart(ctx)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			cart = domain.EmptyCart()
		} else {
			return nil, err
		}
	}

	uc.mu.Lock()
	uc.cart = cart
	uc.mu.Unlock()
	return cart.Clone(), nil
}

// AddItem posts the mutation and refetches. A failed mutation leaves the
// cache at its last known-good state.
func (uc *CartUseCase) AddItem(ctx context.Context, productID int64, quantity int) error {
	if err := uc.requireAuth(); err != nil {
		return err
	}
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	if err := uc.cartGW.AddItem(ctx, productID, quantity); err != nil {
		return err
	}
	return uc.resync(ctx)
}

// UpdateQuantity replaces an item's quantity and refetches. A quantity below
// 1 is rejected; removal is a distinct operation.
func (uc *CartUseCase) UpdateQuantity(ctx context.Context, itemID int64, quantity int) error {
	if err := uc.requireAuth(); err != nil {
		return err
	}
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	if err := uc.cartGW.UpdateItem(ctx, itemID, quantity); err != nil {
		return err
	}
	return uc.resync(ctx)
}

// RemoveItem deletes an item and refetches.
func (uc *CartUseCase) RemoveItem(ctx context.Context, itemID int64) error {
	if err := uc.requireAuth(); err != nil {
		return err
	}

	if err := uc.cartGW.RemoveItem(ctx, itemID); err != nil {
		return err
	}
	return uc.resync(ctx)
}

// Clear empties the server cart. A 404 means there was never a cart, which
// is already the desired state.
func (uc *CartUseCase) Clear(ctx context.Context) error {
	if err := uc.requireAuth(); err != nil {
		return err
	}

	if err := uc.cartGW.ClearCart(ctx); err != nil && domain.KindOf(err) != domain.KindNotFound {
		return err
	}

	uc.mu.Lock()
	uc.cart = domain.EmptyCart()
	uc.mu.Unlock()
	return nil
}

// Checkout turns the server cart into a purchase. The server clears the cart
// on success, so the cache is reset to empty.
func (uc *CartUseCase) Checkout(ctx context.Context, paymentMethod, shippingAddress string) (*domain.OrderConfirmation, error) {
	if err := uc.requireAuth(); err != nil {
		return nil, err
	}

	confirmation, err := uc.cartGW.Checkout(ctx, domain.CheckoutRequest{
		PaymentMethod:   paymentMethod,
		ShippingAddress: shippingAddress,
	})
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.cart = domain.EmptyCart()
	uc.mu.Unlock()

	uc.logger.Info("checkout completed", "purchase_id", confirmation.PurchaseID)
	return confirmation, nil
}

// Current returns a copy of the last successfully fetched cart.
func (uc *CartUseCase) Current() *domain.Cart {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.cart.Clone()
}

func (uc *CartUseCase) requireAuth() error {
	if uc.session.Status() != domain.StatusAuthenticated {
		return domain.ErrLoginRequired
	}
	return nil
}

// resync refetches after a successful mutation. The mutation already
// landed; a failed refetch is surfaced but the cache keeps its last
// known-good state.
func (uc *CartUseCase) resync(ctx context.Context) error {
	_, err := uc.Fetch(ctx)
	return err
}

func (uc *CartUseCase) reset() {
	uc.mu.Lock()
	uc.cart = nil
	uc.mu.Unlock()
}
