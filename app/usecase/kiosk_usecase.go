package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"freshmart-client/app/domain"
	"freshmart-client/app/port"
	"freshmart-client/app/utils/validator"
)

// otpRequestInterval throttles passcode requests from a single terminal; the
// server rate-limits too, but a misbehaving touch screen should not get that
// far.
const otpRequestInterval = 30 * time.Second

// KioskUseCase maintains the in-store basket and the loyalty-card session.
// Basket mutations are pure local-state operations persisted after every
// change, so a terminal restart does not lose the in-progress basket. At
// checkout the basket is merged into the server cart item by item.
type KioskUseCase struct {
	mu      sync.Mutex
	session *domain.KioskSession
	cart    *domain.LocalCart

	store      port.StateStore
	kioskGW    port.KioskGateway
	cartGW     port.CartGateway
	otpLimiter *rate.Limiter
	validator  *validator.Validator
	logger     *slog.Logger
}

// NewKioskUseCase creates a kiosk use case with no active session.
func NewKioskUseCase(store port.StateStore, kioskGW port.KioskGateway, cartGW port.CartGateway, logger *slog.Logger) *KioskUseCase {
	return &KioskUseCase{
		store:      store,
		kioskGW:    kioskGW,
		cartGW:     cartGW,
		otpLimiter: rate.NewLimiter(rate.Every(otpRequestInterval), 2),
		validator:  validator.New(),
		logger:     logger,
	}
}

// Resume restores a persisted kiosk session and basket after a terminal
// restart. Missing state is not an error; the terminal just starts at the
// login screen.
func (uc *KioskUseCase) Resume(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	data, err := uc.store.Get(ctx, port.StateKeyKioskSession)
	if errors.Is(err, port.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return domain.NewAPIError(domain.KindInternal, "failed to load kiosk session").WithCause(err)
	}

	var session domain.KioskSession
	if err := json.Unmarshal(data, &session); err != nil {
		uc.logger.Warn("discarding unreadable kiosk session state", "error", err)
		_ = uc.store.Delete(ctx, port.StateKeyKioskSession)
		return nil
	}
	uc.session = &session

	cart := domain.NewLocalCart()
	if data, err := uc.store.Get(ctx, port.StateKeyKioskCart); err == nil {
		if err := json.Unmarshal(data, cart); err != nil {
			uc.logger.Warn("discarding unreadable kiosk cart state", "error", err)
			cart = domain.NewLocalCart()
		}
	}
	uc.cart = cart

	uc.logger.Info("kiosk session resumed",
		"customer", session.Customer.Username,
		"items", len(uc.cart.Items))
	return nil
}

// RequestOTP asks the server to send a passcode to the loyalty-card holder.
func (uc *KioskUseCase) RequestOTP(ctx context.Context, loyaltyCard string) (*domain.OTPChallenge, error) {
	loyaltyCard = strings.TrimSpace(loyaltyCard)
	if loyaltyCard == "" {
		return nil, domain.NewAPIError(domain.KindValidation, "loyalty card number is required")
	}
	if !uc.otpLimiter.Allow() {
		// Throttling is not an input error; callers distinguish it from
		// validation rejections to show retry-later copy.
		return nil, domain.ErrOTPThrottled
	}

	return uc.kioskGW.RequestOTP(ctx, loyaltyCard)
}

// VerifyOTP exchanges the passcode for a kiosk session, persists it, and
// starts a fresh basket.
func (uc *KioskUseCase) VerifyOTP(ctx context.Context, loyaltyCard, code string) (*domain.KioskSession, error) {
	loyaltyCard = strings.TrimSpace(loyaltyCard)
	code = strings.TrimSpace(code)
	if loyaltyCard == "" {
		return nil, domain.NewAPIError(domain.KindValidation, "loyalty card number is required")
	}
	if err := uc.validator.ValidateVar(code, "required,otp_code"); err != nil {
		return nil, domain.NewAPIError(domain.KindValidation, "passcode must be 6 digits")
	}

	session, err := uc.kioskGW.VerifyOTP(ctx, loyaltyCard, code)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.session = session
	uc.cart = domain.NewLocalCart()
	uc.persistSession(ctx)
	uc.persistCart(ctx)

	uc.logger.Info("kiosk session started", "customer", session.Customer.Username)
	return session, nil
}

// Session returns the active kiosk session, or nil.
func (uc *KioskUseCase) Session() *domain.KioskSession {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.session == nil {
		return nil
	}
	session := *uc.session
	return &session
}

// Cart returns a copy of the current basket.
func (uc *KioskUseCase) Cart() *domain.LocalCart {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.cart.Clone()
}

// AddOrIncrement adds the product to the basket, or bumps its quantity.
func (uc *KioskUseCase) AddOrIncrement(ctx context.Context, product domain.ProductSnapshot) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.session == nil {
		return domain.ErrKioskSessionRequired
	}
	uc.cart.AddOrIncrement(product)
	uc.persistCart(ctx)
	return nil
}

// UpdateQuantity applies delta to a basket line, floored at 1.
func (uc *KioskUseCase) UpdateQuantity(ctx context.Context, itemID string, delta int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.session == nil {
		return domain.ErrKioskSessionRequired
	}
	if err := uc.cart.UpdateQuantity(itemID, delta); err != nil {
		return err
	}
	uc.persistCart(ctx)
	return nil
}

// RemoveItem deletes a basket line.
func (uc *KioskUseCase) RemoveItem(ctx context.Context, itemID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.session == nil {
		return domain.ErrKioskSessionRequired
	}
	if err := uc.cart.Remove(itemID); err != nil {
		return err
	}
	uc.persistCart(ctx)
	return nil
}

// Checkout merges the basket into the server cart and places the purchase.
// The merge is a saga with no cross-step transactionality: each basket line
// is pushed as a server cart mutation carrying the kiosk session header,
// then checkout is issued with the kiosk flag and the fixed in-store pickup
// address. On any failure the local basket is left untouched; a failure
// after the first push is reported as a PartialMergeError because the server
// cart is already partially populated.
func (uc *KioskUseCase) Checkout(ctx context.Context, paymentMethod string) (*domain.OrderConfirmation, error) {
	uc.mu.Lock()
	if uc.session == nil {
		uc.mu.Unlock()
		return nil, domain.ErrKioskSessionRequired
	}
	if uc.cart.IsEmpty() {
		uc.mu.Unlock()
		return nil, domain.ErrEmptyLocalCart
	}
	sessionID := uc.session.SessionID
	items := uc.cart.Clone().Items
	uc.mu.Unlock()

	for i, item := range items {
		if err := uc.cartGW.AddItemKiosk(ctx, sessionID, item.Product.ID, item.Quantity); err != nil {
			uc.logger.Error("kiosk merge aborted",
				"pushed", i, "total", len(items), "error", err)
			if i > 0 {
				return nil, &domain.PartialMergeError{Pushed: i, Total: len(items), Cause: err}
			}
			return nil, err
		}
	}

	confirmation, err := uc.cartGW.CheckoutKiosk(ctx, sessionID, domain.CheckoutRequest{
		PaymentMethod:   paymentMethod,
		ShippingAddress: domain.InStorePickupAddress,
		IsKioskPurchase: true,
	})
	if err != nil {
		// Every item is already on the server cart; this is not a clean
		// failure.
		uc.logger.Error("kiosk checkout failed after merge", "error", err)
		return nil, &domain.PartialMergeError{Pushed: len(items), Total: len(items), Cause: err}
	}

	uc.mu.Lock()
	uc.cart = domain.NewLocalCart()
	if err := uc.store.Delete(ctx, port.StateKeyKioskCart); err != nil {
		uc.logger.Warn("failed to clear persisted kiosk cart", "error", err)
	}
	uc.mu.Unlock()

	uc.logger.Info("kiosk purchase completed",
		"purchase_id", confirmation.PurchaseID,
		"total", confirmation.TotalAmount)
	return confirmation, nil
}

// Logout invalidates the kiosk session server-side on a best-effort basis,
// then clears all persisted kiosk state.
func (uc *KioskUseCase) Logout(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.session != nil {
		if err := uc.kioskGW.Logout(ctx, uc.session.SessionID); err != nil {
			uc.logger.Warn("server-side kiosk logout failed", "error", err)
		}
	}

	uc.session = nil
	uc.cart = nil
	for _, key := range []string{port.StateKeyKioskSession, port.StateKeyKioskCart} {
		if err := uc.store.Delete(ctx, key); err != nil {
			uc.logger.Warn("failed to clear kiosk state", "key", key, "error", err)
		}
	}
	uc.logger.Info("kiosk session ended")
}

// persistCart and persistSession write through to the state store. A failed
// write is logged, not surfaced: the in-memory basket stays correct and the
// customer keeps shopping.
func (uc *KioskUseCase) persistCart(ctx context.Context) {
	data, err := json.Marshal(uc.cart)
	if err != nil {
		uc.logger.Warn("failed to marshal kiosk cart", "error", err)
		return
	}
	if err := uc.store.Set(ctx, port.StateKeyKioskCart, data); err != nil {
		uc.logger.Warn("failed to persist kiosk cart", "error", err)
	}
}

func (uc *KioskUseCase) persistSession(ctx context.Context) {
	data, err := json.Marshal(uc.session)
	if err != nil {
		uc.logger.Warn("failed to marshal kiosk session", "error", err)
		return
	}
	if err := uc.store.Set(ctx, port.StateKeyKioskSession, data); err != nil {
		uc.logger.Warn("failed to persist kiosk session", "error", err)
	}
}
