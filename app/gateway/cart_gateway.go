package gateway

import (
	"context"
	"log/slog"

	"freshmart-client/app/domain"
	"freshmart-client/app/driver/rest"
	"freshmart-client/app/port"
)

// CartGateway implements port.CartGateway over the REST client.
type CartGateway struct {
	client *rest.Client
	logger *slog.Logger
}

// NewCartGateway creates a new cart gateway.
func NewCartGateway(client *rest.Client, logger *slog.Logger) port.CartGateway {
	return &CartGateway{client: client, logger: logger}
}

// FetchCart loads the authoritative cart.
func (g *CartGateway) FetchCart(ctx context.Context) (*domain.Cart, error) {
	payload, err := g.client.Cart(ctx)
	if err != nil {
		return nil, mapRestError(err)
	}
	return cartFrom(payload), nil
}

// AddItem adds a product to the bearer-identified cart.
func (g *CartGateway) AddItem(ctx context.Context, productID int64, quantity int) error {
	return mapRestError(g.client.AddCartItem(ctx, "", productID, quantity))
}

// UpdateItem replaces a cart item's quantity.
func (g *CartGateway) UpdateItem(ctx context.Context, itemID int64, quantity int) error {
	return mapRestError(g.client.UpdateCartItem(ctx, itemID, quantity))
}

// RemoveItem deletes a cart item.
func (g *CartGateway) RemoveItem(ctx context.Context, itemID int64) error {
	return mapRestError(g.client.DeleteCartItem(ctx, itemID))
}

// ClearCart removes every item.
func (g *CartGateway) ClearCart(ctx context.Context) error {
	return mapRestError(g.client.ClearCart(ctx))
}

// Checkout turns the server cart into a purchase.
func (g *CartGateway) Checkout(ctx context.Context, req domain.CheckoutRequest) (*domain.OrderConfirmation, error) {
	return g.checkout(ctx, "", req)
}

// AddItemKiosk adds a product to the kiosk-linked account's cart.
func (g *CartGateway) AddItemKiosk(ctx context.Context, sessionID string, productID int64, quantity int) error {
	return mapRestError(g.client.AddCartItem(ctx, sessionID, productID, quantity))
}

// CheckoutKiosk checks out on behalf of the kiosk session.
func (g *CartGateway) CheckoutKiosk(ctx context.Context, sessionID string, req domain.CheckoutRequest) (*domain.OrderConfirmation, error) {
	return g.checkout(ctx, sessionID, req)
}

func (g *CartGateway) checkout(ctx context.Context, sessionID string, req domain.CheckoutRequest) (*domain.OrderConfirmation, error) {
	resp, err := g.client.Checkout(ctx, sessionID, rest.CheckoutPayload{
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress,
		IsKioskPurchase: req.IsKioskPurchase,
	})
	if err != nil {
		return nil, mapRestError(err)
	}

	confirmation := &domain.OrderConfirmation{Message: resp.Message}
	if resp.Purchase != nil {
		confirmation.PurchaseID = resp.Purchase.ID
		confirmation.TotalAmount = resp.Purchase.TotalAmount
	}
	if resp.Rewards != nil {
		confirmation.Rewards = &domain.Rewards{
			PointsEarned:   resp.Rewards.PointsEarned,
			CashbackEarned: resp.Rewards.CashbackEarned,
			FreeDelivery:   resp.Rewards.FreeDelivery,
		}
	}
	return confirmation, nil
}

func cartFrom(payload *rest.CartPayload) *domain.Cart {
	cart := &domain.Cart{
		Items:       make([]domain.CartItem, 0, len(payload.Items)),
		TotalAmount: payload.TotalAmount,
	}
	for _, item := range payload.Items {
		cart.Items = append(cart.Items, domain.CartItem{
			ID:          item.ID,
			ProductID:   item.Product.ID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.Price,
			Subtotal:    item.Subtotal,
		})
	}
	return cart
}
