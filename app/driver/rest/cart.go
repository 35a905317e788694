package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"freshmart-client/app/driver/httpx"
)

const (
	cartPath      = "/purchases/cart/"
	cartItemsPath = "/purchases/cart/items/"
	checkoutPath  = "/purchases/checkout/"
)

// ProductPayload is the product snapshot nested inside a cart item.
type ProductPayload struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CartItemPayload is one serialized cart line.
type CartItemPayload struct {
	ID          int64           `json:"id"`
	Product     ProductPayload  `json:"product"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CartPayload is the serialized cart.
type CartPayload struct {
	Items       []CartItemPayload `json:"items"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
}

// CheckoutPayload is the checkout request body.
type CheckoutPayload struct {
	PaymentMethod   string `json:"payment_method"`
	ShippingAddress string `json:"shipping_address"`
	IsKioskPurchase bool   `json:"is_kiosk_purchase"`
}

// PurchasePayload is the completed purchase record.
type PurchasePayload struct {
	ID          int64           `json:"id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
}

// RewardsPayload is the loyalty rewards summary attached to a checkout.
type RewardsPayload struct {
	PointsEarned   int             `json:"points_earned"`
	CashbackEarned decimal.Decimal `json:"cashback_earned"`
	FreeDelivery   bool            `json:"free_delivery"`
}

// CheckoutResponse is the checkout envelope.
type CheckoutResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Purchase *PurchasePayload `json:"purchase"`
	Rewards  *RewardsPayload  `json:"rewards"`
}

// kioskHeader builds the routing header for kiosk-session requests. An empty
// session ID means a plain bearer-authenticated request.
func kioskHeader(sessionID string) http.Header {
	if sessionID == "" {
		return nil
	}
	return http.Header{httpx.HeaderKioskSession: []string{sessionID}}
}

// Cart fetches the current cart.
func (c *Client) Cart(ctx context.Context) (*CartPayload, error) {
	var out struct {
		Success bool        `json:"success"`
		Cart    CartPayload `json:"cart"`
	}
	if err := c.do(ctx, http.MethodGet, cartPath, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Cart, nil
}

// AddCartItem adds quantity of a product to the cart. A non-empty sessionID
// routes the mutation to the kiosk-linked account.
func (c *Client) AddCartItem(ctx context.Context, sessionID string, productID int64, quantity int) error {
	body := map[string]interface{}{"product_id": productID, "quantity": quantity}
	return c.do(ctx, http.MethodPost, cartItemsPath, kioskHeader(sessionID), body, nil)
}

// UpdateCartItem replaces a cart item's quantity.
func (c *Client) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	body := map[string]interface{}{"quantity": quantity}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("%s%d/", cartItemsPath, itemID), nil, body, nil)
}

// DeleteCartItem removes an item from the cart.
func (c *Client) DeleteCartItem(ctx context.Context, itemID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s%d/", cartItemsPath, itemID), nil, nil, nil)
}

// ClearCart removes every item from the cart.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, cartPath, nil, nil, nil)
}

// Checkout turns the server cart into a purchase.
func (c *Client) Checkout(ctx context.Context, sessionID string, payload CheckoutPayload) (*CheckoutResponse, error) {
	var out CheckoutResponse
	if err := c.do(ctx, http.MethodPost, checkoutPath, kioskHeader(sessionID), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
