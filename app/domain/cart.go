package domain

import "github.com/shopspring/decimal"

// CartItem is one line of the authoritative server cart. The unit price is a
// server-side snapshot; the client never recomputes it.
type CartItem struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Cart mirrors the last successfully fetched state of the server cart. The
// server owns it; the client treats it as a read-mostly cache that is
// refetched after every mutation.
type Cart struct {
	Items       []CartItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// EmptyCart returns a cart with no items. A 404 from the cart endpoint is
// normalized to this, not to an error.
func EmptyCart() *Cart {
	return &Cart{Items: []CartItem{}, TotalAmount: decimal.Zero}
}

// IsEmpty returns true when the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// Clone returns a shallow copy with its own item slice, so callers cannot
// mutate the cached state.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return EmptyCart()
	}
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return &Cart{Items: items, TotalAmount: c.TotalAmount}
}

// CheckoutRequest is the payload for the checkout endpoint. Kiosk purchases
// carry the fixed in-store pickup address and the kiosk flag.
type CheckoutRequest struct {
	PaymentMethod   string `json:"payment_method" validate:"required,oneof=cash credit_card"`
	ShippingAddress string `json:"shipping_address" validate:"required"`
	IsKioskPurchase bool   `json:"is_kiosk_purchase"`
}

// Rewards summarizes the loyalty rewards granted by a completed purchase.
type Rewards struct {
	PointsEarned   int             `json:"points_earned"`
	CashbackEarned decimal.Decimal `json:"cashback_earned"`
	FreeDelivery   bool            `json:"free_delivery"`
}

// OrderConfirmation is the outcome of a successful checkout.
type OrderConfirmation struct {
	PurchaseID  int64           `json:"purchase_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Message     string          `json:"message"`
	Rewards     *Rewards        `json:"rewards,omitempty"`
}
