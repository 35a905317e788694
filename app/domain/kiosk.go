package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InStorePickupAddress is the fixed shipping address for kiosk purchases.
const InStorePickupAddress = "In-store pickup"

// CustomerSummary identifies the loyalty-card holder behind a kiosk session.
type CustomerSummary struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	Email       string `json:"email"`
	LoyaltyCard string `json:"loyalty_card"`
}

// KioskSession is the in-store identity obtained through the loyalty-card/OTP
// exchange. It is not a bearer credential; requests carry it in a routing
// header so the server attributes mutations to the linked account.
type KioskSession struct {
	SessionID string          `json:"session_id"`
	Customer  CustomerSummary `json:"customer"`
}

// OTPChallenge describes an issued one-time passcode.
type OTPChallenge struct {
	CustomerName     string `json:"customer_name"`
	Message          string `json:"message"`
	ExpiresInMinutes int    `json:"expires_in_minutes"`
}

// ProductSnapshot embeds everything the kiosk needs to display and price an
// item with no guaranteed connectivity to re-resolve product data.
type ProductSnapshot struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Unit     string          `json:"unit,omitempty"`
	ImageURL string          `json:"image_url,omitempty"`
}

// LocalCartItem is one line of the kiosk basket. IDs are client-generated;
// the server never sees them.
type LocalCartItem struct {
	ID       string          `json:"id"`
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
}

// LocalCart is the kiosk basket, owned entirely by the terminal for the
// duration of one kiosk session. The total is recomputed after every
// mutation as the sum of quantity times snapshot price.
type LocalCart struct {
	Items       []LocalCartItem `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewLocalCart returns an empty kiosk basket.
func NewLocalCart() *LocalCart {
	return &LocalCart{Items: []LocalCartItem{}, TotalAmount: decimal.Zero}
}

// AddOrIncrement adds the product with quantity 1, or bumps the quantity of
// the existing line for the same product.
func (c *LocalCart) AddOrIncrement(p ProductSnapshot) {
	for i := range c.Items {
		if c.Items[i].Product.ID == p.ID {
			c.Items[i].Quantity++
			c.recompute()
			return
		}
	}
	c.Items = append(c.Items, LocalCartItem{
		ID:       uuid.NewString(),
		Product:  p,
		Quantity: 1,
	})
	c.recompute()
}

// UpdateQuantity applies delta to the item's quantity, floored at 1.
// Removing a line is a distinct operation, never a side effect of a
// decrement.
func (c *LocalCart) UpdateQuantity(itemID string, delta int) error {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			q := c.Items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.Items[i].Quantity = q
			c.recompute()
			return nil
		}
	}
	return ErrItemNotFound
}

// Remove deletes the item and recomputes the total.
func (c *LocalCart) Remove(itemID string) error {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.recompute()
			return nil
		}
	}
	return ErrItemNotFound
}

// IsEmpty returns true when the basket holds no items.
func (c *LocalCart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// Clone returns a copy with its own item slice.
func (c *LocalCart) Clone() *LocalCart {
	if c == nil {
		return NewLocalCart()
	}
	items := make([]LocalCartItem, len(c.Items))
	copy(items, c.Items)
	return &LocalCart{Items: items, TotalAmount: c.TotalAmount}
}

func (c *LocalCart) recompute() {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	c.TotalAmount = total
}
