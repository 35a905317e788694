package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshmart-client/app/domain"
)

func apples() domain.ProductSnapshot {
	return domain.ProductSnapshot{ID: 1, Name: "Apples", Price: decimal.RequireFromString("2.50"), Unit: "kg"}
}

func milk() domain.ProductSnapshot {
	return domain.ProductSnapshot{ID: 2, Name: "Milk", Price: decimal.RequireFromString("1.19"), Unit: "l"}
}

func TestLocalCart_AddOrIncrement(t *testing.T) {
	cart := domain.NewLocalCart()

	cart.AddOrIncrement(apples())
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.NotEmpty(t, cart.Items[0].ID)
	assert.True(t, cart.TotalAmount.Equal(decimal.RequireFromString("2.50")))

	// Same product collapses into the existing line
	cart.AddOrIncrement(apples())
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.True(t, cart.TotalAmount.Equal(decimal.RequireFromString("5.00")))

	// Different product gets its own line and its own ID
	cart.AddOrIncrement(milk())
	require.Len(t, cart.Items, 2)
	assert.NotEqual(t, cart.Items[0].ID, cart.Items[1].ID)
	assert.True(t, cart.TotalAmount.Equal(decimal.RequireFromString("6.19")))
}

func TestLocalCart_UpdateQuantity(t *testing.T) {
	cart := domain.NewLocalCart()
	cart.AddOrIncrement(apples())
	itemID := cart.Items[0].ID

	tests := []struct {
		name    string
		itemID  string
		delta   int
		wantQty int
		wantErr error
	}{
		{
			name:    "increment",
			itemID:  itemID,
			delta:   2,
			wantQty: 3,
		},
		{
			name:    "decrement",
			itemID:  itemID,
			delta:   -1,
			wantQty: 2,
		},
		{
			name:    "decrement floors at one",
			itemID:  itemID,
			delta:   -10,
			wantQty: 1,
		},
		{
			name:    "unknown item",
			itemID:  "missing",
			delta:   1,
			wantErr: domain.ErrItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cart.UpdateQuantity(tt.itemID, tt.delta)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantQty, cart.Items[0].Quantity)
			wantTotal := apples().Price.Mul(decimal.NewFromInt(int64(tt.wantQty)))
			assert.True(t, cart.TotalAmount.Equal(wantTotal), "total %v != %v", cart.TotalAmount, wantTotal)
		})
	}
}

func TestLocalCart_Remove(t *testing.T) {
	cart := domain.NewLocalCart()
	cart.AddOrIncrement(apples())
	cart.AddOrIncrement(milk())
	itemID := cart.Items[0].ID

	require.NoError(t, cart.Remove(itemID))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].Product.ID)
	assert.True(t, cart.TotalAmount.Equal(decimal.RequireFromString("1.19")))

	assert.ErrorIs(t, cart.Remove(itemID), domain.ErrItemNotFound)
}

func TestLocalCart_IsEmpty(t *testing.T) {
	var nilCart *domain.LocalCart
	assert.True(t, nilCart.IsEmpty())
	assert.True(t, domain.NewLocalCart().IsEmpty())

	cart := domain.NewLocalCart()
	cart.AddOrIncrement(apples())
	assert.False(t, cart.IsEmpty())
}

func TestLocalCart_Clone(t *testing.T) {
	cart := domain.NewLocalCart()
	cart.AddOrIncrement(apples())

	clone := cart.Clone()
	clone.Items[0].Quantity = 99

	assert.Equal(t, 1, cart.Items[0].Quantity, "clone must not share the item slice")

	var nilCart *domain.LocalCart
	assert.NotNil(t, nilCart.Clone())
	assert.True(t, nilCart.Clone().IsEmpty())
}
