package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headphones() ProductInfo {
	return ProductInfo{ProductID: "1", Name: "Zenith Pro Wireless Headphones", Price: decimal.NewFromInt(299)}
}

func tee() ProductInfo {
	return ProductInfo{ProductID: "2", Name: "Luxe Cotton Minimalist Tee", Price: decimal.NewFromInt(45)}
}

func TestCart_AddItemTwiceMerges(t *testing.T) {
	cart := &Cart{UserID: "u1"}

	cart.AddItem(headphones())
	cart.AddItem(headphones())

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCart_AddDistinctItems(t *testing.T) {
	cart := &Cart{UserID: "u1"}

	cart.AddItem(headphones())
	cart.AddItem(tee())

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestCart_UpdateQuantityClampsAtOne(t *testing.T) {
	cart := &Cart{UserID: "u1"}
	cart.AddItem(headphones())

	cart.UpdateQuantity("1", -100)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart.UpdateQuantity("1", 3)
	assert.Equal(t, 4, cart.Items[0].Quantity)

	cart.UpdateQuantity("1", -2)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCart_UpdateQuantityUnknownIDIsNoop(t *testing.T) {
	cart := &Cart{UserID: "u1"}
	cart.AddItem(headphones())

	cart.UpdateQuantity("missing", 5)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCart_RemoveItem(t *testing.T) {
	cart := &Cart{UserID: "u1"}
	cart.AddItem(headphones())
	cart.AddItem(tee())

	cart.RemoveItem("1")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "2", cart.Items[0].ProductID)
}

func TestCart_RemoveAbsentIDIsNoop(t *testing.T) {
	cart := &Cart{UserID: "u1"}
	cart.AddItem(headphones())

	cart.RemoveItem("missing")

	assert.Len(t, cart.Items, 1)
}

func TestCart_TotalAndItemCount(t *testing.T) {
	cart := &Cart{UserID: "u1"}
	cart.AddItem(headphones())
	cart.AddItem(headphones())
	cart.AddItem(tee())

	assert.Equal(t, 3, cart.ItemCount())
	// 2*299 + 45
	assert.Equal(t, "643", cart.Total().String())
}

func TestCart_Clear(t *testing.T) {
	cart := &Cart{UserID: "u1"}
	cart.AddItem(headphones())

	cart.Clear()

	assert.Empty(t, cart.Items)
	assert.Equal(t, "0", cart.Total().String())
}

func TestWishlist_ToggleMembership(t *testing.T) {
	w := &Wishlist{UserID: "u1"}

	added := w.Toggle(headphones())
	assert.True(t, added)
	assert.True(t, w.Contains("1"))

	removed := w.Toggle(headphones())
	assert.False(t, removed)
	assert.False(t, w.Contains("1"))
	assert.Empty(t, w.Items)
}

func TestWishlist_DoubleToggleRestoresMembership(t *testing.T) {
	w := &Wishlist{UserID: "u1"}
	w.Toggle(headphones())
	w.Toggle(tee())

	w.Toggle(headphones())
	w.Toggle(headphones())

	// 成员关系不变，位置允许不同
	assert.True(t, w.Contains("1"))
	assert.True(t, w.Contains("2"))
	assert.Len(t, w.Items, 2)
}
