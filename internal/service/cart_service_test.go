package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easyqist/storefront/pkg/apperr"
)

func TestAddToCart_MergesExistingLine(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.cart.AddToCart(ctx, "u1", "p1", 2))
	require.NoError(t, env.cart.AddToCart(ctx, "u1", "p1", 3))

	lines, err := env.cart.GetCart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Item.Quantity)
}

func TestAddToCart_ClampsToStock(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	// p2 has stock 3
	require.NoError(t, env.cart.AddToCart(ctx, "u1", "p2", 2))
	require.NoError(t, env.cart.AddToCart(ctx, "u1", "p2", 5))

	lines, err := env.cart.GetCart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Item.Quantity, "quantity must be clamped to available stock")
}

func TestAddToCart_Validation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	err := env.cart.AddToCart(ctx, "u1", "p1", 0)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	err = env.cart.AddToCart(ctx, "u1", "nope", 1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSetQuantity(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.cart.AddToCart(ctx, "u1", "p1", 1))
	lines, err := env.cart.GetCart(ctx, "u1")
	require.NoError(t, err)
	itemID := lines[0].Item.ID

	require.NoError(t, env.cart.SetQuantity(ctx, "u1", itemID, 4))
	lines, err = env.cart.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 4, lines[0].Item.Quantity)

	// clamped to stock of 10
	require.NoError(t, env.cart.SetQuantity(ctx, "u1", itemID, 50))
	lines, err = env.cart.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 10, lines[0].Item.Quantity)

	// zero or less removes the line
	require.NoError(t, env.cart.SetQuantity(ctx, "u1", itemID, 0))
	lines, err = env.cart.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRemoveFromCart_OtherUsersLineIsInvisible(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.cart.AddToCart(ctx, "u1", "p1", 1))
	lines, err := env.cart.GetCart(ctx, "u1")
	require.NoError(t, err)

	err = env.cart.RemoveFromCart(ctx, "admin", lines[0].Item.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSubtotal(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.cart.AddToCart(ctx, "u1", "p1", 2)) // 200
	require.NoError(t, env.cart.AddToCart(ctx, "u1", "p2", 1)) // 25

	subtotal, err := env.cart.Subtotal(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, subtotal.Equal(decimal.NewFromInt(225)), "got %v", subtotal)
}
