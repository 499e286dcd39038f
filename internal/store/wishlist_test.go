package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ornella_back_end/internal/models"
)

func pendant() models.WishlistItem {
	return models.WishlistItem{ProductID: "P-100", Description: "Amber Pendant", Price: 90}
}

// Deux ajouts donnent exactement une entrée ; Contains vrai
// après ajout, faux après retrait.
func TestWishlistSetSemantics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wl := NewWishlistStore(NewMemoryPersistence())

	items, notice, err := wl.Add(ctx, "c", pendant())
	require.NoError(t, err)
	assert.Equal(t, LevelSuccess, notice.Level)
	assert.Len(t, items, 1)
	assert.True(t, wl.Contains(ctx, "c", "P-100"))

	// Re-ajout : no-op informatif, pas de doublon.
	items, notice, err = wl.Add(ctx, "c", pendant())
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, notice.Level)
	assert.Equal(t, "Déjà dans la wishlist", notice.Message)
	assert.Len(t, items, 1)

	items, notice, err = wl.Remove(ctx, "c", "P-100")
	require.NoError(t, err)
	assert.Equal(t, LevelSuccess, notice.Level)
	assert.Empty(t, items)
	assert.False(t, wl.Contains(ctx, "c", "P-100"))
}

func TestWishlistRemoveAbsentHasNoNotice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wl := NewWishlistStore(NewMemoryPersistence())

	items, notice, err := wl.Remove(ctx, "c", "ghost")
	require.NoError(t, err)
	assert.Equal(t, None, notice)
	assert.Empty(t, items)
}

func TestWishlistCorruptStateDegradesToEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mem := NewMemoryPersistence()
	wl := NewWishlistStore(mem)

	_, _, err := wl.Add(ctx, "c", pendant())
	require.NoError(t, err)
	mem.Corrupt("wishlist:c")

	assert.Empty(t, wl.Get(ctx, "c"))
	assert.False(t, wl.Contains(ctx, "c", "P-100"))
}

func TestWishlistAddStampsAddedAt(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wl := NewWishlistStore(NewMemoryPersistence())

	items, _, err := wl.Add(ctx, "c", pendant())
	require.NoError(t, err)
	assert.False(t, items[0].AddedAt.IsZero())
}
