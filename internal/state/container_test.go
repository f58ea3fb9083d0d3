package state

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/yardsale/internal/models"
	"github.com/mmynk/yardsale/internal/storage"
	"github.com/mmynk/yardsale/internal/storage/memory"
)

func TestContainerCommitWritesThrough(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	c, err := Open(ctx, store)
	require.NoError(t, err)

	next := c.Dataset()
	next.Sellers = append(next.Sellers, models.Seller{ID: "s1", Name: "Alice"})
	require.NoError(t, c.Commit(ctx, next, storage.SlotSellers))

	raw, ok := store.Raw(storage.SlotSellers)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"s1","name":"Alice"}]`, raw)

	_, ok = store.Raw(storage.SlotSoldItems)
	assert.False(t, ok, "untouched slots are not written")

	assert.Equal(t, "Alice", c.Dataset().Sellers[0].Name)
}

func TestContainerFailedWriteLeavesDatasetUnchanged(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	c, err := Open(ctx, store)
	require.NoError(t, err)

	store.FailWrites = errors.New("disk full")
	next := c.Dataset()
	next.Sellers = append(next.Sellers, models.Seller{ID: "s1", Name: "Alice"})

	err = c.Commit(ctx, next, storage.SlotSellers)
	require.Error(t, err)
	assert.Empty(t, c.Dataset().Sellers)
}

func TestContainerDatasetIsACopy(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Write(ctx, &models.Dataset{
		Sellers: []models.Seller{{ID: "s1", Name: "Alice"}},
	}, storage.SlotSellers))

	c, err := Open(ctx, store)
	require.NoError(t, err)

	ds := c.Dataset()
	ds.Sellers[0].Name = "Mallory"
	assert.Equal(t, "Alice", c.Dataset().Sellers[0].Name)
}

func TestContainerReplace(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	c, err := Open(ctx, store)
	require.NoError(t, err)

	require.NoError(t, c.Replace(ctx, models.Dataset{
		SoldItems: []models.SoldItem{{ID: "x", Amount: 3, SellerID: "s9", Timestamp: 1}},
	}))

	for _, slot := range storage.AllSlots {
		_, ok := store.Raw(slot)
		assert.True(t, ok, "slot %s written", slot)
	}
	assert.Len(t, c.Dataset().SoldItems, 1)
}
