package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/yardsale/internal/models"
	"github.com/mmynk/yardsale/internal/storage"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	ds := &models.Dataset{
		Sellers:   []models.Seller{{ID: "s1", Name: "Alice"}},
		SoldItems: []models.SoldItem{{ID: "x", Amount: 1.5, SellerID: "s1", Timestamp: 42}},
	}
	require.NoError(t, s.Write(ctx, ds, storage.AllSlots...))

	raw, ok := s.Raw(storage.SlotQuickItems)
	require.True(t, ok)
	assert.Equal(t, "[]", raw)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, ds.Sellers, loaded.Sellers)
	assert.Equal(t, ds.SoldItems, loaded.SoldItems)
	assert.Empty(t, loaded.QuickItems)

	// the store keeps encoded copies, not the caller's slices
	ds.Sellers[0].Name = "changed"
	again, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.Sellers[0].Name)
}

func TestStoreFailWrites(t *testing.T) {
	s := New()
	boom := errors.New("disk full")
	s.FailWrites = boom

	err := s.Write(context.Background(), &models.Dataset{}, storage.SlotSellers)
	assert.ErrorIs(t, err, boom)
	_, ok := s.Raw(storage.SlotSellers)
	assert.False(t, ok)
}

func TestStoreClosed(t *testing.T) {
	s := New()
	require.NoError(t, s.Close())

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}
