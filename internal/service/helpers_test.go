package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmynk/yardsale/internal/models"
	"github.com/mmynk/yardsale/internal/state"
	"github.com/mmynk/yardsale/internal/storage"
	"github.com/mmynk/yardsale/internal/storage/memory"
)

// newContainer builds an isolated container seeded with ds.
func newContainer(t *testing.T, ds models.Dataset) (*state.Container, *memory.Store) {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Write(ctx, &ds, storage.AllSlots...))
	c, err := state.Open(ctx, store)
	require.NoError(t, err)
	return c, store
}

func aliceAndBob() models.Dataset {
	return models.Dataset{
		Sellers: []models.Seller{{ID: "s1", Name: "Alice"}, {ID: "s2", Name: "Bob"}},
	}
}
