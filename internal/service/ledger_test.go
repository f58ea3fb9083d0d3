package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/yardsale/internal/models"
)

func TestLedgerEditSoldItem(t *testing.T) {
	ctx := context.Background()
	ds := aliceAndBob()
	ds.SoldItems = []models.SoldItem{{ID: "x", Name: "Lamp", Amount: 5, SellerID: "s1", Timestamp: 77}}
	c, _ := newContainer(t, ds)
	l := NewLedger(c)

	require.NoError(t, l.EditSoldItem(ctx, "x", " Desk lamp ", 6.499, "s2"))
	item, err := l.SoldItem("x")
	require.NoError(t, err)
	assert.Equal(t, models.SoldItem{ID: "x", Name: "Desk lamp", Amount: 6.5, SellerID: "s2", Timestamp: 77}, item)

	assert.True(t, IsValidation(l.EditSoldItem(ctx, "x", "", 1, "ghost")))
	assert.ErrorIs(t, l.EditSoldItem(ctx, "y", "", 1, "s1"), ErrNotFound)
}

func TestLedgerDeleteSoldItemUnblocksSeller(t *testing.T) {
	ctx := context.Background()
	ds := aliceAndBob()
	ds.SoldItems = []models.SoldItem{{ID: "x", Amount: 5, SellerID: "s1", Timestamp: 1}}
	c, _ := newContainer(t, ds)
	l := NewLedger(c)
	r := NewRegistry(c)

	var guard *GuardedDeleteError
	require.ErrorAs(t, r.DeleteSeller(ctx, "s1", Confirmed(true)), &guard)

	require.NoError(t, l.DeleteSoldItem(ctx, "x"))
	require.NoError(t, r.DeleteSeller(ctx, "s1", Confirmed(true)))
	assert.ErrorIs(t, l.DeleteSoldItem(ctx, "x"), ErrNotFound)
}
