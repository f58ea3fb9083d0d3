package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/yardsale/internal/models"
)

func TestSelectSellerToggles(t *testing.T) {
	c, _ := newContainer(t, aliceAndBob())
	tx := NewTransaction(c)

	got, err := tx.SelectSeller("s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got)

	got, err = tx.SelectSeller("s2")
	require.NoError(t, err)
	assert.Equal(t, "s2", got)

	got, err = tx.SelectSeller("s2")
	require.NoError(t, err)
	assert.Equal(t, "", got)
	assert.Equal(t, "", tx.SelectedSeller())

	_, err = tx.SelectSeller("s9")
	assert.True(t, IsValidation(err))
}

func TestAddLine(t *testing.T) {
	c, _ := newContainer(t, aliceAndBob())
	tx := NewTransaction(c)

	t.Run("custom line needs a selected seller", func(t *testing.T) {
		_, err := tx.AddLine(5, "Lamp", "")
		assert.ErrorIs(t, err, ErrNoSellerSelected)
		assert.Empty(t, tx.Lines())
	})

	t.Run("quick item carries its own seller", func(t *testing.T) {
		line, err := tx.AddQuickItem(models.QuickItem{ID: "q1", Name: "Mug", Amount: 2.5, SellerID: "s2"})
		require.NoError(t, err)
		assert.Equal(t, "s2", line.SellerID)
		assert.Equal(t, "Mug", line.Name)
		assert.NotEqual(t, "q1", line.ID)
	})

	t.Run("selected seller is the fallback", func(t *testing.T) {
		_, err := tx.SelectSeller("s1")
		require.NoError(t, err)
		line, err := tx.AddLine(1.005, "  Book ", "")
		require.NoError(t, err)
		assert.Equal(t, "s1", line.SellerID)
		assert.Equal(t, "Book", line.Name)
		assert.Equal(t, 1.01, line.Amount)
	})

	t.Run("non-positive amounts are rejected", func(t *testing.T) {
		before := len(tx.Lines())
		_, err := tx.AddLine(0, "", "")
		assert.ErrorIs(t, err, ErrNoSellerSelected)
		_, err = tx.AddLine(-5, "", "")
		assert.ErrorIs(t, err, ErrNoSellerSelected)
		assert.Len(t, tx.Lines(), before)
	})

	assert.Equal(t, 3.51, tx.Total())
}

func TestRemoveLine(t *testing.T) {
	c, _ := newContainer(t, aliceAndBob())
	tx := NewTransaction(c)

	a, err := tx.AddLine(1, "a", "s1")
	require.NoError(t, err)
	b, err := tx.AddLine(2, "b", "s1")
	require.NoError(t, err)

	tx.RemoveLine(a.ID)
	tx.RemoveLine("missing")
	assert.Equal(t, []models.LineItem{b}, tx.Lines())
	assert.Equal(t, 2.0, tx.Total())
}

func TestConfirmMintsSoldItems(t *testing.T) {
	ctx := context.Background()
	ds := aliceAndBob()
	ds.SoldItems = []models.SoldItem{{ID: "old", Amount: 9, SellerID: "s1", Timestamp: 1}}
	c, _ := newContainer(t, ds)
	tx := NewTransaction(c)
	fixed := time.UnixMilli(1_700_000_000_000)
	tx.now = func() time.Time { return fixed }

	lines := make([]models.LineItem, 0, 3)
	for _, in := range []struct {
		amount float64
		name   string
		seller string
	}{{1, "a", "s1"}, {2.25, "b", "s2"}, {0.5, "", "s1"}} {
		line, err := tx.AddLine(in.amount, in.name, in.seller)
		require.NoError(t, err)
		lines = append(lines, line)
	}

	invoked := time.Now()
	tx.now = time.Now
	sold, err := tx.Confirm(ctx)
	require.NoError(t, err)
	require.Len(t, sold, 3)

	got := c.Dataset().SoldItems
	require.Len(t, got, 4)
	assert.Equal(t, "old", got[0].ID)

	ids := map[string]bool{"old": true}
	for i, line := range lines {
		item := got[i+1]
		assert.Equal(t, line.Name, item.Name)
		assert.Equal(t, line.Amount, item.Amount)
		assert.Equal(t, line.SellerID, item.SellerID)
		assert.NotEqual(t, line.ID, item.ID)
		assert.False(t, ids[item.ID], "fresh id")
		ids[item.ID] = true
		assert.GreaterOrEqual(t, item.Timestamp, invoked.UnixMilli())
	}
	assert.Empty(t, tx.Lines())
	assert.Equal(t, 0.0, tx.Total())
}

func TestConfirmEmptyIsNoop(t *testing.T) {
	c, store := newContainer(t, aliceAndBob())
	tx := NewTransaction(c)
	store.FailWrites = errors.New("must not write")

	sold, err := tx.Confirm(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sold)
}

func TestConfirmWriteFailureKeepsPending(t *testing.T) {
	c, store := newContainer(t, aliceAndBob())
	tx := NewTransaction(c)
	_, err := tx.AddLine(3, "x", "s1")
	require.NoError(t, err)

	store.FailWrites = errors.New("disk full")
	_, err = tx.Confirm(context.Background())
	require.Error(t, err)
	assert.Len(t, tx.Lines(), 1)
	assert.Empty(t, c.Dataset().SoldItems)
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	c, _ := newContainer(t, aliceAndBob())
	tx := NewTransaction(c)
	_, err := tx.AddLine(3, "x", "s1")
	require.NoError(t, err)

	assert.ErrorIs(t, tx.Cancel(ctx, Confirmed(false)), ErrNotConfirmed)
	assert.Len(t, tx.Lines(), 1)

	require.NoError(t, tx.Cancel(ctx, Confirmed(true)))
	assert.Empty(t, tx.Lines())
	assert.Empty(t, c.Dataset().SoldItems)
}

func TestSellerDeletedClearsSelection(t *testing.T) {
	c, _ := newContainer(t, aliceAndBob())
	tx := NewTransaction(c)
	_, err := tx.SelectSeller("s1")
	require.NoError(t, err)
	_, err = tx.AddLine(1, "a", "")
	require.NoError(t, err)
	kept, err := tx.AddLine(2, "b", "s2")
	require.NoError(t, err)

	tx.SellerDeleted("s1")
	assert.Equal(t, "", tx.SelectedSeller())
	assert.Equal(t, []models.LineItem{kept}, tx.Lines())

	tx.Reset()
	assert.Empty(t, tx.Lines())
}
