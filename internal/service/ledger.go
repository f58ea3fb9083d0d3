package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmynk/yardsale/internal/calculator"
	"github.com/mmynk/yardsale/internal/models"
	"github.com/mmynk/yardsale/internal/state"
	"github.com/mmynk/yardsale/internal/storage"
)

// Ledger corrects and removes sold items after the fact.
type Ledger struct {
	state *state.Container
}

// NewLedger creates a Ledger over the given container.
func NewLedger(c *state.Container) *Ledger {
	return &Ledger{state: c}
}

// SoldItem returns the sold item with the given ID.
func (l *Ledger) SoldItem(id string) (models.SoldItem, error) {
	ds := l.state.Dataset()
	idx := soldItemIndex(ds, id)
	if idx < 0 {
		return models.SoldItem{}, fmt.Errorf("sold item %s: %w", id, ErrNotFound)
	}
	return ds.SoldItems[idx], nil
}

// EditSoldItem replaces name, amount and seller of a sold item.
// ID and timestamp are kept.
func (l *Ledger) EditSoldItem(ctx context.Context, id, name string, amount float64, sellerID string) error {
	ds := l.state.Dataset()
	idx := soldItemIndex(ds, id)
	if idx < 0 {
		return fmt.Errorf("sold item %s: %w", id, ErrNotFound)
	}
	if err := validateEntry(ds, amount, sellerID); err != nil {
		return err
	}

	item := &ds.SoldItems[idx]
	item.Name = strings.TrimSpace(name)
	item.Amount = calculator.Round(amount)
	item.SellerID = sellerID
	if err := l.state.Commit(ctx, ds, storage.SlotSoldItems); err != nil {
		return err
	}

	slog.Info("Sold item updated", "sold_item_id", id, "amount", item.Amount, "seller_id", sellerID)
	return nil
}

// DeleteSoldItem removes a sold item.
func (l *Ledger) DeleteSoldItem(ctx context.Context, id string) error {
	ds := l.state.Dataset()
	idx := soldItemIndex(ds, id)
	if idx < 0 {
		return fmt.Errorf("sold item %s: %w", id, ErrNotFound)
	}

	ds.SoldItems = append(ds.SoldItems[:idx], ds.SoldItems[idx+1:]...)
	if err := l.state.Commit(ctx, ds, storage.SlotSoldItems); err != nil {
		return err
	}

	slog.Info("Sold item deleted", "sold_item_id", id)
	return nil
}
