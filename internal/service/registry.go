// Package service implements the engines that mutate the yard sale dataset:
// the Registry for sellers and quick items, the Transaction for the pending
// purchase and the Ledger for sold items.
//
// Engines share one state.Container. Every operation either commits a new
// dataset as a whole or returns an error with nothing changed.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/mmynk/yardsale/internal/calculator"
	"github.com/mmynk/yardsale/internal/models"
	"github.com/mmynk/yardsale/internal/state"
	"github.com/mmynk/yardsale/internal/storage"
)

// SellerObserver is notified after a seller has been deleted.
type SellerObserver interface {
	SellerDeleted(sellerID string)
}

// Registry manages sellers and quick items.
type Registry struct {
	state     *state.Container
	observers []SellerObserver
}

// NewRegistry creates a Registry over the given container.
func NewRegistry(c *state.Container) *Registry {
	return &Registry{state: c}
}

// Observe registers o for seller deletions.
func (r *Registry) Observe(o SellerObserver) {
	r.observers = append(r.observers, o)
}

// AddSeller appends a seller with a fresh ID. Blank names are rejected.
func (r *Registry) AddSeller(ctx context.Context, name string) (*models.Seller, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "seller name is required"}
	}

	ds := r.state.Dataset()
	seller := models.Seller{ID: newID(prefixSeller), Name: name}
	ds.Sellers = append(ds.Sellers, seller)
	if err := r.state.Commit(ctx, ds, storage.SlotSellers); err != nil {
		return nil, err
	}

	slog.Info("Seller added", "seller_id", seller.ID, "name", seller.Name)
	return &seller, nil
}

// EditSeller renames a seller in place. Names need not be unique.
func (r *Registry) EditSeller(ctx context.Context, id, name string) error {
	ds := r.state.Dataset()
	idx := sellerIndex(ds, id)
	if idx < 0 {
		return fmt.Errorf("seller %s: %w", id, ErrNotFound)
	}

	ds.Sellers[idx].Name = strings.TrimSpace(name)
	if err := r.state.Commit(ctx, ds, storage.SlotSellers); err != nil {
		return err
	}

	slog.Info("Seller renamed", "seller_id", id, "name", ds.Sellers[idx].Name)
	return nil
}

// DeleteSeller removes a seller and every quick item referencing it.
// It fails with GuardedDeleteError while sold items reference the seller,
// and with ErrNotConfirmed when the user declines.
func (r *Registry) DeleteSeller(ctx context.Context, id string, c Confirmer) error {
	ds := r.state.Dataset()
	idx := sellerIndex(ds, id)
	if idx < 0 {
		return fmt.Errorf("seller %s: %w", id, ErrNotFound)
	}

	if n := ds.SoldItemsBySeller(id); n > 0 {
		slog.Warn("Seller delete refused", "seller_id", id, "sold_items", n)
		return &GuardedDeleteError{SellerID: id, SoldItems: n}
	}

	if err := confirm(ctx, c, PromptDeleteSeller); err != nil {
		return err
	}

	ds.Sellers = append(ds.Sellers[:idx], ds.Sellers[idx+1:]...)
	kept := ds.QuickItems[:0]
	for _, item := range ds.QuickItems {
		if item.SellerID != id {
			kept = append(kept, item)
		}
	}
	removed := len(ds.QuickItems) - len(kept)
	ds.QuickItems = kept

	if err := r.state.Commit(ctx, ds, storage.SlotSellers, storage.SlotQuickItems); err != nil {
		return err
	}

	for _, o := range r.observers {
		o.SellerDeleted(id)
	}

	slog.Info("Seller deleted", "seller_id", id, "quick_items_removed", removed)
	return nil
}

// AddQuickItem appends a quick item. The seller must exist and the amount
// must be positive; it is rounded to 2 decimal places.
func (r *Registry) AddQuickItem(ctx context.Context, name string, amount float64, sellerID string) (*models.QuickItem, error) {
	if sellerID == "" {
		return nil, &ValidationError{Field: "sellerId", Reason: "seller is required"}
	}
	if !(amount > 0) || math.IsInf(amount, 0) {
		return nil, &ValidationError{Field: "amount", Reason: "amount must be greater than zero"}
	}

	ds := r.state.Dataset()
	if sellerIndex(ds, sellerID) < 0 {
		return nil, &ValidationError{Field: "sellerId", Reason: "unknown seller"}
	}

	item := models.QuickItem{
		ID:       newID(prefixQuickItem),
		Name:     strings.TrimSpace(name),
		Amount:   calculator.Round(amount),
		SellerID: sellerID,
	}
	ds.QuickItems = append(ds.QuickItems, item)
	if err := r.state.Commit(ctx, ds, storage.SlotQuickItems); err != nil {
		return nil, err
	}

	slog.Info("Quick item added",
		"quick_item_id", item.ID,
		"name", item.Name,
		"amount", item.Amount,
		"seller_id", item.SellerID,
	)
	return &item, nil
}

// EditQuickItem replaces the fields of a quick item.
func (r *Registry) EditQuickItem(ctx context.Context, id, name string, amount float64, sellerID string) error {
	ds := r.state.Dataset()
	idx := quickItemIndex(ds, id)
	if idx < 0 {
		return fmt.Errorf("quick item %s: %w", id, ErrNotFound)
	}
	if err := validateEntry(ds, amount, sellerID); err != nil {
		return err
	}

	ds.QuickItems[idx] = models.QuickItem{
		ID:       id,
		Name:     strings.TrimSpace(name),
		Amount:   calculator.Round(amount),
		SellerID: sellerID,
	}
	if err := r.state.Commit(ctx, ds, storage.SlotQuickItems); err != nil {
		return err
	}

	slog.Info("Quick item updated", "quick_item_id", id)
	return nil
}

// DeleteQuickItem removes a quick item after confirmation.
func (r *Registry) DeleteQuickItem(ctx context.Context, id string, c Confirmer) error {
	ds := r.state.Dataset()
	idx := quickItemIndex(ds, id)
	if idx < 0 {
		return fmt.Errorf("quick item %s: %w", id, ErrNotFound)
	}
	if err := confirm(ctx, c, PromptDeleteQuickItem); err != nil {
		return err
	}

	ds.QuickItems = append(ds.QuickItems[:idx], ds.QuickItems[idx+1:]...)
	if err := r.state.Commit(ctx, ds, storage.SlotQuickItems); err != nil {
		return err
	}

	slog.Info("Quick item deleted", "quick_item_id", id)
	return nil
}

// validateEntry checks the fields shared by quick item and sold item edits.
func validateEntry(ds models.Dataset, amount float64, sellerID string) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return &ValidationError{Field: "amount", Reason: "amount must not be negative"}
	}
	if sellerIndex(ds, sellerID) < 0 {
		return &ValidationError{Field: "sellerId", Reason: "unknown seller"}
	}
	return nil
}

func sellerIndex(ds models.Dataset, id string) int {
	for i, s := range ds.Sellers {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func quickItemIndex(ds models.Dataset, id string) int {
	for i, item := range ds.QuickItems {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func soldItemIndex(ds models.Dataset, id string) int {
	for i, item := range ds.SoldItems {
		if item.ID == id {
			return i
		}
	}
	return -1
}
