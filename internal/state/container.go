// Package state owns the single in-memory dataset of a session.
//
// Every mutation goes through Commit: the touched slots are written to the
// durable store first and the in-memory dataset is swapped only when that
// write succeeds, so a failed write leaves both sides unchanged.
package state

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/yardsale/internal/models"
	"github.com/mmynk/yardsale/internal/storage"
)

// Container holds the dataset and mirrors every change to a Store.
// It is not safe for concurrent use; callers serialise access.
type Container struct {
	store storage.Store
	data  models.Dataset
}

// Open reads the dataset from the store once.
func Open(ctx context.Context, store storage.Store) (*Container, error) {
	ds, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	slog.Debug("Dataset loaded",
		"sellers", len(ds.Sellers),
		"quick_items", len(ds.QuickItems),
		"sold_items", len(ds.SoldItems),
	)
	return &Container{store: store, data: ds.Clone()}, nil
}

// Dataset returns a deep copy of the current dataset.
func (c *Container) Dataset() models.Dataset {
	return c.data.Clone()
}

// Commit persists the given slots of next and then makes next current.
func (c *Container) Commit(ctx context.Context, next models.Dataset, slots ...storage.Slot) error {
	next = next.Clone()
	if err := c.store.Write(ctx, &next, slots...); err != nil {
		slog.Error("Dataset write failed", "slots", slots, "error", err)
		return fmt.Errorf("failed to persist dataset: %w", err)
	}
	c.data = next
	return nil
}

// Replace swaps the whole dataset, writing all three slots.
func (c *Container) Replace(ctx context.Context, next models.Dataset) error {
	return c.Commit(ctx, next, storage.AllSlots...)
}
