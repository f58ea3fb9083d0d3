// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mmynk/yardsale/internal/models"
)

// Slot names one of the three durable collections.
type Slot string

const (
	SlotSellers    Slot = "yardSaleSellers"
	SlotQuickItems Slot = "yardSaleQuickItems"
	SlotSoldItems  Slot = "yardSaleSoldItems"
)

// AllSlots lists every slot in dataset order.
var AllSlots = []Slot{SlotSellers, SlotQuickItems, SlotSoldItems}

// Store defines the interface for dataset storage operations.
// This abstraction allows swapping storage backends (SQLite, memory)
// without changing the engines.
type Store interface {
	// Load reads every slot once. Missing slots load as empty collections.
	Load(ctx context.Context) (*models.Dataset, error)

	// Write replaces the given slots with the matching collections of ds.
	// Either every listed slot is written or none is.
	Write(ctx context.Context, ds *models.Dataset, slots ...Slot) error

	// Close releases any resources held by the store.
	Close() error
}

// EncodeSlot marshals one collection of ds as a compact JSON array.
func EncodeSlot(ds *models.Dataset, slot Slot) ([]byte, error) {
	c := ds.Clone()
	var v any
	switch slot {
	case SlotSellers:
		v = c.Sellers
	case SlotQuickItems:
		v = c.QuickItems
	case SlotSoldItems:
		v = c.SoldItems
	default:
		return nil, fmt.Errorf("unknown slot: %s", slot)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode slot %s: %w", slot, err)
	}
	return data, nil
}

// DecodeSlot unmarshals a JSON array into the matching collection of ds.
func DecodeSlot(ds *models.Dataset, slot Slot, data []byte) error {
	var err error
	switch slot {
	case SlotSellers:
		err = json.Unmarshal(data, &ds.Sellers)
	case SlotQuickItems:
		err = json.Unmarshal(data, &ds.QuickItems)
	case SlotSoldItems:
		err = json.Unmarshal(data, &ds.SoldItems)
	default:
		return fmt.Errorf("unknown slot: %s", slot)
	}
	if err != nil {
		return fmt.Errorf("failed to decode slot %s: %w", slot, err)
	}
	return nil
}
