package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/yardsale/internal/models"
	"github.com/mmynk/yardsale/internal/storage"
)

// setupTestStore opens a store in a fresh temp directory
func setupTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "yardsale-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestSQLiteStore(t *testing.T) {
	store, dbPath := setupTestStore(t)
	ctx := context.Background()

	t.Run("Load on empty database returns empty collections", func(t *testing.T) {
		ds, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if ds.Sellers == nil || ds.QuickItems == nil || ds.SoldItems == nil {
			t.Errorf("Expected non-nil empty collections, got %+v", ds)
		}
		if len(ds.Sellers)+len(ds.QuickItems)+len(ds.SoldItems) != 0 {
			t.Errorf("Expected empty dataset, got %+v", ds)
		}
	})

	t.Run("Write then Load round-trips every slot", func(t *testing.T) {
		original := &models.Dataset{
			Sellers:    []models.Seller{{ID: "s1", Name: "Alice"}, {ID: "s2", Name: "Bob"}},
			QuickItems: []models.QuickItem{{ID: "q1", Name: "Mug", Amount: 2.5, SellerID: "s1"}},
			SoldItems:  []models.SoldItem{{ID: "x1", Name: "Lamp", Amount: 12, SellerID: "s2", Timestamp: 1700000000000}},
		}

		if err := store.Write(ctx, original, storage.AllSlots...); err != nil {
			t.Fatalf("Write failed: %v", err)
		}

		loaded, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(loaded.Sellers) != 2 || loaded.Sellers[1].Name != "Bob" {
			t.Errorf("sellers: expected Alice and Bob, got %+v", loaded.Sellers)
		}
		if len(loaded.QuickItems) != 1 || loaded.QuickItems[0] != original.QuickItems[0] {
			t.Errorf("quick items: expected %+v, got %+v", original.QuickItems, loaded.QuickItems)
		}
		if len(loaded.SoldItems) != 1 || loaded.SoldItems[0] != original.SoldItems[0] {
			t.Errorf("sold items: expected %+v, got %+v", original.SoldItems, loaded.SoldItems)
		}
	})

	t.Run("Write touches only the listed slots", func(t *testing.T) {
		next := &models.Dataset{
			Sellers: []models.Seller{{ID: "s3", Name: "Carol"}},
		}
		if err := store.Write(ctx, next, storage.SlotSellers); err != nil {
			t.Fatalf("Write failed: %v", err)
		}

		loaded, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(loaded.Sellers) != 1 || loaded.Sellers[0].ID != "s3" {
			t.Errorf("sellers: expected only Carol, got %+v", loaded.Sellers)
		}
		if len(loaded.QuickItems) != 1 {
			t.Errorf("quick items: expected 1 untouched, got %+v", loaded.QuickItems)
		}
	})

	t.Run("Empty collections are stored as JSON arrays", func(t *testing.T) {
		if err := store.Write(ctx, &models.Dataset{}, storage.SlotQuickItems); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		raw, err := store.RawSlot(ctx, storage.SlotQuickItems)
		if err != nil {
			t.Fatalf("RawSlot failed: %v", err)
		}
		if raw != "[]" {
			t.Errorf("Expected [] for empty slot, got %q", raw)
		}
	})

	t.Run("Data survives reopening the database", func(t *testing.T) {
		store.Close()

		reopened, err := New(dbPath)
		if err != nil {
			t.Fatalf("Reopen failed: %v", err)
		}
		defer reopened.Close()

		loaded, err := reopened.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(loaded.Sellers) != 1 || loaded.Sellers[0].Name != "Carol" {
			t.Errorf("Expected persisted seller Carol, got %+v", loaded.Sellers)
		}
		if len(loaded.SoldItems) != 1 {
			t.Errorf("Expected persisted sold item, got %+v", loaded.SoldItems)
		}
	})
}

func TestWriteUnknownSlot(t *testing.T) {
	store, _ := setupTestStore(t)

	err := store.Write(context.Background(), &models.Dataset{}, storage.SlotSellers, storage.Slot("bogus"))
	if err == nil {
		t.Fatal("Expected error for unknown slot, got nil")
	}

	raw, err := store.RawSlot(context.Background(), storage.SlotSellers)
	if err != nil {
		t.Fatalf("RawSlot failed: %v", err)
	}
	if raw != "" {
		t.Errorf("Expected rollback to leave sellers unwritten, got %q", raw)
	}
}
