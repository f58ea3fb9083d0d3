package service

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/mmynk/yardsale/internal/calculator"
	"github.com/mmynk/yardsale/internal/models"
	"github.com/mmynk/yardsale/internal/state"
	"github.com/mmynk/yardsale/internal/storage"
)

// QuickAmounts are the preset amounts offered on the transaction screen.
var QuickAmounts = []string{"0.25", "0.50", "1", "2", "3", "5", "10", "20"}

// Transaction builds the pending purchase. Its state is ephemeral: nothing
// is persisted until Confirm.
type Transaction struct {
	state    *state.Container
	selected string
	pending  []models.LineItem
	now      func() time.Time
}

// NewTransaction creates an empty transaction over the given container.
func NewTransaction(c *state.Container) *Transaction {
	return &Transaction{state: c, now: time.Now}
}

// SelectSeller toggles the selected seller. Selecting the selected seller
// clears the selection. It returns the resulting selection.
func (t *Transaction) SelectSeller(id string) (string, error) {
	if id == t.selected {
		t.selected = ""
		return "", nil
	}
	if sellerIndex(t.state.Dataset(), id) < 0 {
		return t.selected, &ValidationError{Field: "sellerId", Reason: "unknown seller"}
	}
	t.selected = id
	return id, nil
}

// SelectedSeller returns the selected seller ID, or "".
func (t *Transaction) SelectedSeller() string {
	return t.selected
}

// AddLine appends a pending line item. The effective seller is sellerID when
// set (quick items carry their own) and the selected seller otherwise.
func (t *Transaction) AddLine(amount float64, name, sellerID string) (models.LineItem, error) {
	if sellerID == "" {
		sellerID = t.selected
	}
	if sellerID == "" || !(amount > 0) || math.IsInf(amount, 0) {
		return models.LineItem{}, ErrNoSellerSelected
	}
	if sellerIndex(t.state.Dataset(), sellerID) < 0 {
		return models.LineItem{}, &ValidationError{Field: "sellerId", Reason: "unknown seller"}
	}

	line := models.LineItem{
		ID:       newID(prefixLine),
		Name:     strings.TrimSpace(name),
		Amount:   calculator.Round(amount),
		SellerID: sellerID,
	}
	t.pending = append(t.pending, line)

	slog.Debug("Line added", "line_id", line.ID, "amount", line.Amount, "seller_id", sellerID)
	return line, nil
}

// AddQuickItem adds a quick item as a line with its own name and seller.
func (t *Transaction) AddQuickItem(item models.QuickItem) (models.LineItem, error) {
	return t.AddLine(item.Amount, item.Name, item.SellerID)
}

// RemoveLine drops a pending line item. Unknown IDs are ignored.
func (t *Transaction) RemoveLine(id string) {
	for i, line := range t.pending {
		if line.ID == id {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the pending line items.
func (t *Transaction) Lines() []models.LineItem {
	return append([]models.LineItem(nil), t.pending...)
}

// Total sums the pending amounts. It is recomputed on every call.
func (t *Transaction) Total() float64 {
	return calculator.TransactionTotal(t.pending)
}

// Confirm commits every pending line as a new sold item in one batch and
// clears the transaction. An empty transaction is a no-op returning nil.
func (t *Transaction) Confirm(ctx context.Context) ([]models.SoldItem, error) {
	if len(t.pending) == 0 {
		return nil, nil
	}

	ts := t.now().UnixMilli()
	sold := make([]models.SoldItem, len(t.pending))
	for i, line := range t.pending {
		sold[i] = models.SoldItem{
			ID:        newID(prefixSold),
			Name:      line.Name,
			Amount:    line.Amount,
			SellerID:  line.SellerID,
			Timestamp: ts,
		}
	}

	ds := t.state.Dataset()
	ds.SoldItems = append(ds.SoldItems, sold...)
	if err := t.state.Commit(ctx, ds, storage.SlotSoldItems); err != nil {
		return nil, err
	}

	slog.Info("Transaction confirmed", "items_count", len(sold), "total", t.Total())
	t.pending = nil
	return sold, nil
}

// Cancel discards the pending line items after confirmation.
func (t *Transaction) Cancel(ctx context.Context, c Confirmer) error {
	if err := confirm(ctx, c, PromptCancelTransaction); err != nil {
		return err
	}
	slog.Info("Transaction cancelled", "items_count", len(t.pending))
	t.pending = nil
	return nil
}

// Reset clears the selection and the pending line items.
func (t *Transaction) Reset() {
	t.selected = ""
	t.pending = nil
}

// SellerDeleted clears a selection of the deleted seller and drops its lines.
func (t *Transaction) SellerDeleted(sellerID string) {
	if t.selected == sellerID {
		t.selected = ""
	}
	kept := t.pending[:0]
	for _, line := range t.pending {
		if line.SellerID != sellerID {
			kept = append(kept, line)
		}
	}
	t.pending = kept
}
