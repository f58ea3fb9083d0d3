// Package session drives one yard sale session: it owns the engines, the
// navigator and the persistence gateway, and turns every outcome into the
// status message shown to the user.
//
// All operations run under one mutex, so concurrent callers observe the
// same run-to-completion order as a single user clicking through screens.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/yardsale/internal/calculator"
	"github.com/mmynk/yardsale/internal/metrics"
	"github.com/mmynk/yardsale/internal/models"
	"github.com/mmynk/yardsale/internal/nav"
	"github.com/mmynk/yardsale/internal/persist"
	"github.com/mmynk/yardsale/internal/service"
	"github.com/mmynk/yardsale/internal/state"
)

// Status messages.
const (
	StatusSellerDeleted        = "Seller and associated quick items deleted successfully."
	StatusQuickItemDeleted     = "Quick item deleted successfully."
	StatusSoldItemDeleted      = "Sold item deleted successfully."
	StatusPrefilled            = "Quick item form pre-filled from sold item. Review and add."
	StatusNoSellerSelected     = "Error: Select a seller for custom items, or add a seller in settings."
	StatusPurchaseConfirmed    = "Purchase confirmed! Items added to sales report."
	StatusTransactionCancelled = "Transaction cancelled. Items removed from current transaction."
	StatusSaved                = "Data saved successfully!"
	StatusSaveCancelled        = "Save operation cancelled."
	StatusSaveToModal          = "Direct file saving not available. Copy data to clipboard instead."
	StatusLoaded               = "Data loaded successfully!"
	StatusLoadInvalid          = "Invalid data format in file."
	StatusLoadCancelled        = "Load operation cancelled."
	StatusLoadToModal          = "Direct file loading not available. Please paste data below."
	StatusPasteLoaded          = "Data loaded successfully from pasted JSON!"
	StatusPasteInvalid         = "Invalid data format in pasted JSON."
	StatusPasteSyntax          = "Invalid JSON format. Please check your pasted data."
)

// EditKind selects which edit session an edit call targets.
type EditKind string

const (
	EditSeller    EditKind = "seller"
	EditQuickItem EditKind = "quickItem"
	EditSoldItem  EditKind = "soldItem"
)

// ErrUnknownEditKind is returned for edit calls with an unsupported kind.
var ErrUnknownEditKind = errors.New("unknown edit kind")

// Options configures a Session.
type Options struct {
	// Tiers are tried before the built-in paste modal on save and load.
	Tiers []persist.Tier
	// Metrics may be nil.
	Metrics *metrics.Metrics
}

// Session is the single-user application state.
type Session struct {
	mu sync.Mutex

	state    *state.Container
	registry *service.Registry
	tx       *service.Transaction
	ledger   *service.Ledger
	nav      *nav.Navigator
	gateway  *persist.Gateway
	modal    *pasteModal
	metrics  *metrics.Metrics

	status   string
	filter   string
	itemName string
	prefill  *service.ItemDraft

	sellerEdit service.EditSession[service.SellerDraft]
	quickEdit  service.EditSession[service.ItemDraft]
	soldEdit   service.EditSession[service.ItemDraft]
}

// New creates a session over an opened container.
func New(c *state.Container, opts Options) *Session {
	s := &Session{
		state:    c,
		registry: service.NewRegistry(c),
		tx:       service.NewTransaction(c),
		ledger:   service.NewLedger(c),
		modal:    &pasteModal{},
		metrics:  opts.Metrics,
	}
	s.registry.Observe(s.tx)

	tiers := append(append([]persist.Tier(nil), opts.Tiers...), persist.ModalTier{Modal: s.modal})
	s.gateway = persist.New(tiers...)

	ds := c.Dataset()
	s.nav = nav.New(len(ds.Sellers), s.resetTransaction)
	s.metrics.SetDatasetSize(len(ds.Sellers), len(ds.QuickItems), len(ds.SoldItems))
	return s
}

// resetTransaction runs on every entry to Home and on starting a transaction.
func (s *Session) resetTransaction() {
	s.tx.Reset()
	s.itemName = ""
}

// sync re-applies the invariants that depend on the dataset after a mutation.
func (s *Session) sync() {
	ds := s.state.Dataset()
	s.nav.Sync(len(ds.Sellers))
	if s.filter != "" {
		if _, ok := ds.Seller(s.filter); !ok {
			s.filter = ""
		}
	}
	s.metrics.SetDatasetSize(len(ds.Sellers), len(ds.QuickItems), len(ds.SoldItems))
}

// --- Settings ---

// AddSeller adds a seller by name.
func (s *Session) AddSeller(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.registry.AddSeller(ctx, name); err != nil {
		return err
	}
	s.sync()
	return nil
}

// DeleteSeller deletes a seller and its quick items. confirmed carries the
// user's answer to the confirmation prompt; sellers with sold items are
// refused before the prompt matters.
func (s *Session) DeleteSeller(ctx context.Context, id string, confirmed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.registry.DeleteSeller(ctx, id, service.Confirmed(confirmed))
	var guard *service.GuardedDeleteError
	switch {
	case errors.As(err, &guard):
		s.status = guard.Error()
		return err
	case errors.Is(err, service.ErrNotConfirmed):
		return nil
	case err != nil:
		return err
	}

	if editID, ok := s.sellerEdit.Active(); ok && editID == id {
		s.sellerEdit.Discard()
	}
	// The cascade may have taken the quick item under edit with it.
	if editID, ok := s.quickEdit.Active(); ok && !s.hasQuickItem(editID) {
		s.quickEdit.Discard()
	}
	if s.prefill != nil && s.prefill.SellerID == id {
		s.prefill = nil
	}
	s.status = StatusSellerDeleted
	s.sync()
	return nil
}

// AddQuickItem adds a quick item from form input.
func (s *Session) AddQuickItem(ctx context.Context, name, amount, sellerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := parseAmount(amount)
	if err != nil {
		return err
	}
	if _, err := s.registry.AddQuickItem(ctx, name, value, sellerID); err != nil {
		return err
	}
	s.sync()
	return nil
}

// DeleteQuickItem deletes a quick item when confirmed.
func (s *Session) DeleteQuickItem(ctx context.Context, id string, confirmed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.registry.DeleteQuickItem(ctx, id, service.Confirmed(confirmed))
	if errors.Is(err, service.ErrNotConfirmed) {
		return nil
	}
	if err != nil {
		return err
	}
	if editID, ok := s.quickEdit.Active(); ok && editID == id {
		s.quickEdit.Discard()
	}
	s.status = StatusQuickItemDeleted
	s.sync()
	return nil
}

// --- Home ---

// DeleteSoldItem removes a sold item from the ledger.
func (s *Session) DeleteSoldItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ledger.DeleteSoldItem(ctx, id); err != nil {
		return err
	}
	if editID, ok := s.soldEdit.Active(); ok && editID == id {
		s.soldEdit.Discard()
	}
	s.status = StatusSoldItemDeleted
	s.sync()
	return nil
}

// QuickItemFromSoldItem pre-fills the quick item form from a sold item and
// opens Settings.
func (s *Session) QuickItemFromSoldItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.ledger.SoldItem(id)
	if err != nil {
		return err
	}
	s.prefill = &service.ItemDraft{
		Name:     item.Name,
		Amount:   calculator.FormatInput(item.Amount),
		SellerID: item.SellerID,
	}
	if s.nav.Current() != nav.Settings {
		if err := s.nav.OpenSettings(); err != nil {
			return err
		}
	}
	s.status = StatusPrefilled
	return nil
}

// ToggleFilter filters the sold items list by seller. Selecting the active
// filter clears it.
func (s *Session) ToggleFilter(sellerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sellerID == s.filter {
		s.filter = ""
		return nil
	}
	if _, ok := s.state.Dataset().Seller(sellerID); !ok {
		return fmt.Errorf("seller %s: %w", sellerID, service.ErrNotFound)
	}
	s.filter = sellerID
	return nil
}

// --- Edits ---

// BeginEdit starts editing an entity, seeding the draft from its current values.
func (s *Session) BeginEdit(kind EditKind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds := s.state.Dataset()
	switch kind {
	case EditSeller:
		seller, ok := ds.Seller(id)
		if !ok {
			return fmt.Errorf("seller %s: %w", id, service.ErrNotFound)
		}
		s.sellerEdit.Begin(id, service.SellerDraft{Name: seller.Name})
	case EditQuickItem:
		for _, item := range ds.QuickItems {
			if item.ID == id {
				s.quickEdit.Begin(id, draftOf(item.Name, item.Amount, item.SellerID))
				return nil
			}
		}
		return fmt.Errorf("quick item %s: %w", id, service.ErrNotFound)
	case EditSoldItem:
		item, err := s.ledger.SoldItem(id)
		if err != nil {
			return err
		}
		s.soldEdit.Begin(id, draftOf(item.Name, item.Amount, item.SellerID))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEditKind, kind)
	}
	return nil
}

// UpdateDraft replaces the draft of an edit in progress. Seller edits use
// only the name.
func (s *Session) UpdateDraft(kind EditKind, draft service.ItemDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case EditSeller:
		return s.sellerEdit.Update(service.SellerDraft{Name: draft.Name})
	case EditQuickItem:
		return s.quickEdit.Update(draft)
	case EditSoldItem:
		return s.soldEdit.Update(draft)
	}
	return fmt.Errorf("%w: %q", ErrUnknownEditKind, kind)
}

// SaveEdit applies the draft. The edit stays open when the draft is rejected.
func (s *Session) SaveEdit(ctx context.Context, kind EditKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	switch kind {
	case EditSeller:
		err = s.sellerEdit.Commit(func(id string, d service.SellerDraft) error {
			return s.registry.EditSeller(ctx, id, d.Name)
		})
	case EditQuickItem:
		err = s.quickEdit.Commit(func(id string, d service.ItemDraft) error {
			amount, err := parseAmount(d.Amount)
			if err != nil {
				return err
			}
			return s.registry.EditQuickItem(ctx, id, d.Name, amount, d.SellerID)
		})
	case EditSoldItem:
		err = s.soldEdit.Commit(func(id string, d service.ItemDraft) error {
			amount, err := parseAmount(d.Amount)
			if err != nil {
				return err
			}
			return s.ledger.EditSoldItem(ctx, id, d.Name, amount, d.SellerID)
		})
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownEditKind, kind)
	}
	if err != nil {
		return err
	}
	s.sync()
	return nil
}

// CancelEdit discards an edit in progress.
func (s *Session) CancelEdit(kind EditKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case EditSeller:
		s.sellerEdit.Discard()
	case EditQuickItem:
		s.quickEdit.Discard()
	case EditSoldItem:
		s.soldEdit.Discard()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEditKind, kind)
	}
	return nil
}

// --- Navigation ---

// OpenSettings moves to Settings.
func (s *Session) OpenSettings() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = ""
	return s.nav.OpenSettings()
}

// Back leaves Settings.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.nav.Back(); err != nil {
		return err
	}
	s.status = ""
	s.sync()
	return nil
}

// StartTransaction moves from Home to the transaction screen, or to
// Settings with guidance when no sellers exist.
func (s *Session) StartTransaction() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = ""
	err := s.nav.StartTransaction(len(s.state.Dataset().Sellers))
	if errors.Is(err, nav.ErrNoSellers) {
		s.status = nav.NoSellersGuidance
	}
	if err != nil {
		return err
	}
	s.resetTransaction()
	return nil
}

// GoHome returns to Home, discarding the pending transaction.
func (s *Session) GoHome() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = ""
	s.nav.GoHome()
	s.sync()
}

// --- Transaction ---

// inTransaction rejects checkout operations outside the transaction screen.
func (s *Session) inTransaction(op string) error {
	if cur := s.nav.Current(); cur != nav.Transaction {
		return fmt.Errorf("%w: %s from %s", nav.ErrInvalidTransition, op, cur)
	}
	return nil
}

// SelectSeller toggles the selected seller.
func (s *Session) SelectSeller(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inTransaction("select seller"); err != nil {
		return err
	}
	_, err := s.tx.SelectSeller(id)
	return err
}

// SetItemName sets the optional name used for the next amount added.
func (s *Session) SetItemName(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inTransaction("set item name"); err != nil {
		return err
	}
	s.itemName = name
	return nil
}

// AddAmount adds a custom or preset amount for the selected seller, named
// with the current item name.
func (s *Session) AddAmount(amount string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inTransaction("add amount"); err != nil {
		return err
	}
	value, err := parseAmount(amount)
	if err != nil {
		s.status = StatusNoSellerSelected
		return err
	}
	return s.addLine(func() (models.LineItem, error) {
		return s.tx.AddLine(value, s.itemName, "")
	})
}

// AddQuickItemLine adds a quick item with its own name and seller.
func (s *Session) AddQuickItemLine(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inTransaction("add quick item"); err != nil {
		return err
	}
	var item *models.QuickItem
	for _, qi := range s.state.Dataset().QuickItems {
		if qi.ID == id {
			item = &qi
			break
		}
	}
	if item == nil {
		return fmt.Errorf("quick item %s: %w", id, service.ErrNotFound)
	}
	return s.addLine(func() (models.LineItem, error) {
		return s.tx.AddQuickItem(*item)
	})
}

func (s *Session) addLine(add func() (models.LineItem, error)) error {
	if _, err := add(); err != nil {
		if errors.Is(err, service.ErrNoSellerSelected) {
			s.status = StatusNoSellerSelected
		}
		return err
	}
	s.status = ""
	s.itemName = ""
	return nil
}

// RemoveLine drops a pending line item.
func (s *Session) RemoveLine(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inTransaction("remove line"); err != nil {
		return err
	}
	s.tx.RemoveLine(id)
	return nil
}

// Confirm records the pending line items as sold and returns Home.
// An empty transaction does nothing.
func (s *Session) Confirm(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inTransaction("confirm"); err != nil {
		return err
	}
	total := s.tx.Total()
	sold, err := s.tx.Confirm(ctx)
	if err != nil {
		return err
	}
	if len(sold) == 0 {
		return nil
	}

	s.metrics.ObserveConfirmed(len(sold), total)
	s.nav.GoHome()
	s.status = StatusPurchaseConfirmed
	s.sync()
	return nil
}

// Cancel discards the pending transaction when confirmed and returns Home.
func (s *Session) Cancel(ctx context.Context, confirmed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inTransaction("cancel"); err != nil {
		return err
	}
	err := s.tx.Cancel(ctx, service.Confirmed(confirmed))
	if errors.Is(err, service.ErrNotConfirmed) {
		return nil
	}
	if err != nil {
		return err
	}

	s.metrics.ObserveCancelled()
	s.nav.GoHome()
	s.status = StatusTransactionCancelled
	s.sync()
	return nil
}

// --- Persistence ---

// Save exports the dataset through the first supported tier. When it falls
// back to the paste modal, the JSON text is published in the view.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	tier, err := s.gateway.Save(ctx, s.state.Dataset())
	switch {
	case errors.Is(err, persist.ErrUserCancelled):
		s.metrics.ObservePersistence("save", tier, "cancelled", start)
		s.status = StatusSaveCancelled
		return nil
	case err != nil:
		s.metrics.ObservePersistence("save", tier, "error", start)
		s.status = fmt.Sprintf("Error saving data: %v", err)
		return err
	}

	s.metrics.ObservePersistence("save", tier, "ok", start)
	if tier == modalTierName {
		s.status = StatusSaveToModal
	} else {
		s.status = StatusSaved
	}
	return nil
}

// Load imports a dataset through the first supported tier and replaces the
// current one whole. When it falls back to the paste modal, the modal is
// opened and SubmitPaste completes the import.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	ds, tier, err := s.gateway.Load(ctx)
	var invalid *persist.InvalidFormatError
	switch {
	case errors.Is(err, persist.ErrAwaitingInput):
		s.metrics.ObservePersistence("load", tier, "awaiting_input", start)
		s.status = StatusLoadToModal
		return nil
	case errors.Is(err, persist.ErrUserCancelled):
		s.metrics.ObservePersistence("load", tier, "cancelled", start)
		s.status = StatusLoadCancelled
		return nil
	case errors.As(err, &invalid):
		s.metrics.ObservePersistence("load", tier, "invalid", start)
		s.status = StatusLoadInvalid
		return err
	case err != nil:
		s.metrics.ObservePersistence("load", tier, "error", start)
		s.status = fmt.Sprintf("Error loading data: %v. Make sure it's a valid Yard Sale JSON file.", err)
		return err
	}

	if err := s.replace(ctx, *ds); err != nil {
		s.metrics.ObservePersistence("load", tier, "error", start)
		return err
	}
	s.metrics.ObservePersistence("load", tier, "ok", start)
	s.status = StatusLoaded
	return nil
}

// SubmitPaste imports pasted JSON text. The paste modal stays open when the
// text is rejected.
func (s *Session) SubmitPaste(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	ds, err := persist.Decode([]byte(text))
	var invalid *persist.InvalidFormatError
	if errors.As(err, &invalid) {
		s.metrics.ObservePersistence("load", modalTierName, "invalid", start)
		if invalid.Syntax {
			s.status = StatusPasteSyntax
		} else {
			s.status = StatusPasteInvalid
		}
		return err
	}
	if err != nil {
		return err
	}

	if err := s.replace(ctx, *ds); err != nil {
		s.metrics.ObservePersistence("load", modalTierName, "error", start)
		return err
	}
	s.metrics.ObservePersistence("load", modalTierName, "ok", start)
	s.modal.close()
	s.status = StatusPasteLoaded
	slog.Info("Dataset loaded from paste", "sellers", len(ds.Sellers), "sold_items", len(ds.SoldItems))
	return nil
}

// CloseModals dismisses the export and paste modals.
func (s *Session) CloseModals() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.modal.close()
}

// replace swaps in an imported dataset and returns Home. Edits and the
// prefill refer to the old dataset and are dropped.
func (s *Session) replace(ctx context.Context, ds models.Dataset) error {
	if err := s.state.Replace(ctx, ds); err != nil {
		return err
	}
	s.sellerEdit.Discard()
	s.quickEdit.Discard()
	s.soldEdit.Discard()
	s.prefill = nil
	s.filter = ""
	s.nav.GoHome()
	s.sync()
	return nil
}

func (s *Session) hasQuickItem(id string) bool {
	for _, item := range s.state.Dataset().QuickItems {
		if item.ID == id {
			return true
		}
	}
	return false
}

func parseAmount(s string) (float64, error) {
	v, err := calculator.ParseAmount(s)
	if err != nil {
		return 0, &service.ValidationError{Field: "amount", Reason: err.Error()}
	}
	return v, nil
}

func draftOf(name string, amount float64, sellerID string) service.ItemDraft {
	return service.ItemDraft{Name: name, Amount: calculator.FormatInput(amount), SellerID: sellerID}
}
