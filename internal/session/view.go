package session

import (
	"github.com/mmynk/yardsale/internal/calculator"
	"github.com/mmynk/yardsale/internal/models"
	"github.com/mmynk/yardsale/internal/nav"
	"github.com/mmynk/yardsale/internal/service"
)

// View is a snapshot of everything a client renders.
type View struct {
	Screen     nav.Screen         `json:"screen"`
	Status     string             `json:"status,omitempty"`
	Sellers    []models.Seller    `json:"sellers"`
	QuickItems []QuickItemView    `json:"quickItems"`
	SoldItems  []SoldItemView     `json:"soldItems"` // Newest first, filtered
	Totals     []TotalView        `json:"totals"`
	GrandTotal Amount             `json:"grandTotal"`
	Filter     string             `json:"filter,omitempty"`
	Checkout   *CheckoutView      `json:"checkout,omitempty"`
	Edits      []EditView         `json:"edits,omitempty"`
	Prefill    *service.ItemDraft `json:"prefill,omitempty"`
	Export     string             `json:"export,omitempty"`
	Pasting    bool               `json:"pasting"`
}

// Amount carries a rounded value with its display form.
type Amount struct {
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

func amountOf(v float64) Amount {
	return Amount{Value: v, Display: calculator.Format(v)}
}

type QuickItemView struct {
	models.QuickItem
	SellerName string `json:"sellerName"`
	Display    string `json:"display"`
}

type SoldItemView struct {
	models.SoldItem
	SellerName string `json:"sellerName"`
	Display    string `json:"display"`
}

type TotalView struct {
	SellerID string `json:"sellerId"`
	Name     string `json:"name"`
	Items    int    `json:"items"`
	Total    Amount `json:"total"`
}

type LineView struct {
	models.LineItem
	SellerName string `json:"sellerName"`
	Display    string `json:"display"`
}

// CheckoutView is the transaction screen. It is present only on that screen.
type CheckoutView struct {
	SelectedSeller string     `json:"selectedSeller,omitempty"`
	ItemName       string     `json:"itemName,omitempty"`
	Lines          []LineView `json:"lines"`
	Total          Amount     `json:"total"`
	QuickAmounts   []string   `json:"quickAmounts"`
}

type EditView struct {
	Kind  EditKind          `json:"kind"`
	ID    string            `json:"id"`
	Draft service.ItemDraft `json:"draft"`
}

// View renders the session. The quick item prefill is handed out once.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds := s.state.Dataset()
	v := View{
		Screen:     s.nav.Current(),
		Status:     s.status,
		Sellers:    ds.Sellers,
		QuickItems: make([]QuickItemView, 0, len(ds.QuickItems)),
		Filter:     s.filter,
		Prefill:    s.prefill,
		Export:     s.modal.exported,
		Pasting:    s.modal.pasting,
	}
	s.prefill = nil

	for _, item := range ds.QuickItems {
		v.QuickItems = append(v.QuickItems, QuickItemView{
			QuickItem:  item,
			SellerName: ds.SellerName(item.SellerID),
			Display:    calculator.Format(item.Amount),
		})
	}

	recent := ds.RecentSoldItems(s.filter)
	v.SoldItems = make([]SoldItemView, 0, len(recent))
	for _, item := range recent {
		v.SoldItems = append(v.SoldItems, SoldItemView{
			SoldItem:   item,
			SellerName: ds.SellerName(item.SellerID),
			Display:    calculator.Format(item.Amount),
		})
	}

	totals := calculator.SalesPerSeller(ds)
	v.Totals = make([]TotalView, 0, len(totals))
	for _, t := range totals {
		v.Totals = append(v.Totals, TotalView{
			SellerID: t.SellerID,
			Name:     t.Name,
			Items:    t.Items,
			Total:    amountOf(t.Total),
		})
	}
	v.GrandTotal = amountOf(calculator.GrandTotal(totals))

	if v.Screen == nav.Transaction {
		lines := s.tx.Lines()
		checkout := &CheckoutView{
			SelectedSeller: s.tx.SelectedSeller(),
			ItemName:       s.itemName,
			Lines:          make([]LineView, 0, len(lines)),
			Total:          amountOf(s.tx.Total()),
			QuickAmounts:   service.QuickAmounts,
		}
		for _, line := range lines {
			checkout.Lines = append(checkout.Lines, LineView{
				LineItem:   line,
				SellerName: ds.SellerName(line.SellerID),
				Display:    calculator.Format(line.Amount),
			})
		}
		v.Checkout = checkout
	}

	if id, ok := s.sellerEdit.Active(); ok {
		v.Edits = append(v.Edits, EditView{Kind: EditSeller, ID: id, Draft: service.ItemDraft{Name: s.sellerEdit.Draft().Name}})
	}
	if id, ok := s.quickEdit.Active(); ok {
		v.Edits = append(v.Edits, EditView{Kind: EditQuickItem, ID: id, Draft: s.quickEdit.Draft()})
	}
	if id, ok := s.soldEdit.Active(); ok {
		v.Edits = append(v.Edits, EditView{Kind: EditSoldItem, ID: id, Draft: s.soldEdit.Draft()})
	}
	return v
}
