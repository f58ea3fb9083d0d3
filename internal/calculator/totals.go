package calculator

import "github.com/mmynk/yardsale/internal/models"

// SellerTotal is the sales summary for one seller.
type SellerTotal struct {
	SellerID string
	Name     string
	Total    float64 // Sum of the seller's sold items, rounded
	Items    int     // Number of sold items credited to the seller
}

// SalesPerSeller computes the total sales of every seller, in seller order.
// Sellers with no sales are reported with a zero total.
// Sold items referencing unknown sellers are not attributed to anyone.
func SalesPerSeller(ds models.Dataset) []SellerTotal {
	amounts := make(map[string][]float64, len(ds.Sellers))
	for _, item := range ds.SoldItems {
		amounts[item.SellerID] = append(amounts[item.SellerID], item.Amount)
	}

	totals := make([]SellerTotal, len(ds.Sellers))
	for i, s := range ds.Sellers {
		totals[i] = SellerTotal{
			SellerID: s.ID,
			Name:     s.Name,
			Total:    Sum(amounts[s.ID]...),
			Items:    len(amounts[s.ID]),
		}
	}
	return totals
}

// GrandTotal sums per-seller totals.
func GrandTotal(totals []SellerTotal) float64 {
	amounts := make([]float64, len(totals))
	for i, t := range totals {
		amounts[i] = t.Total
	}
	return Sum(amounts...)
}

// TransactionTotal sums the pending line items of a transaction.
func TransactionTotal(lines []models.LineItem) float64 {
	amounts := make([]float64, len(lines))
	for i, l := range lines {
		amounts[i] = l.Amount
	}
	return Sum(amounts...)
}
