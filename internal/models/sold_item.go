package models

// SoldItem is a permanent ledger record of a completed sale line.
type SoldItem struct {
	// ID is the unique identifier for the sold item.
	ID string `json:"id"`

	// Name is the optional description entered at sale time.
	Name string `json:"name"`

	// Amount is the sale price, rounded to 2 decimal places.
	Amount float64 `json:"amount"`

	// SellerID references the Seller credited with the sale.
	SellerID string `json:"sellerId"`

	// Timestamp is the Unix time in milliseconds when the sale was confirmed.
	Timestamp int64 `json:"timestamp"`
}

// LineItem is an entry in the pending transaction.
// Its ID is ephemeral: confirmation mints a SoldItem with a new ID.
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	SellerID string  `json:"sellerId"`
}
