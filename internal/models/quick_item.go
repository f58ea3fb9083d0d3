package models

// QuickItem is a reusable preset for fast transaction entry.
type QuickItem struct {
	// ID is the unique identifier for the quick item.
	ID string `json:"id"`

	// Name is optional and defaults to "".
	Name string `json:"name"`

	// Amount is the preset price, rounded to 2 decimal places.
	Amount float64 `json:"amount"`

	// SellerID references the Seller the preset sells for.
	SellerID string `json:"sellerId"`
}
