package models

// Seller represents a participant whose items are being sold.
type Seller struct {
	// ID is the unique identifier for the seller. It never changes once assigned.
	ID string `json:"id"`

	// Name is the display name of the seller. Blank names are rejected at
	// entry time; a loaded dataset may still carry one.
	Name string `json:"name"`
}
