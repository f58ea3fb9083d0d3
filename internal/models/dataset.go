package models

import "sort"

// UnknownSellerName is shown for seller IDs missing from the dataset.
const UnknownSellerName = "Unknown Seller"

// Dataset is the full persisted aggregate of sellers, quick items and sold items.
// Collections keep insertion order.
type Dataset struct {
	Sellers    []Seller    `json:"sellers"`
	QuickItems []QuickItem `json:"quickItems"`
	SoldItems  []SoldItem  `json:"soldItems"`
}

// Clone returns a deep copy of the dataset. Nil collections become empty ones,
// so a cloned dataset always encodes as three JSON arrays.
func (d Dataset) Clone() Dataset {
	return Dataset{
		Sellers:    append(make([]Seller, 0, len(d.Sellers)), d.Sellers...),
		QuickItems: append(make([]QuickItem, 0, len(d.QuickItems)), d.QuickItems...),
		SoldItems:  append(make([]SoldItem, 0, len(d.SoldItems)), d.SoldItems...),
	}
}

// Seller returns the seller with the given ID.
func (d Dataset) Seller(id string) (Seller, bool) {
	for _, s := range d.Sellers {
		if s.ID == id {
			return s, true
		}
	}
	return Seller{}, false
}

// SellerName returns the name of the seller, or UnknownSellerName.
func (d Dataset) SellerName(id string) string {
	if s, ok := d.Seller(id); ok {
		return s.Name
	}
	return UnknownSellerName
}

// SoldItemsBySeller counts the sold items referencing the seller.
func (d Dataset) SoldItemsBySeller(sellerID string) int {
	n := 0
	for _, item := range d.SoldItems {
		if item.SellerID == sellerID {
			n++
		}
	}
	return n
}

// RecentSoldItems returns the sold items most recent first.
// A non-empty sellerID keeps only that seller's items.
func (d Dataset) RecentSoldItems(sellerID string) []SoldItem {
	items := make([]SoldItem, 0, len(d.SoldItems))
	for _, item := range d.SoldItems {
		if sellerID == "" || item.SellerID == sellerID {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp > items[j].Timestamp
	})
	return items
}
