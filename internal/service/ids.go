package service

import "github.com/google/uuid"

// ID prefixes keep ids readable in exports.
const (
	prefixSeller    = "seller"
	prefixQuickItem = "quick"
	prefixLine      = "line"
	prefixSold      = "sold"
)

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
