package service

import (
	"errors"
	"fmt"
)

// ValidationError reports input that blocks an operation: a blank required
// field, a non-positive amount or a missing seller. Nothing is mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ErrNoSellerSelected is returned when a line item has no effective seller
// or a non-positive amount.
var ErrNoSellerSelected = &ValidationError{
	Field:  "seller",
	Reason: "select a seller for custom items, or add a seller in settings",
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// GuardedDeleteError is returned when a seller still has sold items.
type GuardedDeleteError struct {
	SellerID  string
	SoldItems int
}

func (e *GuardedDeleteError) Error() string {
	return "Cannot delete seller: This seller has associated sold items. Please remove them first."
}

var (
	// ErrNotFound is returned when the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotConfirmed is returned when the user declines a destructive action.
	ErrNotConfirmed = errors.New("not confirmed")

	// ErrNoEdit is returned when an edit session is used before Begin.
	ErrNoEdit = errors.New("no edit in progress")
)
