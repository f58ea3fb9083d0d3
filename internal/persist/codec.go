// Package persist exports and imports the whole dataset.
//
// The Gateway tries an ordered list of tiers: a native file tier first and
// a modal tier (copy out / paste in) when the environment cannot provide
// file access. Imports are schema-checked before anything is replaced.
package persist

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mmynk/yardsale/internal/models"
)

// SuggestedName is the default file name of an export.
const SuggestedName = "yard_sale_data.json"

// InvalidFormatError is returned when an import payload is not a dataset.
type InvalidFormatError struct {
	Reason string
	Syntax bool // payload is not JSON at all
	Err    error
}

func (e *InvalidFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid data format: %s: %v", e.Reason, e.Err)
	}
	return "invalid data format: " + e.Reason
}

func (e *InvalidFormatError) Unwrap() error { return e.Err }

// Encode renders the dataset as pretty-printed JSON with all three keys.
func Encode(ds models.Dataset) ([]byte, error) {
	data, err := json.MarshalIndent(ds.Clone(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode dataset: %w", err)
	}
	return data, nil
}

// Decode parses an import payload. The payload must be an object whose
// sellers, quickItems and soldItems keys are all present lists of
// well-typed elements; anything else is an InvalidFormatError.
func Decode(data []byte) (*models.Dataset, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		if !json.Valid(data) {
			return nil, &InvalidFormatError{Reason: "payload is not valid JSON", Syntax: true, Err: err}
		}
		return nil, &InvalidFormatError{Reason: "payload must be an object", Err: err}
	}
	if top == nil {
		return nil, &InvalidFormatError{Reason: "payload must be an object"}
	}

	ds := &models.Dataset{}
	fields := []struct {
		key  string
		dest any
	}{
		{"sellers", &ds.Sellers},
		{"quickItems", &ds.QuickItems},
		{"soldItems", &ds.SoldItems},
	}
	for _, f := range fields {
		raw, ok := top[f.key]
		if !ok {
			return nil, &InvalidFormatError{Reason: fmt.Sprintf("missing %q", f.key)}
		}
		if !isList(raw) {
			return nil, &InvalidFormatError{Reason: fmt.Sprintf("%q must be a list", f.key)}
		}
		if err := json.Unmarshal(raw, f.dest); err != nil {
			return nil, &InvalidFormatError{Reason: fmt.Sprintf("%q has malformed elements", f.key), Err: err}
		}
	}

	loaded := ds.Clone()
	return &loaded, nil
}

func isList(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

