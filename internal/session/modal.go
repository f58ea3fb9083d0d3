package session

import (
	"context"

	"github.com/mmynk/yardsale/internal/persist"
)

const modalTierName = "modal"

// pasteModal is the non-blocking fallback surface. Save publishes the text
// for the client to copy; Load opens the paste area and returns
// ErrAwaitingInput, leaving SubmitPaste to finish the import.
// It is only touched with the session mutex held.
type pasteModal struct {
	exported string
	pasting  bool
}

func (m *pasteModal) Present(_ context.Context, text string) error {
	m.exported = text
	return nil
}

func (m *pasteModal) Collect(_ context.Context) (string, error) {
	m.pasting = true
	return "", persist.ErrAwaitingInput
}

func (m *pasteModal) close() {
	m.exported = ""
	m.pasting = false
}
