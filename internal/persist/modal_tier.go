package persist

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Modal is the fallback surface: a read-only text area with a copy action
// for exports and an editable text area with a confirm action for imports.
type Modal interface {
	// Present shows the exported text.
	Present(ctx context.Context, text string) error
	// Collect returns the text the user pasted and confirmed.
	Collect(ctx context.Context) (string, error)
}

// ModalTier moves the payload through a Modal.
type ModalTier struct {
	Modal Modal
}

func (ModalTier) Name() string { return "modal" }

func (t ModalTier) Save(ctx context.Context, payload []byte) error {
	return t.Modal.Present(ctx, string(payload))
}

func (t ModalTier) Load(ctx context.Context) ([]byte, error) {
	text, err := t.Modal.Collect(ctx)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// StreamModal presents exports on Out and collects imports from In.
// The CLI uses it with stdout and stdin.
type StreamModal struct {
	In  io.Reader
	Out io.Writer
}

func (m StreamModal) Present(_ context.Context, text string) error {
	_, err := fmt.Fprintln(m.Out, text)
	return err
}

func (m StreamModal) Collect(_ context.Context) (string, error) {
	data, err := io.ReadAll(m.In)
	if err != nil {
		return "", fmt.Errorf("failed to read pasted data: %w", err)
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", ErrUserCancelled
	}
	return text, nil
}
