package persist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Picker hands out file handles chosen by the user or the environment.
// It returns ErrUserCancelled when the user dismisses it and
// ErrEnvironmentUnsupported when no file access exists.
type Picker interface {
	Create(ctx context.Context) (io.WriteCloser, error)
	Open(ctx context.Context) (io.ReadCloser, error)
}

// FileTier is the native tier: it reads and writes through a Picker.
// Permission errors count as a sandbox restriction and demote to the next tier.
type FileTier struct {
	Picker Picker
}

func (FileTier) Name() string { return "file" }

func (t FileTier) Save(ctx context.Context, payload []byte) error {
	w, err := t.Picker.Create(ctx)
	if err != nil {
		return classify(err)
	}
	if _, err := w.Write(payload); err != nil {
		w.Close()
		return classify(fmt.Errorf("failed to write export: %w", err))
	}
	if err := w.Close(); err != nil {
		return classify(fmt.Errorf("failed to close export: %w", err))
	}
	return nil
}

func (t FileTier) Load(ctx context.Context) ([]byte, error) {
	r, err := t.Picker.Open(ctx)
	if err != nil {
		return nil, classify(err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to read import: %w", err))
	}
	return data, nil
}

func classify(err error) error {
	if errors.Is(err, fs.ErrPermission) && !errors.Is(err, ErrEnvironmentUnsupported) {
		return fmt.Errorf("%w: %v", ErrEnvironmentUnsupported, err)
	}
	return err
}

// FilePicker always picks the same path. An empty path means the
// environment offers no file access.
type FilePicker struct {
	Path string
}

func (p FilePicker) Create(_ context.Context) (io.WriteCloser, error) {
	if p.Path == "" {
		return nil, fmt.Errorf("%w: no export path configured", ErrEnvironmentUnsupported)
	}
	if err := os.MkdirAll(filepath.Dir(p.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	f, err := os.Create(p.Path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (p FilePicker) Open(_ context.Context) (io.ReadCloser, error) {
	if p.Path == "" {
		return nil, fmt.Errorf("%w: no export path configured", ErrEnvironmentUnsupported)
	}
	f, err := os.Open(p.Path)
	if err != nil {
		return nil, err
	}
	return f, nil
}
