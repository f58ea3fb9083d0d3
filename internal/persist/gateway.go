package persist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/yardsale/internal/models"
)

var (
	// ErrUserCancelled is returned when the user dismisses a picker or modal.
	// It is informational, not a failure.
	ErrUserCancelled = errors.New("operation cancelled by user")

	// ErrEnvironmentUnsupported is returned by a tier that cannot run here,
	// including when a security restriction blocks it. The Gateway falls
	// through to the next tier.
	ErrEnvironmentUnsupported = errors.New("persistence tier unsupported in this environment")

	// ErrAwaitingInput is returned by a non-blocking modal that has been
	// opened and will deliver its text through a later confirm action.
	ErrAwaitingInput = errors.New("waiting for pasted data")
)

// Tier is one way of moving the exported payload in or out.
type Tier interface {
	Name() string
	Save(ctx context.Context, payload []byte) error
	Load(ctx context.Context) ([]byte, error)
}

// Gateway saves and loads datasets through the first tier that is supported.
type Gateway struct {
	tiers []Tier
}

// New creates a Gateway trying tiers in order.
func New(tiers ...Tier) *Gateway {
	return &Gateway{tiers: tiers}
}

// Save exports ds and returns the name of the tier that handled it.
func (g *Gateway) Save(ctx context.Context, ds models.Dataset) (string, error) {
	payload, err := Encode(ds)
	if err != nil {
		return "", err
	}

	for _, t := range g.tiers {
		err := t.Save(ctx, payload)
		if errors.Is(err, ErrEnvironmentUnsupported) {
			slog.Info("Save tier unavailable, falling back", "tier", t.Name(), "reason", err)
			continue
		}
		if err != nil {
			return t.Name(), err
		}
		slog.Info("Dataset saved",
			"tier", t.Name(),
			"bytes", len(payload),
			"sellers", len(ds.Sellers),
			"sold_items", len(ds.SoldItems),
		)
		return t.Name(), nil
	}
	return "", fmt.Errorf("save: %w", ErrEnvironmentUnsupported)
}

// Load imports a dataset through the first supported tier. The returned
// dataset has passed Decode; callers replace their dataset with it whole.
func (g *Gateway) Load(ctx context.Context) (*models.Dataset, string, error) {
	for _, t := range g.tiers {
		payload, err := t.Load(ctx)
		if errors.Is(err, ErrEnvironmentUnsupported) {
			slog.Info("Load tier unavailable, falling back", "tier", t.Name(), "reason", err)
			continue
		}
		if err != nil {
			return nil, t.Name(), err
		}

		ds, err := Decode(payload)
		if err != nil {
			slog.Warn("Rejected import payload", "tier", t.Name(), "error", err)
			return nil, t.Name(), err
		}
		slog.Info("Dataset loaded",
			"tier", t.Name(),
			"sellers", len(ds.Sellers),
			"quick_items", len(ds.QuickItems),
			"sold_items", len(ds.SoldItems),
		)
		return ds, t.Name(), nil
	}
	return nil, "", fmt.Errorf("load: %w", ErrEnvironmentUnsupported)
}
