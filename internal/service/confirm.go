package service

import "context"

// Prompts shown before destructive actions.
const (
	PromptDeleteSeller      = "Are you sure you want to delete this seller? All their associated quick items will also be removed."
	PromptDeleteQuickItem   = "Are you sure you want to delete this quick item?"
	PromptCancelTransaction = "Are you sure you want to cancel this transaction? All items will be removed."
)

// Confirmer asks the user to approve a destructive action.
// Returning false aborts the action with no side effects.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Confirmed answers every prompt with ok. It serves callers that collected
// the user's answer before invoking the engine.
func Confirmed(ok bool) Confirmer {
	return ConfirmFunc(func(context.Context, string) (bool, error) { return ok, nil })
}

func confirm(ctx context.Context, c Confirmer, prompt string) error {
	if c == nil {
		return ErrNotConfirmed
	}
	ok, err := c.Confirm(ctx, prompt)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotConfirmed
	}
	return nil
}
