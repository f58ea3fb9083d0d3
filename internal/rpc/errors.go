package rpc

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/yardsale/internal/nav"
	"github.com/mmynk/yardsale/internal/persist"
	"github.com/mmynk/yardsale/internal/service"
	"github.com/mmynk/yardsale/internal/session"
)

// toConnectError maps session errors onto connect codes.
func toConnectError(err error) error {
	var (
		guard   *service.GuardedDeleteError
		invalid *persist.InvalidFormatError
	)
	switch {
	case service.IsValidation(err), errors.As(err, &invalid), errors.Is(err, session.ErrUnknownEditKind):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.As(err, &guard),
		errors.Is(err, nav.ErrNoSellers),
		errors.Is(err, nav.ErrInvalidTransition),
		errors.Is(err, service.ErrNoEdit):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, service.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, persist.ErrUserCancelled), errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
