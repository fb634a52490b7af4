package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/shohagvaii216/FinTrack/internal/advisor"
	"github.com/shohagvaii216/FinTrack/internal/auth"
	"github.com/shohagvaii216/FinTrack/internal/models"
)

// toConnectError maps a domain error to its Connect code.
func toConnectError(err error) error {
	var (
		verr *models.ValidationError
		nerr *models.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.As(err, &nerr):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, advisor.ErrCouldNotParse):
		return connect.NewError(connect.CodeUnavailable, err)
	case errors.Is(err, auth.ErrWeakPIN):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, auth.ErrPINNotSet):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, auth.ErrInvalidPIN), errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	default:
		slog.Error("Unexpected error", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}
