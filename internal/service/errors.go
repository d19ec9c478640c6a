package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/requests"
	"github.com/mmynk/settleup/internal/storage"
	"github.com/mmynk/settleup/pkg/money"
)

// toConnectError maps domain and storage errors onto Connect codes.
// Errors that are already *connect.Error pass through unchanged.
func toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}
	return connect.NewError(codeOf(err), err)
}

func codeOf(err error) connect.Code {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.CodeNotFound
	case errors.Is(err, requests.ErrDuplicateRequest), errors.Is(err, storage.ErrDuplicatePending):
		return connect.CodeAlreadyExists
	case errors.Is(err, requests.ErrInvalidTransition),
		errors.Is(err, storage.ErrStaleRequest),
		errors.Is(err, calculator.ErrUnbalanced):
		return connect.CodeFailedPrecondition
	case errors.Is(err, requests.ErrInvalidRequest),
		errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, money.ErrTooPrecise),
		errors.Is(err, money.ErrUnknownCurrency),
		errors.Is(err, calculator.ErrNoParticipants),
		errors.Is(err, calculator.ErrNonPositiveAmount),
		errors.Is(err, calculator.ErrMissingMember),
		errors.Is(err, calculator.ErrSelfTransfer),
		errors.Is(err, calculator.ErrUnknownMember):
		return connect.CodeInvalidArgument
	case errors.Is(err, requests.ErrStoreUnavailable), errors.Is(err, context.DeadlineExceeded):
		return connect.CodeUnavailable
	case errors.Is(err, context.Canceled):
		return connect.CodeCanceled
	default:
		return connect.CodeInternal
	}
}
