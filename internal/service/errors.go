package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/budgetwise/internal/models"
	"github.com/mmynk/budgetwise/internal/storage"
)

// toConnectError maps a store or engine outcome onto a Connect error code.
// Anything not recognized as caller error is treated as a storage failure.
func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, storage.ErrInvalidInput),
		errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrInvalidDate):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrCategoryExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
