package handler

import (
	"errors"

	"github.com/rajifPy/kantin-stok/internal/service"
)

// statusForError memetakan taksonomi error service ke HTTP status.
// Error yang tidak dikenal dianggap kegagalan input (400) oleh caller
// yang memvalidasi, atau 500 lewat fallback masing-masing handler.
func statusForError(err error, fallback int) int {
	var insufficient *service.InsufficientStockError
	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrTransactionNotFound):
		return 404
	case errors.As(err, &insufficient),
		errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrDuplicateBarcode),
		errors.Is(err, service.ErrPriceInvariant),
		errors.Is(err, service.ErrInvalidAction):
		return 400
	case errors.Is(err, service.ErrStockUpdateFailed):
		return 500
	default:
		return fallback
	}
}
