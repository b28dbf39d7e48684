package api

import (
	"errors"
	"net/http"

	"github.com/example/storefront/internal/command"
	"github.com/example/storefront/internal/domain/cart"
	"github.com/example/storefront/internal/domain/catalog"
	"github.com/example/storefront/internal/domain/order"
	"github.com/example/storefront/internal/domain/session"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, cart.ErrNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, session.ErrInvalidCredentials),
		errors.Is(err, order.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, session.ErrPasswordMismatch),
		errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrQuantityTooLarge):
		return http.StatusUnprocessableEntity
	case errors.Is(err, command.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
