package handler

import (
	"errors"
	"net/http"
	"storefront-checkout-demo/internal/service"

	"github.com/labstack/echo/v4"
)

// toHTTPError maps service errors onto HTTP responses. Anything unmapped
// falls through to echo's generic 500 handling.
func toHTTPError(err error) error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	}

	switch {
	case errors.Is(err, service.ErrEmptyCart):
		return echo.NewHTTPError(http.StatusBadRequest, "cart is empty")
	case errors.Is(err, service.ErrBadSignature):
		return echo.NewHTTPError(http.StatusBadRequest, "payment signature verification failed")
	case errors.Is(err, service.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	case errors.Is(err, service.ErrGateway):
		return echo.NewHTTPError(http.StatusBadGateway, "payment gateway unavailable")
	}

	return err
}
