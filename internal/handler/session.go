package handler

import (
	"net/http"

	"storefront-checkout-demo/internal/cart"
	"storefront-checkout-demo/internal/dto"
	"storefront-checkout-demo/internal/middleware"

	"github.com/labstack/echo/v4"
)

// SessionHandler backs the navigation shell: cart-count badge and the
// per-session theme toggle.
type SessionHandler struct {
	carts *cart.Store
}

func NewSessionHandler(carts *cart.Store) *SessionHandler {
	return &SessionHandler{carts: carts}
}

func (h *SessionHandler) GetSession(c echo.Context) error {
	sessionID := middleware.SessionID(c)

	return c.JSON(http.StatusOK, dto.SessionView{
		CartCount: h.carts.Count(sessionID),
		Theme:     h.carts.Theme(sessionID),
	})
}

func (h *SessionHandler) SetTheme(c echo.Context) error {
	var req dto.ThemeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	h.carts.SetTheme(middleware.SessionID(c), req.Theme)

	return c.JSON(http.StatusOK, map[string]string{"theme": req.Theme})
}
