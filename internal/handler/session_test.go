package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"storefront-checkout-demo/internal/cart"
	"storefront-checkout-demo/internal/dto"
	"storefront-checkout-demo/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSession(t *testing.T) {
	carts := newTestCartStore(t)
	require.NoError(t, carts.AddItem(sessionID, cart.Item{ProductID: "P1", Quantity: 1, UnitPrice: decimal.NewFromInt(5)}))
	carts.SetTheme(sessionID, cart.ThemeDark)

	h := handler.NewSessionHandler(carts)
	c, rec := newContext(t, http.MethodGet, "/api/session", "")

	require.NoError(t, h.GetSession(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var view dto.SessionView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, 1, view.CartCount)
	assert.Equal(t, cart.ThemeDark, view.Theme)
}

func TestSetTheme(t *testing.T) {
	t.Run("valid theme", func(t *testing.T) {
		carts := newTestCartStore(t)
		h := handler.NewSessionHandler(carts)
		c, rec := newContext(t, http.MethodPost, "/api/session/theme", `{"theme":"dark"}`)

		require.NoError(t, h.SetTheme(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, cart.ThemeDark, carts.Theme(sessionID))
	})

	t.Run("unknown theme rejected", func(t *testing.T) {
		carts := newTestCartStore(t)
		h := handler.NewSessionHandler(carts)
		c, _ := newContext(t, http.MethodPost, "/api/session/theme", `{"theme":"sepia"}`)

		err := h.SetTheme(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Equal(t, cart.ThemeLight, carts.Theme(sessionID))
	})
}
