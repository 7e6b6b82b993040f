package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-checkout-demo/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	e := echo.New()

	var captured string
	h := middleware.Session()(func(c echo.Context) error {
		captured = middleware.SessionID(c)
		return c.NoContent(http.StatusOK)
	})

	t.Run("issues a cookie when none is present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, h(e.NewContext(req, rec)))

		require.NotEmpty(t, captured)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
		assert.Equal(t, captured, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("reuses an existing cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "existing-id"})
		rec := httptest.NewRecorder()

		require.NoError(t, h(e.NewContext(req, rec)))

		assert.Equal(t, "existing-id", captured)
		assert.Empty(t, rec.Result().Cookies())
	})
}
