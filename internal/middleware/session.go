package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// SessionCookie identifies the shopper's cart session. There is no
	// authentication behind it; it only scopes cart state.
	SessionCookie = "cart_session"

	// SessionKey is the echo context key the session id is stored under.
	SessionKey = "session_id"
)

// Session issues a cart session cookie when the request carries none and
// exposes the id to handlers via the echo context.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id string

			cookie, err := c.Cookie(SessionCookie)
			if err == nil && cookie.Value != "" {
				id = cookie.Value
			} else {
				id = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     SessionCookie,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(SessionKey, id)
			return next(c)
		}
	}
}

// SessionID returns the session id set by Session.
func SessionID(c echo.Context) string {
	id, _ := c.Get(SessionKey).(string)
	return id
}
