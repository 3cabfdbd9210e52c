package middleware

import (
	"github.com/grachmannico95/codes-bot/pkg/logger"
	"github.com/labstack/echo/v4"
)

const UserIDHeader = "X-User-ID"

// UserID copies the chat user identifier into the request context so every
// log line of the request carries it.
func UserID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := c.Request().Header.Get(UserIDHeader)
			if userID != "" {
				ctx := logger.WithUserID(c.Request().Context(), userID)
				c.SetRequest(c.Request().WithContext(ctx))
			}

			return next(c)
		}
	}
}
