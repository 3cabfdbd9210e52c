package middleware

import (
	"github.com/google/uuid"
	"github.com/grachmannico95/codes-bot/pkg/logger"
	"github.com/labstack/echo/v4"
)

const TraceIDHeader = "X-Trace-ID"

// RequestID tags the request context with a trace id. A caller supplied id
// is kept only when it is a UUID; anything else is replaced.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = uuid.New().String()
			}

			ctx := logger.WithTraceID(c.Request().Context(), traceID)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set(TraceIDHeader, traceID)

			return next(c)
		}
	}
}
