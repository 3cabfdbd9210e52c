package middleware

import (
	"net/http"
	"time"

	"github.com/grachmannico95/codes-bot/pkg/logger"
	"github.com/labstack/echo/v4"
)

func Logging(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			keysAndValues := []interface{}{
				"method", req.Method,
				"path", req.URL.Path,
				"status", c.Response().Status,
				"bytes_in", req.ContentLength,
				"bytes_out", c.Response().Size,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", req.RemoteAddr,
			}

			if err != nil || c.Response().Status >= http.StatusInternalServerError {
				log.Warn(req.Context(), "HTTP request failed", append(keysAndValues, "error", err)...)
				return err
			}

			log.Info(req.Context(), "HTTP request", keysAndValues...)
			return err
		}
	}
}
