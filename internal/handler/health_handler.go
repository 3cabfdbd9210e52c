package handler

import (
	"net/http"
	"time"

	"github.com/grachmannico95/codes-bot/internal/eventbus"
	"github.com/labstack/echo/v4"
)

type CatalogSizer interface {
	Size() int
}

type EventStats interface {
	Stats() eventbus.Stats
}

type HealthHandler struct {
	catalog CatalogSizer
	events  EventStats
}

func NewHealthHandler(catalog CatalogSizer, events EventStats) *HealthHandler {
	return &HealthHandler{
		catalog: catalog,
		events:  events,
	}
}

// Check never loads the catalog; catalog_entries is 0 until the first load.
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":          "ok",
		"catalog_entries": h.catalog.Size(),
		"events":          h.events.Stats(),
		"timestamp":       time.Now().Format(time.RFC3339),
	})
}
