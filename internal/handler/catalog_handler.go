package handler

import (
	"context"
	"net/http"

	"github.com/grachmannico95/codes-bot/internal/domain"
	"github.com/grachmannico95/codes-bot/pkg/logger"
	"github.com/labstack/echo/v4"
)

type CatalogReader interface {
	Load(ctx context.Context) error
	Revalidate()
	Barcode(article string) (string, bool)
	Article(barcode string) (string, bool)
	Size() int
}

type CatalogHandler struct {
	catalog CatalogReader
	logger  *logger.Logger
}

func NewCatalogHandler(catalog CatalogReader, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  log,
	}
}

func (h *CatalogHandler) GetBarcode(c echo.Context) error {
	ctx := c.Request().Context()
	article := c.Param("article")

	if err := h.load(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": msgCatalogLoading,
		})
	}

	barcode, ok := h.catalog.Barcode(article)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "article not found",
		})
	}

	return c.JSON(http.StatusOK, domain.CatalogEntry{Article: article, Barcode: barcode})
}

func (h *CatalogHandler) GetArticle(c echo.Context) error {
	ctx := c.Request().Context()
	barcode := c.Param("barcode")

	if err := h.load(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": msgCatalogLoading,
		})
	}

	article, ok := h.catalog.Article(barcode)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "barcode not found",
		})
	}

	return c.JSON(http.StatusOK, domain.CatalogEntry{Article: article, Barcode: barcode})
}

// Revalidate drops the cached catalog and reloads it from the source.
func (h *CatalogHandler) Revalidate(c echo.Context) error {
	ctx := c.Request().Context()

	h.catalog.Revalidate()
	if err := h.load(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": msgCatalogLoading,
		})
	}

	h.logger.Info(ctx, "Catalog revalidated",
		"entries", h.catalog.Size(),
	)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "reloaded",
		"entries": h.catalog.Size(),
	})
}

func (h *CatalogHandler) load(ctx context.Context) error {
	if err := h.catalog.Load(ctx); err != nil {
		h.logger.Error(ctx, "Failed to load catalog",
			"error", err,
		)
		return err
	}
	return nil
}
