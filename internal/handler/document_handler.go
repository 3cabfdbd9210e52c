package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/grachmannico95/codes-bot/internal/domain"
	"github.com/grachmannico95/codes-bot/internal/service"
	"github.com/grachmannico95/codes-bot/pkg/logger"
	"github.com/labstack/echo/v4"
)

const (
	DocumentFormField = "document"
	UserIDHeader      = "X-User-ID"
)

const (
	msgUnsupportedExtension = "Пожалуйста, загрузите файл с расширением .xlsx или .xls"
	msgCatalogLoading       = "Не удалось загрузить справочник артикулов. Пожалуйста, попробуйте позже."
	msgNotFoundInCatalog    = "Артикул %s не найден в справочнике"
	msgNoCodesFound         = "В файле не найдено кодов в столбце B"
	msgInvalidIdentifier    = "Не удалось извлечь артикул из названия файла"
	msgProcessingFailed     = "Произошла ошибка при обработке файла. Пожалуйста, проверьте формат файла."
	msgDocumentRequired     = "Пожалуйста, прикрепите файл"
)

type DocumentHandler struct {
	service service.DocumentService
	logger  *logger.Logger
}

func NewDocumentHandler(service service.DocumentService, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{
		service: service,
		logger:  log,
	}
}

// Upload processes one spreadsheet and answers with the rendered codes file.
func (h *DocumentHandler) Upload(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Request().Header.Get(UserIDHeader)

	file, err := c.FormFile(DocumentFormField)
	if err != nil {
		h.logger.Warn(ctx, "Failed to get document from request",
			"error", err,
		)
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msgDocumentRequired,
		})
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "Failed to open document",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": msgProcessingFailed,
		})
	}
	defer src.Close()

	result, err := h.service.HandleDocument(ctx, userID, file.Filename, src)
	if err != nil {
		status, message := errorResponse(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error(ctx, "Failed to process document",
				"file_name", file.Filename,
				"error", err,
			)
		} else {
			h.logger.Info(ctx, "Document rejected",
				"file_name", file.Filename,
				"reason", err,
			)
		}
		return c.JSON(status, map[string]string{
			"error": message,
		})
	}

	h.logger.Info(ctx, "Document processed",
		"article", result.File.Article,
		"codes", len(result.File.Codes),
	)

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", result.Artifact.FileName))
	return c.Blob(http.StatusOK, result.Artifact.ContentType, result.Artifact.Data)
}

// errorResponse maps a pipeline failure to a status code and a user message.
func errorResponse(err error) (int, string) {
	if errors.Is(err, domain.ErrUnsupportedExtension) {
		return http.StatusBadRequest, msgUnsupportedExtension
	}

	var pe *domain.ProcessingError
	if !errors.As(err, &pe) {
		return http.StatusInternalServerError, msgProcessingFailed
	}

	switch pe.Kind {
	case domain.KindCatalogLoading:
		return http.StatusServiceUnavailable, msgCatalogLoading
	case domain.KindNotFoundInCatalog:
		return http.StatusNotFound, fmt.Sprintf(msgNotFoundInCatalog, pe.Identifier)
	case domain.KindNoCodesFound:
		return http.StatusUnprocessableEntity, msgNoCodesFound
	case domain.KindInvalidIdentifier:
		return http.StatusUnprocessableEntity, msgInvalidIdentifier
	default:
		return http.StatusInternalServerError, msgProcessingFailed
	}
}
