package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/grachmannico95/codes-bot/internal/domain"
	"github.com/grachmannico95/codes-bot/internal/spreadsheet"
	"github.com/grachmannico95/codes-bot/pkg/logger"
)

// Catalog is the part of the catalog store the pipeline depends on.
type Catalog interface {
	Load(ctx context.Context) error
	Barcode(article string) (string, bool)
}

type FileProcessorInterface interface {
	ProcessFile(ctx context.Context, filePath string) (*domain.ProcessedFile, error)
}

type FileProcessorConfig struct {
	CodeColumn string
	Policy     domain.ScanPolicy
}

type FileProcessor struct {
	catalog    Catalog
	codeColumn int
	policy     domain.ScanPolicy
	logger     *logger.Logger
}

func NewFileProcessor(catalog Catalog, cfg FileProcessorConfig, log *logger.Logger) (*FileProcessor, error) {
	col, err := spreadsheet.ColumnIndex(cfg.CodeColumn)
	if err != nil {
		return nil, fmt.Errorf("code column: %w", err)
	}

	policy := cfg.Policy
	if policy == "" {
		policy = domain.ScanPolicySkipEmpty
	}
	if !policy.Valid() {
		return nil, fmt.Errorf("unknown scan policy %q", policy)
	}

	return &FileProcessor{
		catalog:    catalog,
		codeColumn: col,
		policy:     policy,
		logger:     log,
	}, nil
}

// ProcessFile runs the whole pipeline for one uploaded workbook. It either
// returns a complete result or a single *domain.ProcessingError; workbook
// decoding failures are returned as plain wrapped errors.
func (p *FileProcessor) ProcessFile(ctx context.Context, filePath string) (*domain.ProcessedFile, error) {
	fileName := filepath.Base(filePath)
	ctx = logger.WithFileName(ctx, fileName)

	if err := p.catalog.Load(ctx); err != nil {
		p.logger.Error(ctx, "Catalog loading failed",
			"error", err,
		)
		return nil, domain.NewCatalogLoadingError(err)
	}

	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", domain.ErrFileNotFound, filePath)
		}
		return nil, domain.NewIOError(err)
	}

	article, err := ExtractIdentifier(fileName)
	if err != nil {
		return nil, err
	}

	barcode, ok := p.catalog.Barcode(article)
	if !ok {
		p.logger.Info(ctx, "Article not found in catalog",
			"article", article,
		)
		return nil, domain.NewNotFoundInCatalogError(article)
	}

	sheet, err := spreadsheet.ReadFirstSheet(filePath)
	if err != nil {
		return nil, fmt.Errorf("read uploaded workbook: %w", err)
	}

	codes, err := ExtractCodes(sheet, p.codeColumn, p.policy)
	if err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "File processed",
		"article", article,
		"codes", len(codes),
	)

	return &domain.ProcessedFile{
		Article:  article,
		FileName: fileName,
		Codes:    codes,
		Barcode:  barcode,
	}, nil
}
