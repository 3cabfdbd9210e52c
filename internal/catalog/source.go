package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/grachmannico95/codes-bot/internal/domain"
	"github.com/grachmannico95/codes-bot/internal/spreadsheet"
)

// XLSXSource reads catalog rows from the first sheet of a workbook on disk.
type XLSXSource struct {
	path       string
	articleCol int
	barcodeCol int
	policy     domain.ScanPolicy
}

type SourceConfig struct {
	Path          string
	ArticleColumn string
	BarcodeColumn string
	Policy        domain.ScanPolicy
}

func NewXLSXSource(cfg SourceConfig) (*XLSXSource, error) {
	articleCol, err := spreadsheet.ColumnIndex(cfg.ArticleColumn)
	if err != nil {
		return nil, fmt.Errorf("article column: %w", err)
	}

	barcodeCol, err := spreadsheet.ColumnIndex(cfg.BarcodeColumn)
	if err != nil {
		return nil, fmt.Errorf("barcode column: %w", err)
	}

	policy := cfg.Policy
	if policy == "" {
		policy = domain.ScanPolicySkipEmpty
	}
	if !policy.Valid() {
		return nil, fmt.Errorf("unknown scan policy %q", policy)
	}

	return &XLSXSource{
		path:       cfg.Path,
		articleCol: articleCol,
		barcodeCol: barcodeCol,
		policy:     policy,
	}, nil
}

func (s *XLSXSource) ReadEntries(ctx context.Context) ([]domain.CatalogEntry, error) {
	sheet, err := spreadsheet.ReadFirstSheet(s.path)
	if err != nil {
		return nil, err
	}

	return ScanEntries(sheet, s.articleCol, s.barcodeCol, s.policy), nil
}

// ScanEntries walks rows 2..RowCount and keeps rows where both the article
// and the barcode are non-empty after trimming.
func ScanEntries(sheet *spreadsheet.Sheet, articleCol, barcodeCol int, policy domain.ScanPolicy) []domain.CatalogEntry {
	var entries []domain.CatalogEntry

	for row := spreadsheet.HeaderRows + 1; row <= sheet.RowCount(); row++ {
		article, _ := sheet.Cell(row, articleCol)
		barcode, _ := sheet.Cell(row, barcodeCol)
		article = strings.TrimSpace(article)
		barcode = strings.TrimSpace(barcode)

		if article == "" || barcode == "" {
			if policy == domain.ScanPolicyStopAtEmpty {
				break
			}
			continue
		}

		entries = append(entries, domain.CatalogEntry{Article: article, Barcode: barcode})
	}

	return entries
}
