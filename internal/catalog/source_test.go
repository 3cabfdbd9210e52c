package catalog

import (
	"context"
	"testing"

	"github.com/grachmannico95/codes-bot/internal/domain"
	"github.com/grachmannico95/codes-bot/internal/spreadsheet"
	"github.com/grachmannico95/codes-bot/internal/spreadsheet/spreadsheettest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSource(t *testing.T, path string, policy domain.ScanPolicy) *XLSXSource {
	t.Helper()

	src, err := NewXLSXSource(SourceConfig{
		Path:          path,
		ArticleColumn: "A",
		BarcodeColumn: "F",
		Policy:        policy,
	})
	require.NoError(t, err)
	return src
}

func TestXLSXSource_ReadEntries(t *testing.T) {
	path := spreadsheettest.Catalog(t, t.TempDir(),
		[2]string{"G0418", "4601234567890"},
		[2]string{"  TEST01 ", " 4600000000001 "},
	)

	entries, err := newSource(t, path, domain.ScanPolicySkipEmpty).ReadEntries(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.CatalogEntry{
		{Article: "G0418", Barcode: "4601234567890"},
		{Article: "TEST01", Barcode: "4600000000001"},
	}, entries)
}

func TestXLSXSource_MissingFile(t *testing.T) {
	_, err := newSource(t, t.TempDir()+"/missing.xlsx", "").ReadEntries(context.Background())
	assert.Error(t, err)
}

func TestNewXLSXSource_Validation(t *testing.T) {
	_, err := NewXLSXSource(SourceConfig{ArticleColumn: "1", BarcodeColumn: "F"})
	assert.ErrorIs(t, err, domain.ErrInvalidColumn)

	_, err = NewXLSXSource(SourceConfig{ArticleColumn: "A", BarcodeColumn: "F", Policy: "sometimes"})
	assert.Error(t, err)
}

func TestScanEntries_Policies(t *testing.T) {
	sheet := &spreadsheet.Sheet{Rows: [][]string{
		{"Артикул", "", "", "", "", "Штрихкод"},
		{"A1", "", "", "", "", "111"},
		{"A2", "", "", "", "", ""},
		{},
		{"   ", "", "", "", "", "333"},
		{"A5", "", "", "", "", "555"},
	}}

	skipped := ScanEntries(sheet, 1, 6, domain.ScanPolicySkipEmpty)
	assert.Equal(t, []domain.CatalogEntry{
		{Article: "A1", Barcode: "111"},
		{Article: "A5", Barcode: "555"},
	}, skipped)

	stopped := ScanEntries(sheet, 1, 6, domain.ScanPolicyStopAtEmpty)
	assert.Equal(t, []domain.CatalogEntry{
		{Article: "A1", Barcode: "111"},
	}, stopped)
}

func TestScanEntries_HeaderOnly(t *testing.T) {
	sheet := &spreadsheet.Sheet{Rows: [][]string{{"Артикул"}}}
	assert.Empty(t, ScanEntries(sheet, 1, 6, domain.ScanPolicySkipEmpty))
}
