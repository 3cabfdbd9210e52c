// Package spreadsheettest builds workbooks on disk for tests.
package spreadsheettest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook saves a single-sheet workbook to dir/name with the given
// cell values (keys are cell references like "B2") and returns its path.
func WriteWorkbook(t testing.TB, dir, name string, cells map[string]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for ref, value := range cells {
		if err := f.SetCellValue(sheet, ref, value); err != nil {
			t.Fatalf("set %s: %v", ref, err)
		}
	}

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}

	return path
}

// Catalog writes a catalog workbook with a header row and one row per
// article/barcode pair in columns A and F.
func Catalog(t testing.TB, dir string, pairs ...[2]string) string {
	t.Helper()

	cells := map[string]interface{}{
		"A1": "Артикул",
		"F1": "Штрихкод",
	}
	for i, pair := range pairs {
		row := i + 2
		a, _ := excelize.CoordinatesToCellName(1, row)
		f, _ := excelize.CoordinatesToCellName(6, row)
		cells[a] = pair[0]
		cells[f] = pair[1]
	}

	return WriteWorkbook(t, dir, "catalog.xlsx", cells)
}
