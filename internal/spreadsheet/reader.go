// Package spreadsheet reads the first worksheet of an OOXML workbook into
// plain string rows.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/grachmannico95/codes-bot/internal/domain"
	"github.com/xuri/excelize/v2"
)

// HeaderRows is the number of leading rows every scan skips.
const HeaderRows = 1

// Sheet holds the rows of one worksheet. Rows[0] is spreadsheet row 1.
type Sheet struct {
	Name string
	Rows [][]string
}

// ReadFirstSheet opens the workbook at path and returns its first worksheet.
func ReadFirstSheet(path string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	return firstSheet(f)
}

// ReadFirstSheetFrom is ReadFirstSheet for an already opened stream.
func ReadFirstSheetFrom(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return firstSheet(f)
}

func firstSheet(f *excelize.File) (*Sheet, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrNoWorksheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	return &Sheet{Name: sheets[0], Rows: rows}, nil
}

// RowCount is the number of rows up to the last non-empty one.
func (s *Sheet) RowCount() int {
	return len(s.Rows)
}

// Cell returns the value at the 1-based row and column. present is false when
// the row or the cell does not exist at all, as opposed to holding "".
func (s *Sheet) Cell(row, col int) (value string, present bool) {
	if row < 1 || row > len(s.Rows) || col < 1 {
		return "", false
	}
	cells := s.Rows[row-1]
	if col > len(cells) {
		return "", false
	}
	return cells[col-1], true
}

// ColumnIndex converts a column letter such as "B" or "AA" to its 1-based index.
func ColumnIndex(letter string) (int, error) {
	col, err := excelize.ColumnNameToNumber(strings.TrimSpace(letter))
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", domain.ErrInvalidColumn, letter, err)
	}
	return col, nil
}
