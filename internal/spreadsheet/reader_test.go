package spreadsheet

import (
	"bytes"
	"os"
	"testing"

	"github.com/grachmannico95/codes-bot/internal/domain"
	"github.com/grachmannico95/codes-bot/internal/spreadsheet/spreadsheettest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFirstSheet(t *testing.T) {
	path := spreadsheettest.WriteWorkbook(t, t.TempDir(), "G0418.xlsx", map[string]interface{}{
		"A1": "Header A",
		"B1": "Header B",
		"B2": "CODE001",
		"B4": "CODE002",
	})

	sheet, err := ReadFirstSheet(path)
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", sheet.Name)
	assert.Equal(t, 4, sheet.RowCount())

	value, present := sheet.Cell(2, 2)
	assert.True(t, present)
	assert.Equal(t, "CODE001", value)

	_, present = sheet.Cell(3, 2)
	assert.False(t, present)

	_, present = sheet.Cell(10, 2)
	assert.False(t, present)
}

func TestReadFirstSheetFrom(t *testing.T) {
	path := spreadsheettest.WriteWorkbook(t, t.TempDir(), "x.xlsx", map[string]interface{}{"A1": "x"})
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	sheet, err := ReadFirstSheetFrom(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1, sheet.RowCount())
}

func TestReadFirstSheet_NotAWorkbook(t *testing.T) {
	path := t.TempDir() + "/broken.xlsx"
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o600))

	_, err := ReadFirstSheet(path)
	assert.Error(t, err)
}

func TestColumnIndex(t *testing.T) {
	cases := map[string]int{"A": 1, "B": 2, "F": 6, "aa": 27}
	for letter, want := range cases {
		got, err := ColumnIndex(letter)
		require.NoError(t, err, letter)
		assert.Equal(t, want, got, letter)
	}

	_, err := ColumnIndex("1")
	assert.ErrorIs(t, err, domain.ErrInvalidColumn)
}
