package service

import (
	"path/filepath"
	"strings"

	"github.com/grachmannico95/codes-bot/internal/domain"
	"github.com/grachmannico95/codes-bot/internal/spreadsheet"
)

var DefaultAllowedExtensions = []string{".xlsx", ".xls"}

// ExtractIdentifier takes the file name stem up to the first space:
// "G0418 - 61 штука.xlsx" yields "G0418".
func ExtractIdentifier(fileName string) (string, error) {
	base := filepath.Base(fileName)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	if i := strings.IndexByte(stem, ' '); i >= 0 {
		stem = stem[:i]
	}

	identifier := strings.TrimSpace(stem)
	if identifier == "" {
		return "", domain.NewInvalidIdentifierError(fileName)
	}

	return identifier, nil
}

// ValidateExtension reports whether fileName ends in one of allowed,
// ignoring case.
func ValidateExtension(fileName string, allowed []string) bool {
	ext := filepath.Ext(fileName)
	if ext == "" {
		return false
	}

	for _, a := range allowed {
		if strings.EqualFold(ext, a) {
			return true
		}
	}

	return false
}

// ExtractCodes collects the trimmed non-empty values of col from row 2 on.
// Under ScanPolicyStopAtEmpty the first missing cell ends the scan; a cell
// holding an empty string is still only skipped.
func ExtractCodes(sheet *spreadsheet.Sheet, col int, policy domain.ScanPolicy) ([]string, error) {
	var codes []string

	for row := spreadsheet.HeaderRows + 1; row <= sheet.RowCount(); row++ {
		value, present := sheet.Cell(row, col)
		if !present && policy == domain.ScanPolicyStopAtEmpty {
			break
		}

		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		codes = append(codes, value)
	}

	if len(codes) == 0 {
		return nil, domain.NewNoCodesFoundError()
	}

	return codes, nil
}
