package domain

// CatalogEntry is one accepted catalog row: column A article, column F barcode.
type CatalogEntry struct {
	Article string `json:"article" yaml:"article"`
	Barcode string `json:"barcode" yaml:"barcode"`
}

// ProcessedFile is the result of one pipeline run. Codes keep source row
// order and are not deduplicated.
type ProcessedFile struct {
	Article  string   `json:"article"`
	FileName string   `json:"file_name"`
	Codes    []string `json:"codes"`
	Barcode  string   `json:"barcode"`
}

// ScanPolicy decides what a row scan does with an empty cell.
type ScanPolicy string

const (
	// ScanPolicySkipEmpty skips empty rows and keeps scanning to the last row.
	ScanPolicySkipEmpty ScanPolicy = "skip_empty"
	// ScanPolicyStopAtEmpty ends the scan at the first empty row.
	ScanPolicyStopAtEmpty ScanPolicy = "stop_at_empty"
)

func (p ScanPolicy) Valid() bool {
	return p == ScanPolicySkipEmpty || p == ScanPolicyStopAtEmpty
}

// ResultFormat selects the artifact produced for a processed file.
type ResultFormat string

const (
	ResultFormatText ResultFormat = "text"
	ResultFormatXLSX ResultFormat = "xlsx"
)
