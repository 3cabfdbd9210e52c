package encoder

import (
	"fmt"

	"github.com/grachmannico95/codes-bot/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	XLSXLabel       = "Штрихкод"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// Fixed so that identical input gives identical bytes.
	xlsxDocTimestamp = "2000-01-01T00:00:00Z"
)

// XLSXEncoder writes a single column: A1 label, A2 barcode, A3.. codes.
type XLSXEncoder struct{}

func NewXLSXEncoder() *XLSXEncoder {
	return &XLSXEncoder{}
}

func (e *XLSXEncoder) Encode(pf *domain.ProcessedFile) (*Artifact, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDocProps(&excelize.DocProperties{
		Created:  xlsxDocTimestamp,
		Modified: xlsxDocTimestamp,
		Title:    pf.Article,
	}); err != nil {
		return nil, fmt.Errorf("set doc props: %w", err)
	}

	sheet := f.GetSheetName(0)
	column := append([]interface{}{XLSXLabel, pf.Barcode}, toInterfaces(pf.Codes)...)
	if err := f.SetSheetCol(sheet, "A1", &column); err != nil {
		return nil, fmt.Errorf("write column: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return &Artifact{
		FileName:    resultFileName(pf.Article, ".xlsx"),
		ContentType: xlsxContentType,
		Data:        buf.Bytes(),
	}, nil
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
