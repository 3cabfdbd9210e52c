package encoder

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/grachmannico95/codes-bot/internal/domain"
)

type TextEncoder struct{}

func NewTextEncoder() *TextEncoder {
	return &TextEncoder{}
}

func (e *TextEncoder) Encode(pf *domain.ProcessedFile) (*Artifact, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Артикул: %s\n", pf.Article)
	fmt.Fprintf(&buf, "Штрихкод: %s\n", pf.Barcode)
	fmt.Fprintf(&buf, "Найдено кодов: %d\n", len(pf.Codes))
	buf.WriteString("Коды:\n")
	buf.WriteString(strings.Join(pf.Codes, "\n"))

	return &Artifact{
		FileName:    resultFileName(pf.Article, ".txt"),
		ContentType: "text/plain; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}
