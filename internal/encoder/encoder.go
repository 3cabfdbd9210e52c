// Package encoder renders a processed file into a downloadable artifact.
// Output depends only on the input: no timestamps, no map iteration.
package encoder

import (
	"fmt"

	"github.com/grachmannico95/codes-bot/internal/domain"
)

type Artifact struct {
	FileName    string
	ContentType string
	Data        []byte
}

type Encoder interface {
	Encode(pf *domain.ProcessedFile) (*Artifact, error)
}

func New(format domain.ResultFormat) (Encoder, error) {
	switch format {
	case domain.ResultFormatText, "":
		return NewTextEncoder(), nil
	case domain.ResultFormatXLSX:
		return NewXLSXEncoder(), nil
	default:
		return nil, fmt.Errorf("unknown result format %q", format)
	}
}

func resultFileName(article, ext string) string {
	return fmt.Sprintf("codes_%s%s", article, ext)
}
