package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoWorksheets         = errors.New("workbook has no worksheets")
	ErrCatalogEmpty         = errors.New("catalog has no valid entries")
	ErrFileNotFound         = errors.New("file not found")
	ErrEmptyIdentifier      = errors.New("empty identifier")
	ErrNoCodes              = errors.New("no codes found")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrInvalidColumn        = errors.New("invalid column letter")
)

// ErrorKind tags a user-facing processing failure.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindCatalogLoading
	KindNotFoundInCatalog
	KindNoCodesFound
	KindInvalidIdentifier
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindCatalogLoading:
		return "catalog_loading"
	case KindNotFoundInCatalog:
		return "not_found_in_catalog"
	case KindNoCodesFound:
		return "no_codes_found"
	case KindInvalidIdentifier:
		return "invalid_identifier"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Retryable reports whether the user may succeed by simply trying again later.
func (k ErrorKind) Retryable() bool {
	return k == KindCatalogLoading
}

// ProcessingError is the single error type returned by the file pipeline.
// Identifier is set for KindNotFoundInCatalog.
type ProcessingError struct {
	Kind       ErrorKind
	Identifier string
	Err        error
}

func (e *ProcessingError) Error() string {
	switch e.Kind {
	case KindCatalogLoading:
		return fmt.Sprintf("catalog loading failed: %v", e.Err)
	case KindNotFoundInCatalog:
		return fmt.Sprintf("article %q not found in catalog", e.Identifier)
	case KindNoCodesFound:
		return "no codes found in source column"
	case KindInvalidIdentifier:
		return "could not extract article from file name"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

func NewCatalogLoadingError(cause error) *ProcessingError {
	return &ProcessingError{Kind: KindCatalogLoading, Err: cause}
}

func NewNotFoundInCatalogError(identifier string) *ProcessingError {
	return &ProcessingError{Kind: KindNotFoundInCatalog, Identifier: identifier}
}

func NewNoCodesFoundError() *ProcessingError {
	return &ProcessingError{Kind: KindNoCodesFound, Err: ErrNoCodes}
}

func NewInvalidIdentifierError(fileName string) *ProcessingError {
	return &ProcessingError{Kind: KindInvalidIdentifier, Err: fmt.Errorf("%w: %q", ErrEmptyIdentifier, fileName)}
}

func NewIOError(cause error) *ProcessingError {
	return &ProcessingError{Kind: KindIO, Err: cause}
}

// KindOf extracts the processing error kind from err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var pe *ProcessingError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return KindUnknown, false
}
