package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("disk unplugged")
	wrapped := fmt.Errorf("processing: %w", NewCatalogLoadingError(cause))

	kind, ok := KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindCatalogLoading, kind)
	assert.True(t, kind.Retryable())
	assert.ErrorIs(t, wrapped, cause)

	kind, ok = KindOf(cause)
	assert.False(t, ok)
	assert.Equal(t, KindUnknown, kind)
}

func TestProcessingError_Messages(t *testing.T) {
	err := NewNotFoundInCatalogError("G0418")
	assert.Equal(t, `article "G0418" not found in catalog`, err.Error())
	assert.False(t, err.Kind.Retryable())

	assert.ErrorIs(t, NewNoCodesFoundError(), ErrNoCodes)
	assert.ErrorIs(t, NewInvalidIdentifierError("   .xlsx"), ErrEmptyIdentifier)

	ioErr := NewIOError(ErrFileNotFound)
	assert.Equal(t, "io: file not found", ioErr.Error())
	assert.Equal(t, "io", KindIO.String())
}

func TestScanPolicy_Valid(t *testing.T) {
	assert.True(t, ScanPolicySkipEmpty.Valid())
	assert.True(t, ScanPolicyStopAtEmpty.Valid())
	assert.False(t, ScanPolicy("sometimes").Valid())
}
