package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grachmannico95/codes-bot/internal/domain"
	"github.com/grachmannico95/codes-bot/internal/encoder"
	"github.com/grachmannico95/codes-bot/internal/eventbus"
	"github.com/grachmannico95/codes-bot/mocks"
	"github.com/grachmannico95/codes-bot/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDocumentService(t *testing.T, processor FileProcessorInterface, bus eventbus.EventBus) (DocumentService, string) {
	t.Helper()

	tempDir := t.TempDir()
	svc := NewDocumentService(processor, encoder.NewTextEncoder(), bus, DocumentServiceConfig{
		TempDir: tempDir,
	}, logger.NewNop())

	return svc, tempDir
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp files must be removed")
}

func TestNewDocumentService(t *testing.T) {
	svc := NewDocumentService(mocks.NewMockFileProcessorInterface(t), encoder.NewTextEncoder(), mocks.NewMockEventBus(t), DocumentServiceConfig{}, logger.NewNop())

	assert.NotNil(t, svc)
	assert.Implements(t, (*DocumentService)(nil), svc)
}

func TestHandleDocument_Success(t *testing.T) {
	processor := mocks.NewMockFileProcessorInterface(t)
	bus := mocks.NewMockEventBus(t)
	svc, tempDir := newDocumentService(t, processor, bus)

	processed := &domain.ProcessedFile{
		Article:  "G0418",
		FileName: "G0418 test.xlsx",
		Codes:    []string{"CODE001", "CODE002"},
		Barcode:  "4601234567890",
	}

	processor.EXPECT().
		ProcessFile(mock.Anything, mock.MatchedBy(func(path string) bool {
			content, err := os.ReadFile(path)
			return err == nil &&
				filepath.Base(path) == "G0418 test.xlsx" &&
				string(content) == "workbook bytes"
		})).
		Return(processed, nil).
		Once()

	bus.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e eventbus.Event) bool {
			payload, ok := e.Payload.(eventbus.FileProcessedEvent)
			return ok &&
				e.Type == eventbus.EventTypeFileProcessed &&
				payload.UserID == "42" &&
				payload.Article == "G0418" &&
				payload.CodeCount == 2
		})).
		Return(nil).
		Once()

	result, err := svc.HandleDocument(context.Background(), "42", "G0418 test.xlsx", strings.NewReader("workbook bytes"))
	require.NoError(t, err)

	assert.Equal(t, processed, result.File)
	assert.Equal(t, "codes_G0418.txt", result.Artifact.FileName)
	assertDirEmpty(t, tempDir)
}

func TestHandleDocument_UnsupportedExtension(t *testing.T) {
	svc, tempDir := newDocumentService(t, mocks.NewMockFileProcessorInterface(t), mocks.NewMockEventBus(t))

	_, err := svc.HandleDocument(context.Background(), "42", "report.pdf", strings.NewReader("x"))

	assert.ErrorIs(t, err, domain.ErrUnsupportedExtension)
	assertDirEmpty(t, tempDir)
}

func TestHandleDocument_ProcessingErrorCleansUp(t *testing.T) {
	processor := mocks.NewMockFileProcessorInterface(t)
	svc, tempDir := newDocumentService(t, processor, mocks.NewMockEventBus(t))

	processor.EXPECT().
		ProcessFile(mock.Anything, mock.AnythingOfType("string")).
		Return(nil, domain.NewNotFoundInCatalogError("INVALID")).
		Once()

	_, err := svc.HandleDocument(context.Background(), "42", "INVALID test.xlsx", strings.NewReader("x"))

	kind, ok := domain.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindNotFoundInCatalog, kind)
	assertDirEmpty(t, tempDir)
}

func TestHandleDocument_PublishFailureDoesNotFailRequest(t *testing.T) {
	processor := mocks.NewMockFileProcessorInterface(t)
	bus := mocks.NewMockEventBus(t)
	svc, _ := newDocumentService(t, processor, bus)

	processor.EXPECT().
		ProcessFile(mock.Anything, mock.AnythingOfType("string")).
		Return(&domain.ProcessedFile{Article: "G0418", Codes: []string{"C"}, Barcode: "1"}, nil).
		Once()
	bus.EXPECT().
		Publish(mock.Anything, mock.Anything).
		Return(errors.New("bus closed")).
		Once()

	result, err := svc.HandleDocument(context.Background(), "42", "G0418.xlsx", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "G0418", result.File.Article)
}

func TestHandleDocument_StripsDirectoriesFromName(t *testing.T) {
	processor := mocks.NewMockFileProcessorInterface(t)
	bus := mocks.NewMockEventBus(t)
	svc, tempDir := newDocumentService(t, processor, bus)

	processor.EXPECT().
		ProcessFile(mock.Anything, mock.MatchedBy(func(path string) bool {
			return strings.HasPrefix(path, tempDir) && filepath.Base(path) == "G0418.xlsx"
		})).
		Return(&domain.ProcessedFile{Article: "G0418", Codes: []string{"C"}, Barcode: "1"}, nil).
		Once()
	bus.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.HandleDocument(context.Background(), "42", "../../etc/G0418.xlsx", strings.NewReader("x"))
	require.NoError(t, err)
}
