package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/codes-bot/internal/domain"
	"github.com/grachmannico95/codes-bot/internal/encoder"
	"github.com/grachmannico95/codes-bot/internal/eventbus"
	"github.com/grachmannico95/codes-bot/pkg/logger"
)

type DocumentService interface {
	// HandleDocument stores the upload in a temporary file, runs the
	// pipeline and renders the result. The temporary file is always removed.
	HandleDocument(ctx context.Context, userID, fileName string, content io.Reader) (*Result, error)
}

type Result struct {
	File     *domain.ProcessedFile
	Artifact *encoder.Artifact
}

type DocumentServiceConfig struct {
	TempDir           string
	AllowedExtensions []string
}

type documentService struct {
	processor FileProcessorInterface
	encoder   encoder.Encoder
	eventBus  eventbus.EventBus
	cfg       DocumentServiceConfig
	logger    *logger.Logger
}

func NewDocumentService(
	processor FileProcessorInterface,
	enc encoder.Encoder,
	eventBus eventbus.EventBus,
	cfg DocumentServiceConfig,
	log *logger.Logger,
) DocumentService {
	if len(cfg.AllowedExtensions) == 0 {
		cfg.AllowedExtensions = DefaultAllowedExtensions
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}

	return &documentService{
		processor: processor,
		encoder:   enc,
		eventBus:  eventBus,
		cfg:       cfg,
		logger:    log,
	}
}

func (s *documentService) HandleDocument(ctx context.Context, userID, fileName string, content io.Reader) (*Result, error) {
	fileName = filepath.Base(fileName)
	ctx = logger.WithFileName(logger.WithUserID(ctx, userID), fileName)

	if !ValidateExtension(fileName, s.cfg.AllowedExtensions) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedExtension, fileName)
	}

	// One directory per upload keeps the original name, which carries the article.
	dir := filepath.Join(s.cfg.TempDir, uuid.New().String())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			s.logger.Warn(ctx, "Failed to remove temp dir",
				"dir", dir,
				"error", err,
			)
		}
	}()

	path := filepath.Join(dir, fileName)
	if err := saveFile(path, content); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Document saved, processing")

	processed, err := s.processor.ProcessFile(ctx, path)
	if err != nil {
		return nil, err
	}

	artifact, err := s.encoder.Encode(processed)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}

	event := eventbus.Event{
		ID:   uuid.New().String(),
		Type: eventbus.EventTypeFileProcessed,
		Payload: eventbus.FileProcessedEvent{
			UserID:    userID,
			Article:   processed.Article,
			FileName:  processed.FileName,
			CodeCount: len(processed.Codes),
		},
		Timestamp: time.Now(),
	}
	if err := s.eventBus.Publish(ctx, event); err != nil {
		s.logger.Warn(ctx, "Failed to publish file processed event",
			"event_id", event.ID,
			"error", err,
		)
	}

	return &Result{File: processed, Artifact: artifact}, nil
}

func saveFile(path string, content io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return nil
}
