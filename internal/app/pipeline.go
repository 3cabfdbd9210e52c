// Package app assembles the processing pipeline from configuration. It is
// shared by the HTTP server and the command line tool.
package app

import (
	"context"
	"fmt"

	"github.com/grachmannico95/codes-bot/internal/catalog"
	"github.com/grachmannico95/codes-bot/internal/config"
	"github.com/grachmannico95/codes-bot/internal/encoder"
	"github.com/grachmannico95/codes-bot/internal/service"
	"github.com/grachmannico95/codes-bot/internal/storage"
	"github.com/grachmannico95/codes-bot/pkg/cache"
	"github.com/grachmannico95/codes-bot/pkg/logger"
)

type Pipeline struct {
	Catalog   *catalog.Store
	Processor *service.FileProcessor
	Encoder   encoder.Encoder
}

func NewPipeline(cfg *config.Config, log *logger.Logger) (*Pipeline, error) {
	ctx := context.Background()

	source, err := catalog.NewXLSXSource(catalog.SourceConfig{
		Path:          cfg.Catalog.FilePath,
		ArticleColumn: cfg.Catalog.ArticleColumn,
		BarcodeColumn: cfg.Catalog.BarcodeColumn,
		Policy:        cfg.Catalog.ScanPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog source: %w", err)
	}

	strategy, err := cache.New[*catalog.Snapshot](cfg.Catalog.CacheStrategy)
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "Catalog cache initialized",
		"strategy", strategy.Name(),
		"ttl", cfg.Catalog.CacheTTL.String(),
	)

	store := catalog.NewStore(source, storage.NewMemoryIndex(), strategy, cfg.Catalog.CacheTTL, log)

	processor, err := service.NewFileProcessor(store, service.FileProcessorConfig{
		CodeColumn: cfg.Codes.Column,
		Policy:     cfg.Codes.ScanPolicy,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("file processor: %w", err)
	}

	enc, err := encoder.New(cfg.Result.Format)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		Catalog:   store,
		Processor: processor,
		Encoder:   enc,
	}, nil
}
