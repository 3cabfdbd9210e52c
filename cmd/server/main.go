package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/grachmannico95/codes-bot/internal/app"
	"github.com/grachmannico95/codes-bot/internal/config"
	"github.com/grachmannico95/codes-bot/internal/eventbus"
	"github.com/grachmannico95/codes-bot/internal/handler"
	"github.com/grachmannico95/codes-bot/internal/server"
	"github.com/grachmannico95/codes-bot/internal/service"
	"github.com/grachmannico95/codes-bot/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	pipeline, err := app.NewPipeline(cfg, log)
	if err != nil {
		log.Fatal(ctx, "Failed to build processing pipeline",
			"error", err,
		)
	}

	// A missing catalog is not fatal: uploads report it and the next request retries.
	if err := pipeline.Catalog.Load(ctx); err != nil {
		log.Warn(ctx, "Catalog not loaded at startup",
			"path", cfg.Catalog.FilePath,
			"error", err,
		)
	} else {
		log.Info(ctx, "Catalog loaded",
			"entries", pipeline.Catalog.Size(),
		)
	}

	eventBusCfg := &eventbus.Config{
		ChannelBuffer: cfg.EventBus.ChannelBufferSize,
		MaxRetries:    cfg.Worker.MaxRetries,
	}
	bus := eventbus.New(log, eventBusCfg)
	log.Info(ctx, "Event bus initialized")

	batchConsumer := eventbus.NewBatchNotificationConsumer(
		eventbus.NewLogNotifier(log),
		log,
		cfg.Batch.Timeout,
		cfg.Worker.PoolSize,
	)
	log.Info(ctx, "Batch notification consumer initialized",
		"worker_count", cfg.Worker.PoolSize,
		"batch_timeout", cfg.Batch.Timeout.String(),
	)

	err = bus.Subscribe(eventbus.EventTypeFileProcessed, batchConsumer)
	if err != nil {
		log.Fatal(ctx, "Failed to subscribe consumer",
			"error", err,
		)
	}

	err = bus.Start(ctx)
	if err != nil {
		log.Fatal(ctx, "Failed to start event bus",
			"error", err,
		)
	}

	documentService := service.NewDocumentService(
		pipeline.Processor,
		pipeline.Encoder,
		bus,
		service.DocumentServiceConfig{
			TempDir:           cfg.Upload.TempDir,
			AllowedExtensions: cfg.Upload.AllowedExtensions,
		},
		log,
	)
	log.Info(ctx, "Services initialized")

	documentHandler := handler.NewDocumentHandler(documentService, log)
	catalogHandler := handler.NewCatalogHandler(pipeline.Catalog, log)
	healthHandler := handler.NewHealthHandler(pipeline.Catalog, bus)
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, documentHandler, catalogHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// 1. Stop accepting new uploads
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	// 2. Stop event bus and wait for workers to finish; queued events are dropped
	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Event bus shutdown error",
			"error", err,
		)
	}

	// 3. Drop pending batch timers
	batchConsumer.Close()

	log.Info(ctx, "Application stopped gracefully")
}
