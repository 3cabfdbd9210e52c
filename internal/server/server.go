package server

import (
	"context"
	"fmt"

	"github.com/grachmannico95/codes-bot/internal/config"
	"github.com/grachmannico95/codes-bot/internal/handler"
	"github.com/grachmannico95/codes-bot/internal/middleware"
	"github.com/grachmannico95/codes-bot/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	cfg             *config.Config
	logger          *logger.Logger
	documentHandler *handler.DocumentHandler
	catalogHandler  *handler.CatalogHandler
	healthHandler   *handler.HealthHandler
	configured      bool
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	documentHandler *handler.DocumentHandler,
	catalogHandler *handler.CatalogHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &Server{
		echo:            e,
		cfg:             cfg,
		logger:          log,
		documentHandler: documentHandler,
		catalogHandler:  catalogHandler,
		healthHandler:   healthHandler,
	}
}

func (s *Server) Start() error {
	s.setup()

	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setup() {
	if s.configured {
		return
	}
	s.configured = true

	s.setupMiddleware()
	s.setupRoutes()
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.UserID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)

	s.echo.POST("/documents", s.documentHandler.Upload, echoMiddleware.BodyLimit(s.cfg.Upload.MaxSize))

	catalog := s.echo.Group("/catalog")
	catalog.GET("/articles/:article", s.catalogHandler.GetBarcode)
	catalog.GET("/barcodes/:barcode", s.catalogHandler.GetArticle)
	catalog.POST("/revalidate", s.catalogHandler.Revalidate)
}

func (s *Server) Handler() *echo.Echo {
	s.setup()
	return s.echo
}
