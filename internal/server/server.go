// Package server exposes the smoother and the roadmap renderer over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/roadmapkit/trail/internal/config"
)

// ShutdownTimeout bounds how long in-flight requests may take once the
// server is asked to stop.
const ShutdownTimeout = 10 * time.Second

type Server struct {
	cfg     *config.Config
	logger  *zap.Logger
	app     *fiber.App
	metrics *metrics
}

func New(cfg *config.Config, logger *zap.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: newMetrics(),
	}
	s.app = fiber.New(fiber.Config{
		ReadTimeout:           cfg.Server.ReadTimeoutDuration(),
		WriteTimeout:          cfg.Server.WriteTimeoutDuration(),
		BodyLimit:             cfg.Server.BodyLimit,
		AppName:               "trail",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Use(s.metrics.middleware())
	s.app.Use(accessLog(s.logger))

	s.app.Get("/metrics", s.metrics.handler())
	s.app.Get("/healthz", s.handleHealth)

	v1 := s.app.Group("/v1")
	v1.Get("/path", s.handlePath)
	v1.Post("/roadmaps/render", s.handleRender)
	v1.Post("/roadmaps/trail", s.handleTrail)
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves requests on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", ln.Addr().String()))
		errc <- s.app.Listener(ln)
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}
