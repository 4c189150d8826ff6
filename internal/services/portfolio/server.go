// Package portfolio hosts the server-rendered portfolio site.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/louisbranch/portfolio/internal/platform/logging"
	"github.com/louisbranch/portfolio/internal/platform/metrics"
	"github.com/louisbranch/portfolio/internal/platform/timeouts"
	"github.com/louisbranch/portfolio/internal/services/portfolio/app"
	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"github.com/louisbranch/portfolio/internal/services/portfolio/modules"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/httpx"
	"github.com/louisbranch/portfolio/internal/services/portfolio/platform/observability"
	"github.com/louisbranch/portfolio/internal/services/portfolio/routepath"
	portfoliostatic "github.com/louisbranch/portfolio/internal/services/portfolio/static"
	"go.uber.org/zap"
)

// Config defines startup inputs for the portfolio service.
type Config struct {
	HTTPAddr    string
	Content     module.Content
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
	PortraitURL string
	Now         func() time.Time
}

// Server hosts the portfolio HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Content == nil {
		return nil, errors.New("content source is required")
	}
	logger := logging.OrNop(cfg.Logger)
	deps := module.Dependencies{
		Content:     cfg.Content,
		Logger:      logger,
		Metrics:     cfg.Metrics,
		PortraitURL: cfg.PortraitURL,
		Now:         cfg.Now,
	}

	router := chi.NewRouter()
	router.MethodNotAllowed(httpx.MethodNotAllowed(http.MethodGet))
	router.Get(routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.Metrics != nil {
		router.Handle(routepath.Metrics, cfg.Metrics.Handler())
	}
	router.Handle(routepath.StaticPrefix+"*", http.StripPrefix(routepath.StaticPrefix, portfoliostatic.Handler()))
	if err := app.Compose(router, app.ComposeInput{
		Dependencies: deps,
		Modules:      modules.DefaultModules(),
	}); err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	return httpx.Chain(router,
		httpx.RequestID(),
		httpx.RecoverPanic(logger),
		observability.RequestLogger(logger, cfg.Metrics),
	), nil
}

// NewServer validates config and constructs a portfolio server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose portfolio handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logging.OrNop(cfg.Logger),
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("portfolio server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("portfolio listening", zap.String("addr", s.httpAddr))
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown portfolio http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve portfolio http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
