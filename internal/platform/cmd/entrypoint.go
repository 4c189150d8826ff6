// Package cmd holds entrypoint helpers shared by the portfolio commands.
package cmd

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/louisbranch/portfolio/internal/platform/config"
	"github.com/louisbranch/portfolio/internal/platform/otel"
	"go.uber.org/zap"
)

// Names reported as the otel service.name resource attribute.
const (
	ServiceWeb  = "portfolio-web"
	ServiceSeed = "portfolio-seed"
)

const flushTimeout = 5 * time.Second

// ParseConfig fills cfg from the process environment.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.Load(cfg, nil)
}

// Service describes one command's run under tracing.
type Service struct {
	Name    string
	Tracing otel.Config
	// Logger receives tracer flush failures. Nil discards them.
	Logger *zap.Logger
	// FlushTimeout bounds the tracer shutdown. Zero means five seconds.
	FlushTimeout time.Duration
}

// Run installs the tracer provider, calls run and flushes spans on the way out.
// The error from run is returned unchanged.
func (s Service) Run(ctx context.Context, run func(context.Context) error) error {
	name := strings.TrimSpace(s.Name)
	switch {
	case name == "":
		return errors.New("service name is required")
	case run == nil:
		return errors.New("run function is required")
	}

	shutdown, err := otel.Setup(ctx, name, s.Tracing)
	if err != nil {
		return err
	}
	defer s.flush(name, shutdown)

	return run(ctx)
}

func (s Service) flush(name string, shutdown func(context.Context) error) {
	timeout := s.FlushTimeout
	if timeout <= 0 {
		timeout = flushTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := shutdown(ctx); err != nil && s.Logger != nil {
		s.Logger.Warn("flush traces", zap.String("service", name), zap.Error(err))
	}
}
