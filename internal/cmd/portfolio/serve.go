package portfolio

import (
	"context"
	"fmt"

	"github.com/louisbranch/portfolio/internal/backend"
	"github.com/louisbranch/portfolio/internal/backend/instrument"
	"github.com/louisbranch/portfolio/internal/backend/postgrest"
	backendsqlite "github.com/louisbranch/portfolio/internal/backend/sqlite"
	"github.com/louisbranch/portfolio/internal/content"
	"github.com/louisbranch/portfolio/internal/platform/cmd"
	"github.com/louisbranch/portfolio/internal/platform/logging"
	"github.com/louisbranch/portfolio/internal/platform/metrics"
	site "github.com/louisbranch/portfolio/internal/services/portfolio"
	storagesqlite "github.com/louisbranch/portfolio/internal/storage/sqlite"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the portfolio web server",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := loadServeConfig(c)
			if err != nil {
				return err
			}
			return Run(c.Context(), cfg)
		},
	}
	bindServeFlags(c.Flags())
	return c
}

func loadServeConfig(c *cobra.Command) (Config, error) {
	var cfg Config
	if err := cmd.ParseConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := applyServeFlags(c.Flags(), &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the portfolio server and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return cmd.Service{Name: cmd.ServiceWeb, Tracing: cfg.Tracing, Logger: logger}.Run(ctx, func(ctx context.Context) error {
		m := metrics.New()

		client, closeBackend, err := openBackend(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeBackend()

		opts := []content.Option{
			content.WithLogger(logger),
			content.WithSettingsObserver(m.ObserveSettingsLookup),
		}
		if cfg.SettingsTTL > 0 {
			opts = append(opts, content.WithSettingsTTL(cfg.SettingsTTL))
		}
		if cfg.CachePath != "" {
			if err := ensureParentDir(cfg.CachePath); err != nil {
				return err
			}
			store, err := storagesqlite.Open(ctx, cfg.CachePath)
			if err != nil {
				return fmt.Errorf("open settings cache: %w", err)
			}
			defer func() {
				if err := store.Close(); err != nil {
					logger.Warn("close settings cache", zap.Error(err))
				}
			}()
			if n, err := store.PurgeExpired(ctx); err != nil {
				logger.Warn("purge expired snapshots", zap.Error(err))
			} else if n > 0 {
				logger.Info("purged expired snapshots", zap.Int64("count", n))
			}
			opts = append(opts, content.WithSettingsCache(store))
		}
		repo := content.NewRepository(instrument.Wrap(client, m), opts...)

		server, err := site.NewServer(ctx, site.Config{
			HTTPAddr:    cfg.HTTPAddr,
			Content:     repo,
			Logger:      logger,
			Metrics:     m,
			PortraitURL: cfg.PortraitURL,
		})
		if err != nil {
			return fmt.Errorf("init portfolio server: %w", err)
		}
		defer server.Close()

		logger.Info("content backend ready", zap.String("backend", cfg.Backend), zap.Bool("settings_cache", cfg.CachePath != ""))
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve portfolio: %w", err)
		}
		return nil
	})
}

func openBackend(ctx context.Context, cfg Config) (backend.Client, func(), error) {
	switch cfg.Backend {
	case BackendPostgREST:
		client, err := postgrest.New(postgrest.Config{
			BaseURL: cfg.BackendURL,
			APIKey:  cfg.BackendKey,
			Timeout: cfg.BackendTimeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("init postgrest backend: %w", err)
		}
		return client, func() {}, nil
	case BackendSQLite:
		if err := ensureParentDir(cfg.SQLitePath); err != nil {
			return nil, nil, err
		}
		b, err := backendsqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		return b, func() { _ = b.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported backend %q", cfg.Backend)
	}
}
