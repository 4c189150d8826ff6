package portfolio

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	backendsqlite "github.com/louisbranch/portfolio/internal/backend/sqlite"
	"github.com/louisbranch/portfolio/internal/platform/cmd"
	"github.com/louisbranch/portfolio/internal/platform/logging"
	"github.com/louisbranch/portfolio/internal/platform/otel"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// SeedConfig holds the seed command configuration.
type SeedConfig struct {
	File       string `env:"PORTFOLIO_SEED_FILE" envDefault:"fixtures/portfolio.yaml"`
	SQLitePath string `env:"PORTFOLIO_SQLITE_PATH" envDefault:"data/portfolio.db"`
	Watch      bool   `env:"PORTFOLIO_SEED_WATCH"`

	Log     logging.Config
	Tracing otel.Config
}

func newSeedCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "seed",
		Short: "Load a YAML content fixture into the SQLite backend",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			var cfg SeedConfig
			if err := cmd.ParseConfig(&cfg); err != nil {
				return fmt.Errorf("parse env: %w", err)
			}
			if c.Flags().Changed("file") {
				cfg.File, _ = c.Flags().GetString("file")
			}
			if c.Flags().Changed("sqlite-path") {
				cfg.SQLitePath, _ = c.Flags().GetString("sqlite-path")
			}
			if c.Flags().Changed("watch") {
				cfg.Watch, _ = c.Flags().GetBool("watch")
			}
			return Seed(c.Context(), cfg, c.OutOrStdout())
		},
	}
	c.Flags().String("file", "", "YAML fixture to load")
	c.Flags().String("sqlite-path", "", "SQLite backend database path")
	c.Flags().Bool("watch", false, "Reseed whenever the fixture file changes")
	return c
}

// Seed replaces the backend tables named in the fixture. With Watch set it
// keeps reseeding on fixture changes until ctx is cancelled.
func Seed(ctx context.Context, cfg SeedConfig, out io.Writer) error {
	if strings.TrimSpace(cfg.File) == "" {
		return fmt.Errorf("fixture file is required")
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return cmd.Service{Name: cmd.ServiceSeed, Tracing: cfg.Tracing, Logger: logger}.Run(ctx, func(ctx context.Context) error {
		if err := ensureParentDir(cfg.SQLitePath); err != nil {
			return err
		}
		b, err := backendsqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return fmt.Errorf("open sqlite backend: %w", err)
		}
		defer b.Close()

		reseed := func(ctx context.Context) error {
			return seedFile(ctx, b, cfg.File, out, logger)
		}
		if err := reseed(ctx); err != nil {
			return err
		}
		if !cfg.Watch {
			return nil
		}
		w, err := newFixtureWatcher(cfg.File, logger)
		if err != nil {
			return err
		}
		return w.run(ctx, reseed)
	})
}

// seedFile decodes the fixture at path into b and prints one line per seeded
// table to out.
func seedFile(ctx context.Context, b *backendsqlite.Backend, path string, out io.Writer, logger *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	fixture, err := backendsqlite.DecodeFixture(f)
	if err != nil {
		return err
	}
	report, err := b.Seed(ctx, fixture)
	if err != nil {
		return err
	}
	for _, table := range backendsqlite.Tables() {
		n, ok := report[table]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "%s: %d\n", table, n)
	}
	logger.Info("seed complete", zap.String("file", path), zap.Int("tables", len(report)))
	return nil
}

// ensureParentDir creates the directory holding a database file.
func ensureParentDir(path string) error {
	if path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(filepath.Clean(path))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}
