package portfolio

import (
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/portfolio/internal/platform/logging"
	"github.com/louisbranch/portfolio/internal/platform/otel"
	"github.com/spf13/pflag"
)

// Backend names accepted by --backend and PORTFOLIO_BACKEND.
const (
	BackendPostgREST = "postgrest"
	BackendSQLite    = "sqlite"
)

// Config holds the serve command configuration.
type Config struct {
	HTTPAddr       string        `env:"PORTFOLIO_HTTP_ADDR" envDefault:"localhost:8080"`
	Backend        string        `env:"PORTFOLIO_BACKEND" envDefault:"sqlite"`
	BackendURL     string        `env:"PORTFOLIO_BACKEND_URL"`
	BackendKey     string        `env:"PORTFOLIO_BACKEND_KEY"`
	BackendTimeout time.Duration `env:"PORTFOLIO_BACKEND_TIMEOUT" envDefault:"5s"`
	SQLitePath     string        `env:"PORTFOLIO_SQLITE_PATH" envDefault:"data/portfolio.db"`
	CachePath      string        `env:"PORTFOLIO_CACHE_PATH"`
	SettingsTTL    time.Duration `env:"PORTFOLIO_SETTINGS_TTL" envDefault:"5m"`
	PortraitURL    string        `env:"PORTFOLIO_PORTRAIT_URL"`

	Log     logging.Config
	Tracing otel.Config
}

// Validate reports the first inconsistent setting.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return fmt.Errorf("http address is required")
	}
	switch cfg.Backend {
	case BackendPostgREST:
		if strings.TrimSpace(cfg.BackendURL) == "" {
			return fmt.Errorf("backend url is required for %s", BackendPostgREST)
		}
	case BackendSQLite:
		if strings.TrimSpace(cfg.SQLitePath) == "" {
			return fmt.Errorf("sqlite path is required for %s", BackendSQLite)
		}
	default:
		return fmt.Errorf("unsupported backend %q", cfg.Backend)
	}
	if cfg.SettingsTTL < 0 {
		return fmt.Errorf("settings ttl must not be negative")
	}
	return nil
}

// bindServeFlags registers the flags that may override environment values.
func bindServeFlags(fs *pflag.FlagSet) {
	fs.String("http-addr", "", "HTTP listen address")
	fs.String("backend", "", "Content backend: postgrest or sqlite")
	fs.String("backend-url", "", "PostgREST base URL")
	fs.String("sqlite-path", "", "SQLite backend database path")
	fs.String("cache-path", "", "SQLite settings cache path")
}

// applyServeFlags copies explicitly set flags over cfg.
func applyServeFlags(fs *pflag.FlagSet, cfg *Config) error {
	overrides := []struct {
		name   string
		target *string
	}{
		{"http-addr", &cfg.HTTPAddr},
		{"backend", &cfg.Backend},
		{"backend-url", &cfg.BackendURL},
		{"sqlite-path", &cfg.SQLitePath},
		{"cache-path", &cfg.CachePath},
	}
	for _, o := range overrides {
		if !fs.Changed(o.name) {
			continue
		}
		value, err := fs.GetString(o.name)
		if err != nil {
			return fmt.Errorf("read --%s: %w", o.name, err)
		}
		*o.target = strings.TrimSpace(value)
	}
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	return nil
}
