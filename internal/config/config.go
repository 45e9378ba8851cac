package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/Lumos-Labs-HQ/martgen/internal/gen"
)

// Config is the recognized surface of martgen.yaml. Every option is
// purely generative or a path: changing one never changes the shape of
// the invariants the pipeline enforces, only volume and content.
type Config struct {
	DataDir   string    `yaml:"data_dir" mapstructure:"data_dir"`
	Generator Generator `yaml:"generator" mapstructure:"generator"`
	Database  Database  `yaml:"database" mapstructure:"database"`
}

type Generator struct {
	Seed      int64 `yaml:"seed" mapstructure:"seed"`
	Customers int   `yaml:"customers" mapstructure:"customers"`
	Products  int   `yaml:"products" mapstructure:"products"`
	Orders    int   `yaml:"orders" mapstructure:"orders"`
	Reviews   int   `yaml:"reviews" mapstructure:"reviews"`
	// WindowEnd anchors every generated date. It is configuration
	// rather than the clock so that output is reproducible.
	WindowEnd string `yaml:"window_end" mapstructure:"window_end"`
	// Span fields bound how many days before the window end each
	// entity's dates may fall.
	CustomerSpanDays int `yaml:"customer_span_days" mapstructure:"customer_span_days"`
	ProductSpanDays  int `yaml:"product_span_days" mapstructure:"product_span_days"`
	OrderSpanDays    int `yaml:"order_span_days" mapstructure:"order_span_days"`
	ReviewSpanDays   int `yaml:"review_span_days" mapstructure:"review_span_days"`
}

type Database struct {
	Provider string `yaml:"provider" mapstructure:"provider"`
	Path     string `yaml:"path" mapstructure:"path"`
	URLEnv   string `yaml:"url_env" mapstructure:"url_env"`
}

// Default returns the configuration a fresh `martgen init` writes.
func Default() *Config {
	spans := gen.DefaultSpans()
	return &Config{
		DataDir: "data",
		Generator: Generator{
			Seed:             42,
			Customers:        500,
			Products:         200,
			Orders:           1500,
			Reviews:          800,
			WindowEnd:        "2025-06-30",
			CustomerSpanDays: spans.Customers,
			ProductSpanDays:  spans.Products,
			OrderSpanDays:    spans.Orders,
			ReviewSpanDays:   spans.Reviews,
		},
		Database: Database{
			Provider: "sqlite",
			Path:     "db/ecommerce.db",
			URLEnv:   "DATABASE_URL",
		},
	}
}

// Load unmarshals whatever viper has read and fills in defaults for
// anything unset.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	def := Default()
	if cfg.DataDir == "" {
		cfg.DataDir = def.DataDir
	}
	if cfg.Generator.Seed == 0 {
		cfg.Generator.Seed = def.Generator.Seed
	}
	if cfg.Generator.Customers == 0 {
		cfg.Generator.Customers = def.Generator.Customers
	}
	if cfg.Generator.Products == 0 {
		cfg.Generator.Products = def.Generator.Products
	}
	if cfg.Generator.Orders == 0 {
		cfg.Generator.Orders = def.Generator.Orders
	}
	if cfg.Generator.Reviews == 0 {
		cfg.Generator.Reviews = def.Generator.Reviews
	}
	if cfg.Generator.WindowEnd == "" {
		cfg.Generator.WindowEnd = def.Generator.WindowEnd
	}
	if cfg.Generator.CustomerSpanDays <= 0 {
		cfg.Generator.CustomerSpanDays = def.Generator.CustomerSpanDays
	}
	if cfg.Generator.ProductSpanDays <= 0 {
		cfg.Generator.ProductSpanDays = def.Generator.ProductSpanDays
	}
	if cfg.Generator.OrderSpanDays <= 0 {
		cfg.Generator.OrderSpanDays = def.Generator.OrderSpanDays
	}
	if cfg.Generator.ReviewSpanDays <= 0 {
		cfg.Generator.ReviewSpanDays = def.Generator.ReviewSpanDays
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = def.Database.Provider
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = def.Database.Path
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = def.Database.URLEnv
	}

	return &cfg, nil
}

// WindowEnd parses the configured window end, accepting a bare date or
// a full timestamp.
func (c *Config) WindowEnd() (time.Time, error) {
	if t, err := time.Parse("2006-01-02", c.Generator.WindowEnd); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", c.Generator.WindowEnd)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid window_end %q: %w", c.Generator.WindowEnd, err)
	}
	return t, nil
}

// Spans assembles the configured per-entity date spans.
func (c *Config) Spans() gen.Spans {
	return gen.Spans{
		Customers: c.Generator.CustomerSpanDays,
		Products:  c.Generator.ProductSpanDays,
		Orders:    c.Generator.OrderSpanDays,
		Reviews:   c.Generator.ReviewSpanDays,
	}
}

// DSN resolves the store location: the db file path for sqlite, the
// configured environment variable for postgres.
func (c *Config) DSN() (string, error) {
	switch c.Database.Provider {
	case "", "sqlite", "sqlite3":
		return c.Database.Path, nil
	default:
		dsn := os.Getenv(c.Database.URLEnv)
		if dsn == "" {
			return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
		}
		return dsn, nil
	}
}

// SqliteBacked reports whether the configured provider is the embedded
// store.
func (c *Config) SqliteBacked() bool {
	switch c.Database.Provider {
	case "", "sqlite", "sqlite3":
		return true
	}
	return false
}
