package config

import (
	"context"
	"fmt"
	"net/url"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port        string   `env:"PORT, default=5000"`
	Env         string   `env:"ENV, default=development"`
	LogLevel    string   `env:"LOG_LEVEL, default=info"`
	LogFile     string   `env:"LOG_FILE, default=server.log"`
	CORSOrigins []string `env:"CORS_ALLOW_ORIGINS, default=http://localhost:5173"`

	DB DBConfig
}

type DBConfig struct {
	Driver   string `env:"DB_DRIVER, default=postgres"`
	Host     string `env:"DB_HOST, default=localhost"`
	Port     string `env:"DB_PORT, default=5432"`
	User     string `env:"DB_USER, default=postgres"`
	Password string `env:"DB_PASSWORD, default=postgres"`
	Name     string `env:"DB_NAME, default=support_center"`
	SSLMode  string `env:"DB_SSLMODE, default=disable"`
	// Path is the sqlite database file (or file: URI) when Driver is sqlite.
	Path string `env:"DB_PATH, default=data/support_center.db"`
}

// DSN renders the connection string for the configured driver.
func (c DBConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// IsDevelopment reports whether the process runs outside production.
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

// Load reads configs/.env when present, then decodes the process environment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load("configs/.env")
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith decodes configuration from the given lookuper.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}

	switch cfg.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("config: unsupported DB_DRIVER %q", cfg.DB.Driver)
	}
	return &cfg, nil
}
