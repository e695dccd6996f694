package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// ClientOrigin is the origin of the browser client. The session cookie is
	// SameSite=None, so CORS must allow exactly this origin with credentials;
	// a wildcard is rejected by browsers on credentialed requests.
	ClientOrigin string `env:"CLIENT_ORIGIN, default=http://localhost:5173"`
	// CookieDomain scopes the session cookie. Empty means host-only.
	CookieDomain string `env:"COOKIE_DOMAIN"`

	Database DatabaseConfig
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     string `env:"DB_PORT,     default=5432"`
	User     string `env:"DB_USER,     default=postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME,     default=store_ratings"`
	SSLMode  string `env:"DB_SSLMODE,  default=disable"`
}

// DSN renders the PostgreSQL connection string the gorm driver expects.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Load reads configuration from the environment using go-envconfig. A .env
// file is merged in first when present; its absence is not an error.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	return &cfg, nil
}
