package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// minSecretLen — минимальная длина секрета подписи токенов
const minSecretLen = 16

// ServerConfig содержит настройки сервера заметок
type ServerConfig struct {
	Addr           string        `env:"NOTES_ADDR" default:":8080"`
	DBPath         string        `env:"NOTES_SERVER_DB" default:"notekeeper-server.db"`
	JWTSecret      string        `env:"NOTES_JWT_SECRET"`
	LogLevel       string        `env:"LOG_LEVEL" default:"info"`
	LogFormat      string        `env:"LOG_FORMAT" default:"text"`
	TokenTTL       time.Duration `env:"NOTES_TOKEN_TTL" default:"24h"`
	AuthRateWindow time.Duration `env:"NOTES_AUTH_RATE_WINDOW" default:"1m"`
	AuthRateLimit  int           `env:"NOTES_AUTH_RATE_LIMIT" default:"10"`
	ShowVersion    bool
}

// LoadServer читает настройки сервера: .env, окружение, затем флаги из args
func LoadServer(args []string) (*ServerConfig, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	var cfg ServerConfig
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	fs := flag.NewFlagSet("notekeeper-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to server database")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing access tokens")
	fs.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "Access token lifetime")
	fs.IntVar(&cfg.AuthRateLimit, "auth-rate-limit", cfg.AuthRateLimit, "Auth requests per window per client")
	fs.DurationVar(&cfg.AuthRateWindow, "auth-rate-window", cfg.AuthRateWindow, "Auth rate limit window")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if cfg.ShowVersion {
		return &cfg, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет согласованность настроек сервера
func (c *ServerConfig) Validate() error {
	if c.Addr == "" {
		return errors.New("listen address cannot be empty")
	}
	if c.DBPath == "" {
		return errors.New("database path cannot be empty")
	}
	if len(c.JWTSecret) < minSecretLen {
		return fmt.Errorf("jwt secret must be at least %d characters (set NOTES_JWT_SECRET)", minSecretLen)
	}
	if c.TokenTTL <= 0 {
		return errors.New("token TTL must be positive")
	}
	if c.AuthRateLimit <= 0 || c.AuthRateWindow <= 0 {
		return errors.New("auth rate limit and window must be positive")
	}
	return nil
}
