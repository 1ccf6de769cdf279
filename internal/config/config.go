// Package config собирает настройки клиента из значений по умолчанию,
// файла .env, переменных окружения и флагов командной строки
// (в порядке возрастания приоритета).
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

const (
	// DefaultServerURL — адрес API заметок
	DefaultServerURL = "https://dist.nd.ru"

	StorageBolt   = "bolt"
	StorageSQLite = "sqlite"
)

// Config содержит настройки клиента
type Config struct {
	ServerURL   string `env:"NOTES_SERVER_URL" default:"https://dist.nd.ru"`
	Storage     string `env:"NOTES_STORAGE" default:"bolt"`
	DBPath      string `env:"NOTES_DB_PATH" default:"notekeeper.db"`
	LogLevel    string `env:"LOG_LEVEL" default:"warn"`
	LogFormat   string `env:"LOG_FORMAT" default:"text"`
	ShowVersion bool
}

// Load читает .env (если есть), окружение и затем флаги из args.
// Возвращает оставшиеся позиционные аргументы (команду и ее параметры).
func Load(args []string) (*Config, []string, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	rest, err := cfg.parseFlags(args)
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return &cfg, rest, nil
}

// parseFlags применяет флаги поверх уже загруженных значений
func (c *Config) parseFlags(args []string) ([]string, error) {
	fs := flag.NewFlagSet("notekeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&c.ShowVersion, "version", false, "Show version information")
	fs.StringVar(&c.ServerURL, "server", c.ServerURL, "Server URL")
	fs.StringVar(&c.Storage, "storage", c.Storage, "Local storage backend (bolt|sqlite)")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "Path to local database")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "Log format (text|json)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	return fs.Args(), nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid server URL %q: scheme must be http or https", c.ServerURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid server URL %q: host is empty", c.ServerURL)
	}

	switch c.Storage {
	case StorageBolt, StorageSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q: use %s or %s", c.Storage, StorageBolt, StorageSQLite)
	}

	if c.DBPath == "" {
		return errors.New("database path cannot be empty")
	}

	return nil
}
