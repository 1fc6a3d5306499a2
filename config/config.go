// Package config loads the service configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ifmsabrazil/adminpanel/utils"
)

type Config struct {
	HTTPAddr       string        `env:"ADMINPANEL_HTTP_ADDR" envDefault:":8000"`
	DatabaseDSN    string        `env:"ADMINPANEL_DB_DSN,required"`
	JWTSecret      string        `env:"ADMINPANEL_JWT_SECRET,required"`
	LogLevel       string        `env:"ADMINPANEL_LOG_LEVEL" envDefault:"info"`
	OtelEndpoint   string        `env:"ADMINPANEL_OTEL_ENDPOINT"`
	RequestTimeout time.Duration `env:"ADMINPANEL_REQUEST_TIMEOUT" envDefault:"15s"`

	S3Bucket          string `env:"ADMINPANEL_S3_BUCKET"`
	S3Region          string `env:"ADMINPANEL_S3_REGION"`
	S3AccessKeyID     string `env:"ADMINPANEL_S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"ADMINPANEL_S3_SECRET_ACCESS_KEY"`
}

// Load reads files (".env" when none are given) into the process environment
// and parses the result. Missing files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) S3() utils.S3Config {
	return utils.S3Config{
		Bucket:          c.S3Bucket,
		Region:          c.S3Region,
		AccessKeyID:     c.S3AccessKeyID,
		SecretAccessKey: c.S3SecretAccessKey,
	}
}

// Level maps LogLevel to a slog level, falling back to info for unknown
// values.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewLogger returns a JSON logger writing to stderr at the configured level.
func (c Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: c.Level()}))
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
