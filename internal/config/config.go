package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config controls runtime behavior. Values come from the environment,
// optionally seeded from a .env file.
type Config struct {
	Frontend  string `env:"CRYPTOGRAM_FRONTEND"`
	Variant   string `env:"CRYPTOGRAM_VARIANT"`
	Source    string `env:"CRYPTOGRAM_SOURCE"`
	TextFile  string `env:"CRYPTOGRAM_TEXT_FILE"`
	QuoteFile string `env:"CRYPTOGRAM_QUOTE_FILE"`
	QuoteTag  string `env:"CRYPTOGRAM_QUOTE_TAG"`
	NoColor   string `env:"NO_COLOR"`
	LogFile   string `env:"CRYPTOGRAM_LOG_FILE"`
	LogLevel  string `env:"LOG_LEVEL"`
}

func DefaultConfig() Config {
	return Config{
		Frontend: "ansi",
		Variant:  "enhanced",
		Source:   "builtin",
		LogLevel: "info",
	}
}

// Load reads .env (if present) and the environment over DefaultConfig.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.Frontend = strings.ToLower(c.Frontend)
	switch c.Frontend {
	case "", "ansi", "tea":
	default:
		return fmt.Errorf("invalid frontend %q", c.Frontend)
	}
	if c.Frontend == "" {
		c.Frontend = "ansi"
	}

	c.Variant = strings.ToLower(c.Variant)
	switch c.Variant {
	case "", "enhanced", "legacy":
	default:
		return fmt.Errorf("invalid variant %q", c.Variant)
	}
	if c.Variant == "" {
		c.Variant = "enhanced"
	}

	c.Source = strings.ToLower(c.Source)
	switch c.Source {
	case "", "builtin", "quotes", "file":
	default:
		return fmt.Errorf("invalid text source %q", c.Source)
	}
	if c.Source == "" {
		c.Source = "builtin"
	}
	if c.Source == "file" && c.TextFile == "" {
		return errors.New("text source \"file\" needs CRYPTOGRAM_TEXT_FILE")
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	return nil
}

// Logger opens the log destination. The returned closer must be called on
// exit. With no log file configured logging is disabled, since the
// terminal is taken by the puzzle.
func (c Config) Logger() (zerolog.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}
	level, _ := zerolog.ParseLevel(c.LogLevel)
	log := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return log, f, nil
}
