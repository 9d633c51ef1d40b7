// Package config loads runtime settings from the environment, optionally
// seeded by a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when Load is given an empty path.
const DefaultEnvFile = ".env"

// Config holds all settings for one run.
type Config struct {
	// ExportDir is where ventas.csv and control_merma.xlsx are written.
	ExportDir string
	// LogoPath names the optional banner shown in the header.
	LogoPath string
	// SpreadsheetEnabled turns the xlsx export capability on or off.
	SpreadsheetEnabled bool
	Log                LogConfig
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string
	Format string
	// File receives log records. Empty discards them in the TUI and uses
	// stderr for non-interactive commands.
	File string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		ExportDir:          ".",
		LogoPath:           "logo.txt",
		SpreadsheetEnabled: true,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads MERMA_* variables. Values from envFile fill in anything not
// already set in the process environment; a missing file is not an error.
// envFile defaults to DefaultEnvFile.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	fileVals, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading env file %s: %w", envFile, err)
		}
		fileVals = map[string]string{}
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return fileVals[key]
	}

	cfg := DefaultConfig()
	if v := lookup("MERMA_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := lookup("MERMA_LOGO"); v != "" {
		cfg.LogoPath = v
	}
	if v := lookup("MERMA_SPREADSHEET_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("MERMA_SPREADSHEET_ENABLED: %w", err)
		}
		cfg.SpreadsheetEnabled = b
	}
	if v := lookup("MERMA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := lookup("MERMA_LOG_FORMAT"); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v := lookup("MERMA_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings that cannot work.
func (c Config) Validate() error {
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("MERMA_LOG_FORMAT must be text or json, got %q", c.Log.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("MERMA_LOG_LEVEL must be debug, info, warn or error, got %q", c.Log.Level)
	}
	if strings.TrimSpace(c.ExportDir) == "" {
		return errors.New("MERMA_EXPORT_DIR must not be blank")
	}
	return nil
}
