// Package config loads tool configuration and sets up logging.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values.
type Config struct {
	// Logging
	LogFile  string
	LogLevel slog.Level

	// Terminal output
	NoColor bool
}

// fileConfig is the YAML shape of the optional config file.
type fileConfig struct {
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
	NoColor  bool   `yaml:"no_color"`
}

// Load reads configuration from the optional YAML file ($MEX_CONFIG or
// ~/.config/mex/config.yaml), then lets environment variables override.
func Load() Config {
	fc := loadFile()

	logLevel := fc.LogLevel
	if logLevel == "" {
		logLevel = "INFO"
	}

	return Config{
		LogFile:  getEnv("MEX_LOG_FILE", fc.LogFile),
		LogLevel: parseLogLevel(getEnv("MEX_LOG_LEVEL", logLevel)),
		NoColor:  fc.NoColor || os.Getenv("NO_COLOR") != "",
	}
}

// loadFile reads the config file if one exists. A missing or malformed
// file yields defaults; configuration must never block the tool.
func loadFile() fileConfig {
	path := os.Getenv("MEX_CONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fileConfig{}
		}
		path = filepath.Join(home, ".config", "mex", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}
	}
	return fc
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
