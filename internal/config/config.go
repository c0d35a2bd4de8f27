// Package config loads server settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileEnv names the environment variable holding the config file path.
const FileEnv = "HOUSEHUB_CONFIG"

type Config struct {
	DatabasePath  string `yaml:"database_path"`
	Namespace     string `yaml:"namespace"`
	Port          string `yaml:"port"`
	LogLevel      string `yaml:"log_level"`
	AllowedOrigin string `yaml:"allowed_origin"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		DatabasePath:  "./data/househub.db",
		Namespace:     "househub",
		Port:          "8080",
		LogLevel:      "info",
		AllowedOrigin: "*",
	}
}

// Load applies the config file named by HOUSEHUB_CONFIG (if any) over the
// defaults, then environment overrides, then validates the result.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(FileEnv); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.DatabasePath = envOrDefault("DB_PATH", cfg.DatabasePath)
	cfg.Namespace = envOrDefault("HOUSEHUB_NAMESPACE", cfg.Namespace)
	cfg.Port = envOrDefault("PORT", cfg.Port)
	cfg.LogLevel = envOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.AllowedOrigin = envOrDefault("ALLOWED_ORIGIN", cfg.AllowedOrigin)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Namespace) == "" {
		return errors.New("namespace is required")
	}
	if c.DatabasePath == "" {
		return errors.New("database path is required")
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	return nil
}

// Addr is the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
