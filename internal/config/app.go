// Package config loads the application configuration from YAML with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "mystical-api/pkg/config"
)

// AppConfig represents the server configuration.
type AppConfig struct {
	Server struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		IdleTimeout     time.Duration `yaml:"idle_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	} `yaml:"server"`

	RateLimit struct {
		// MutationsPerMinute caps POST traffic per client IP.
		MutationsPerMinute int `yaml:"mutations_per_minute"`
	} `yaml:"rate_limit"`
}

// Default returns the configuration used when no YAML file is present.
func Default() *AppConfig {
	c := &AppConfig{}
	c.Server.Port = 8000
	c.Server.ReadTimeout = 10 * time.Second
	c.Server.WriteTimeout = 30 * time.Second
	c.Server.IdleTimeout = 60 * time.Second
	c.Server.ShutdownTimeout = 15 * time.Second
	c.Server.MaxBodyBytes = 1 << 20 // 1MB
	c.RateLimit.MutationsPerMinute = 30
	return c
}

// Load reads the configuration from the YAML file at path, falling back to
// defaults when the file does not exist. Environment variables override the
// file: PORT takes precedence over server.port.
// The path parameter is expected to come from a trusted source.
func Load(path string) (*AppConfig, error) {
	config := Default()

	if path != "" {
		// #nosec G304 -- path is provided by trusted source (CLI arg or env), not user input
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// 設定ファイルが無い場合はデフォルトで起動
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	config.Server.Port = pkgconfig.GetEnvInt("PORT", config.Server.Port)

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return config, nil
}

func validate(config *AppConfig) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535")
	}
	for name, d := range map[string]time.Duration{
		"read_timeout":     config.Server.ReadTimeout,
		"write_timeout":    config.Server.WriteTimeout,
		"idle_timeout":     config.Server.IdleTimeout,
		"shutdown_timeout": config.Server.ShutdownTimeout,
	} {
		if err := pkgconfig.ValidatePositiveDuration(d); err != nil {
			return fmt.Errorf("server %s: %w", name, err)
		}
	}
	if config.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive")
	}
	if config.RateLimit.MutationsPerMinute <= 0 {
		return fmt.Errorf("mutations_per_minute must be positive")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *AppConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
