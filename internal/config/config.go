// Package config loads settings for the govuk command.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/pthm/govuk"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "GOVUK_"

const maxConfigFileSize = 1024 * 1024

// Config is the full configuration.
type Config struct {
	Server ServerConfig  `koanf:"server"`
	Render govuk.Options `koanf:"render"`
	Log    LogConfig     `koanf:"log"`
}

// ServerConfig configures the demo HTTP server.
type ServerConfig struct {
	Address string `koanf:"address"`
	// CookieKey keys the model state cookie. Empty means a random key per
	// process, which only suits development.
	CookieKey string `koanf:"cookie_key"`
	// SealState encrypts the model state cookie instead of only signing it.
	SealState bool `koanf:"seal_state"`
	// Documents is the directory served documents are read from.
	Documents string `koanf:"documents"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Address:   ":8080",
			Documents: ".",
		},
		Render: govuk.DefaultOptions(),
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the YAML file at path, if path is not empty, then applies
// environment overrides.
//
// Environment variables are mapped by section:
//
//	GOVUK_SERVER_ADDRESS               -> server.address
//	GOVUK_RENDER_PREPEND_ERROR_SUMMARY -> render.prepend_error_summary
//	GOVUK_LOG_LEVEL                    -> log.level
func Load(path string) (*Config, error) {
	var content []byte
	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
		if info.Size() > maxConfigFileSize {
			return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
		}
		content, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return Parse(content)
}

// Parse loads YAML content, then applies environment overrides.
func Parse(content []byte) (*Config, error) {
	k := koanf.New(".")

	if len(content) > 0 {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// envKey maps GOVUK_SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(lower, "_")
	if !ok {
		return lower
	}
	return section + "." + field
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log.format must be 'json' or 'console', got %q", c.Log.Format)
	}
	if c.Server.CookieKey != "" && len(c.Server.CookieKey) < 32 {
		return fmt.Errorf("server.cookie_key must be at least 32 bytes")
	}
	return nil
}
