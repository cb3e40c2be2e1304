// Package config provides application configuration management with multi-source priority.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables (CHATBOT_* overrides)
//  2. Config file (~/.chatbot-tui/config.yaml)
//  3. Default values
//
// Error Handling:
//   - Uses sentinel errors for Go-idiomatic error checking with errors.Is()
//   - Wrap with context using fmt.Errorf("%w: details", ErrXxx)
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

var (
	// ErrConfigNil indicates the configuration is nil.
	ErrConfigNil = errors.New("configuration is nil")

	// ErrInvalidAPIURL indicates the backend URL is missing or malformed.
	ErrInvalidAPIURL = errors.New("invalid api url")

	// ErrInvalidTemperature indicates the temperature value is out of range.
	ErrInvalidTemperature = errors.New("invalid temperature")

	// ErrInvalidTimeout indicates the HTTP timeout is negative.
	ErrInvalidTimeout = errors.New("invalid timeout")

	// ErrInvalidRate indicates the request rate limit is negative.
	ErrInvalidRate = errors.New("invalid request rate")

	// ErrInvalidMaxMessages indicates the transcript bound is out of range.
	ErrInvalidMaxMessages = errors.New("invalid max messages")
)

const (
	// DefaultTemperature is sent with chat requests unless overridden.
	DefaultTemperature = 0.7

	// DefaultMaxMessages bounds the transcript kept in memory.
	DefaultMaxMessages = 100

	// MinMaxMessages is the lowest accepted transcript bound.
	MinMaxMessages = 10
)

// Config stores application configuration.
type Config struct {
	// Backend connection
	APIURL             string  `mapstructure:"api_url" json:"api_url"`
	HTTPTimeoutSeconds int     `mapstructure:"http_timeout_seconds" json:"http_timeout_seconds"`
	RequestsPerSecond  float64 `mapstructure:"requests_per_second" json:"requests_per_second"`

	// Chat behavior
	Temperature float64 `mapstructure:"temperature" json:"temperature"`
	MaxMessages int     `mapstructure:"max_messages" json:"max_messages"`

	// UI
	Language string `mapstructure:"language" json:"language"`

	// Logging
	LogLevel string `mapstructure:"log_level" json:"log_level"`
	LogFile  string `mapstructure:"log_file" json:"log_file"`
}

// Load loads configuration.
// Priority: Environment variables > Configuration file > Default values
func Load() (*Config, error) {
	// Configuration directory: ~/.chatbot-tui/
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".chatbot-tui")

	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Also support current directory

	setDefaults(v, configDir)
	bindEnvVariables(v)

	// Read configuration file (if exists)
	if err := v.ReadInConfig(); err != nil {
		// Configuration file not found is not an error, use default values
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		slog.Debug("configuration file not found, using default values",
			"search_paths", []string{configDir, "."},
			"config_name", "config.yaml")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	// CRITICAL: Validate immediately (fail-fast)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets all default configuration values.
func setDefaults(v *viper.Viper, configDir string) {
	// Backend defaults (the FastAPI server listens on 8000)
	v.SetDefault("api_url", "http://localhost:8000")
	v.SetDefault("http_timeout_seconds", 120)
	v.SetDefault("requests_per_second", 0) // 0 disables the client limiter

	// Chat defaults
	v.SetDefault("temperature", DefaultTemperature)
	v.SetDefault("max_messages", DefaultMaxMessages)

	// UI defaults
	v.SetDefault("language", "de")

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", filepath.Join(configDir, "chatbot.log"))
}

// bindEnvVariables binds environment variable overrides explicitly.
func bindEnvVariables(v *viper.Viper) {
	// Helper to panic on unexpected bind errors (hardcoded strings can't fail)
	// If this panics, it's a BUG in our code, not a runtime error
	mustBind := func(key, envVar string) {
		if err := v.BindEnv(key, envVar); err != nil {
			panic(fmt.Sprintf("BUG: failed to bind %q to %q: %v", key, envVar, err))
		}
	}

	mustBind("api_url", "CHATBOT_API_URL")
	mustBind("temperature", "CHATBOT_TEMPERATURE")
	mustBind("language", "CHATBOT_LANG")
	mustBind("log_level", "CHATBOT_LOG_LEVEL")
	mustBind("log_file", "CHATBOT_LOG_FILE")
	mustBind("http_timeout_seconds", "CHATBOT_HTTP_TIMEOUT_SECONDS")
	mustBind("requests_per_second", "CHATBOT_REQUESTS_PER_SECOND")
}

// Validate validates configuration values.
// Returns sentinel errors that can be checked with errors.Is().
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigNil
	}

	if c.APIURL == "" {
		return fmt.Errorf("%w: api_url cannot be empty", ErrInvalidAPIURL)
	}

	// Temperature range matches what the backend accepts
	if c.Temperature < 0.0 || c.Temperature > 1.0 {
		return fmt.Errorf("%w: must be between 0.0 and 1.0, got %.2f", ErrInvalidTemperature, c.Temperature)
	}

	// 0 means no client-imposed deadline
	if c.HTTPTimeoutSeconds < 0 {
		return fmt.Errorf("%w: must not be negative, got %d", ErrInvalidTimeout, c.HTTPTimeoutSeconds)
	}

	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: must not be negative, got %.2f", ErrInvalidRate, c.RequestsPerSecond)
	}

	if c.MaxMessages < MinMaxMessages {
		return fmt.Errorf("%w: must be at least %d, got %d", ErrInvalidMaxMessages, MinMaxMessages, c.MaxMessages)
	}

	return nil
}

// HTTPTimeout returns the configured timeout as a duration, 0 meaning none.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}
