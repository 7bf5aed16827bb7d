// Package config provides configuration loading and validation for the CLI and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults.
const (
	DefaultPort            = 8000
	DefaultMaxBodyBytes    = 1 << 20
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultRankConcurrency = 4
)

// DefaultAllowedOrigins are the browser origins allowed by CORS when none are configured.
var DefaultAllowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}

// Environment variables read by ApplyEnv.
const (
	EnvPort            = "RESUME_MATCHER_PORT"
	EnvAllowedOrigins  = "RESUME_MATCHER_ALLOWED_ORIGINS"
	EnvLogLevel        = "RESUME_MATCHER_LOG_LEVEL"
	EnvLogFormat       = "RESUME_MATCHER_LOG_FORMAT"
	EnvTaxonomy        = "RESUME_MATCHER_TAXONOMY"
	EnvMaxBodyBytes    = "RESUME_MATCHER_MAX_BODY_BYTES"
	EnvRankConcurrency = "RESUME_MATCHER_RANK_CONCURRENCY"
)

// Config represents the service configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port           int      `json:"port,omitempty"`            // Listen port
	AllowedOrigins []string `json:"allowed_origins,omitempty"` // CORS origins
	MaxBodyBytes   int64    `json:"max_body_bytes,omitempty"`  // Request body limit

	// Engine
	TaxonomyPath    string `json:"taxonomy,omitempty"`         // Custom skill taxonomy JSON file
	RankConcurrency int    `json:"rank_concurrency,omitempty"` // Resumes scored in parallel by /rank

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // text or json
}

// ValidationError reports a configuration value that cannot be used.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config error: '%s' %s", e.Field, e.Message)
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	origins := make([]string, len(DefaultAllowedOrigins))
	copy(origins, DefaultAllowedOrigins)

	return Config{
		Port:            DefaultPort,
		AllowedOrigins:  origins,
		MaxBodyBytes:    DefaultMaxBodyBytes,
		RankConcurrency: DefaultRankConcurrency,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
	}
}

// LoadDotEnv loads environment variables from the given .env files (".env" when
// none are given). Missing files are ignored; variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields with any RESUME_MATCHER_* variables that are set.
// Unparseable numbers are ignored.
func (c *Config) ApplyEnv() {
	c.Port = EnvInt(EnvPort, c.Port)
	c.MaxBodyBytes = int64(EnvInt(EnvMaxBodyBytes, int(c.MaxBodyBytes)))
	c.RankConcurrency = EnvInt(EnvRankConcurrency, c.RankConcurrency)
	c.TaxonomyPath = EnvString(EnvTaxonomy, c.TaxonomyPath)
	c.LogLevel = EnvString(EnvLogLevel, c.LogLevel)
	c.LogFormat = EnvString(EnvLogFormat, c.LogFormat)

	if origins := EnvList(EnvAllowedOrigins); len(origins) > 0 {
		c.AllowedOrigins = origins
	}
}

// Validate checks that the configuration has valid values.
// Zero values are accepted since they are filled by MergeWithDefaults.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return &ValidationError{Field: "port", Message: "must be a valid TCP port"}
	}
	if c.MaxBodyBytes < 0 {
		return &ValidationError{Field: "max_body_bytes", Message: "must be non-negative"}
	}
	if c.RankConcurrency < 0 {
		return &ValidationError{Field: "rank_concurrency", Message: "must be non-negative"}
	}

	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Field: "log_level", Message: fmt.Sprintf("unknown level %q", c.LogLevel)}
	}

	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return &ValidationError{Field: "log_format", Message: fmt.Sprintf("unknown format %q", c.LogFormat)}
	}

	for _, origin := range c.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			return &ValidationError{Field: "allowed_origins", Message: "must not contain blank entries"}
		}
	}

	if c.TaxonomyPath != "" {
		if _, err := os.Stat(c.TaxonomyPath); os.IsNotExist(err) {
			return &ValidationError{Field: "taxonomy", Message: fmt.Sprintf("file not found: %s", c.TaxonomyPath)}
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.TaxonomyPath == "" {
		result.TaxonomyPath = defaults.TaxonomyPath
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Numeric fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxBodyBytes == 0 {
		result.MaxBodyBytes = defaults.MaxBodyBytes
	}
	if result.RankConcurrency == 0 {
		result.RankConcurrency = defaults.RankConcurrency
	}

	if len(result.AllowedOrigins) == 0 {
		result.AllowedOrigins = append([]string(nil), defaults.AllowedOrigins...)
	}

	return result
}

// Resolve builds the effective configuration: the JSON file at path (if any),
// then environment overrides, then defaults. The result is validated.
func Resolve(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg.MergeWithDefaults(Defaults()), nil
}
