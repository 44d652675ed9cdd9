// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for PawGuide.
//
// Supports both TOML and JSON formats, with built-in defaults and
// environment variable overrides.
//
// Configuration file locations (in order of precedence):
//   - ~/.pawguide/config.toml
//   - ~/.pawguide/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete PawGuide configuration.
type Config struct {
	Assistant AssistantConfig `toml:"assistant" json:"assistant"`
	Typing    TypingConfig    `toml:"typing" json:"typing"`
	UI        UIConfig        `toml:"ui" json:"ui"`
	Storage   StorageConfig   `toml:"storage" json:"storage"`
	Logging   LoggingConfig   `toml:"logging" json:"logging"`
}

// AssistantConfig configures the answering service endpoints.
type AssistantConfig struct {
	// PrimaryURL is tried first for every request.
	PrimaryURL string `toml:"primary_url" json:"primary_url"`
	// FallbackURL is tried once when the primary fails at the transport
	// level. Empty disables the fallback.
	FallbackURL string `toml:"fallback_url" json:"fallback_url"`
	// TimeoutSecs is the per-request deadline. 0 disables the deadline.
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
}

// TypingConfig configures reply playback.
type TypingConfig struct {
	// IntervalMs is the delay between revealed chunks in milliseconds.
	IntervalMs int `toml:"interval_ms" json:"interval_ms"`
	// UnitSize is how many plain-text runes each chunk carries. Markdown
	// blocks are always revealed whole regardless of this value.
	UnitSize int `toml:"unit_size" json:"unit_size"`
}

// UIConfig configures the terminal interface.
type UIConfig struct {
	// Theme selects the color theme: "dog", "cat", "fish", "bird", "rabbit".
	Theme string `toml:"theme" json:"theme"`
	// ShowSuggestions shows quick question suggestions on an empty chat.
	ShowSuggestions bool `toml:"show_suggestions" json:"show_suggestions"`
	// RenderMarkdown renders assistant replies as formatted Markdown.
	RenderMarkdown bool `toml:"render_markdown" json:"render_markdown"`
}

// StorageConfig configures where data lives.
type StorageConfig struct {
	// DataDir holds the collection files. Empty means ~/.pawguide.
	DataDir string `toml:"data_dir" json:"data_dir"`
	// ExportDir receives exported transcripts. Empty means the current
	// working directory.
	ExportDir string `toml:"export_dir" json:"export_dir"`
}

// LoggingConfig configures the log file.
type LoggingConfig struct {
	// Verbose lowers the log level to debug.
	Verbose bool `toml:"verbose" json:"verbose"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default endpoint URLs for the hosted answering service.
const (
	DefaultPrimaryURL  = "https://pawguide.app/api/chat"
	DefaultFallbackURL = "https://pawguide-backend.onrender.com/api/chat"
)

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Assistant: AssistantConfig{
			PrimaryURL:  DefaultPrimaryURL,
			FallbackURL: DefaultFallbackURL,
			TimeoutSecs: 0,
		},
		Typing: TypingConfig{
			IntervalMs: 30,
			UnitSize:   3,
		},
		UI: UIConfig{
			Theme:           "dog",
			ShowSuggestions: true,
			RenderMarkdown:  true,
		},
		Storage: StorageConfig{},
		Logging: LoggingConfig{},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the PawGuide configuration directory (~/.pawguide).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".pawguide"), nil
}

// PathTOML returns the TOML config file path.
func PathTOML() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// PathJSON returns the JSON config file path.
func PathJSON() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD
// =============================================================================

// Load loads configuration from the config files. TOML is tried first, then
// JSON, then built-in defaults. Environment overrides apply last either way.
func Load() (*Config, error) {
	cfg := Default()

	if path, err := PathTOML(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return finishLoad(cfg, LoadTOML(cfg, path))
		}
	}
	if path, err := PathJSON(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return finishLoad(cfg, LoadJSON(cfg, path))
		}
	}
	return finishLoad(cfg, nil)
}

// LoadFromPath loads configuration from a specific file, picking the format
// by extension.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	var err error
	if strings.HasSuffix(path, ".json") {
		err = LoadJSON(cfg, path)
	} else {
		err = LoadTOML(cfg, path)
	}
	return finishLoad(cfg, err)
}

// finishLoad applies env overrides and validation after a file load.
func finishLoad(cfg *Config, loadErr error) (*Config, error) {
	if loadErr != nil {
		return nil, loadErr
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML config: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON config: %w", err)
	}
	return nil
}

// =============================================================================
// SAVE
// =============================================================================

// Save writes the configuration to the TOML config path, creating the
// directory if needed.
func Save(cfg *Config) error {
	path, err := PathTOML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration as TOML to a specific path.
func SaveTOML(cfg *Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies PAWGUIDE_* environment variables over the
// loaded values:
//   - PAWGUIDE_PRIMARY_URL: overrides assistant.primary_url
//   - PAWGUIDE_FALLBACK_URL: overrides assistant.fallback_url
//   - PAWGUIDE_TIMEOUT_SECS: overrides assistant.timeout_secs
//   - PAWGUIDE_DATA_DIR: overrides storage.data_dir
//   - PAWGUIDE_THEME: overrides ui.theme
//   - PAWGUIDE_VERBOSE: overrides logging.verbose
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("PAWGUIDE_PRIMARY_URL"); v != "" {
		c.Assistant.PrimaryURL = v
	}
	if v := os.Getenv("PAWGUIDE_FALLBACK_URL"); v != "" {
		c.Assistant.FallbackURL = v
	}
	if v := os.Getenv("PAWGUIDE_TIMEOUT_SECS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.Assistant.TimeoutSecs = secs
		}
	}
	if v := os.Getenv("PAWGUIDE_DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}
	if v := os.Getenv("PAWGUIDE_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("PAWGUIDE_VERBOSE"); v != "" {
		c.Logging.Verbose = v == "1" || strings.ToLower(v) == "true"
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Assistant.PrimaryURL == "" {
		return fmt.Errorf("assistant.primary_url must not be empty")
	}
	if err := validateURL(c.Assistant.PrimaryURL); err != nil {
		return fmt.Errorf("assistant.primary_url: %w", err)
	}
	if c.Assistant.FallbackURL != "" {
		if err := validateURL(c.Assistant.FallbackURL); err != nil {
			return fmt.Errorf("assistant.fallback_url: %w", err)
		}
	}
	if c.Assistant.TimeoutSecs < 0 {
		return fmt.Errorf("assistant.timeout_secs must not be negative")
	}
	if c.Typing.IntervalMs < 1 {
		return fmt.Errorf("typing.interval_ms must be at least 1")
	}
	if c.Typing.UnitSize < 1 {
		return fmt.Errorf("typing.unit_size must be at least 1")
	}
	return nil
}

// validateURL checks for a parseable http(s) URL.
func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}

// =============================================================================
// RESOLVED PATHS
// =============================================================================

// ResolveDataDir returns the configured data directory, defaulting to
// ~/.pawguide.
func (c *Config) ResolveDataDir() (string, error) {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir, nil
	}
	return Dir()
}

// ResolveExportDir returns the configured export directory, defaulting to
// the current working directory.
func (c *Config) ResolveExportDir() string {
	if c.Storage.ExportDir != "" {
		return c.Storage.ExportDir
	}
	return "."
}
