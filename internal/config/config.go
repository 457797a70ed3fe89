// Package config handles configuration for citeview.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/diogo/citeview/internal/errors"
)

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	Style            string `json:"style"`              // glamour style name or path to JSON theme
	EnableEmoji      bool   `json:"enable_emoji"`       // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines"`  // Preserve original line breaks
	TableWrap        bool   `json:"table_wrap"`         // Enable word wrap in table cells
	InlineTableLinks bool   `json:"inline_table_links"` // Render links inline in tables
}

// LogConfig configures the structured log file
type LogConfig struct {
	Level  string `json:"level"`          // debug, info, warn, error
	Format string `json:"format"`         // json or text
	File   string `json:"file,omitempty"` // defaults to ~/.citeview/logs/citeview.log
}

// Config represents the user configuration
type Config struct {
	TUITheme string `json:"tui_theme,omitempty"` // TUI color theme
	// CopyResetMillis is how long the copied indicator stays on.
	CopyResetMillis int `json:"copy_reset_ms"`
	// StreamIntervalMillis is the delay between simulated stream updates in the answer view.
	StreamIntervalMillis int `json:"stream_interval_ms"`
	// StreamWordsPerTick is how many words arrive per simulated stream update.
	StreamWordsPerTick int `json:"stream_words_per_tick"`
	// ClipboardFallbackOnError makes a failed system clipboard write retry via OSC 52.
	// Off by default: the fallback only runs when no system clipboard exists.
	ClipboardFallbackOnError bool           `json:"clipboard_fallback_on_error"`
	Markdown                 MarkdownConfig `json:"markdown,omitempty"`
	Log                      LogConfig      `json:"log,omitempty"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
		TableWrap:        true,
		InlineTableLinks: false,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		TUITheme:             "tokyonight",
		CopyResetMillis:      1000,
		StreamIntervalMillis: 60,
		StreamWordsPerTick:   3,
		Markdown:             DefaultMarkdownConfig(),
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// CopyResetDelay returns the copied indicator duration.
func (c Config) CopyResetDelay() time.Duration {
	if c.CopyResetMillis <= 0 {
		return time.Second
	}
	return time.Duration(c.CopyResetMillis) * time.Millisecond
}

// StreamInterval returns the delay between simulated stream updates.
func (c Config) StreamInterval() time.Duration {
	if c.StreamIntervalMillis <= 0 {
		return 60 * time.Millisecond
	}
	return time.Duration(c.StreamIntervalMillis) * time.Millisecond
}

// WordsPerTick returns the number of words per simulated stream update.
func (c Config) WordsPerTick() int {
	if c.StreamWordsPerTick <= 0 {
		return 3
	}
	return c.StreamWordsPerTick
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".citeview")
	return configDir, nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// GetLogPath returns the log file path from config, defaulting under the config dir
func GetLogPath(cfg Config) string {
	if path := strings.TrimSpace(cfg.Log.File); path != "" {
		return path
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return filepath.Join(".citeview", "logs", "citeview.log")
	}
	return filepath.Join(configDir, "logs", "citeview.log")
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if config doesn't exist
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SettableKeys lists the keys accepted by Set
func SettableKeys() []string {
	return []string{
		"tui_theme",
		"markdown.style",
		"copy_reset_ms",
		"stream_interval_ms",
		"stream_words_per_tick",
		"clipboard_fallback_on_error",
		"log.level",
		"log.format",
		"log.file",
	}
}

// Set updates a single key on cfg from its string form.
func Set(cfg *Config, key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case "tui_theme":
		cfg.TUITheme = value
	case "markdown.style":
		cfg.Markdown.Style = value
	case "copy_reset_ms":
		return setPositiveInt(&cfg.CopyResetMillis, key, value)
	case "stream_interval_ms":
		return setPositiveInt(&cfg.StreamIntervalMillis, key, value)
	case "stream_words_per_tick":
		return setPositiveInt(&cfg.StreamWordsPerTick, key, value)
	case "clipboard_fallback_on_error":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return apperrors.NewConfigError(key, "expected true or false")
		}
		cfg.ClipboardFallbackOnError = b
	case "log.level":
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "warning", "error":
			cfg.Log.Level = strings.ToLower(value)
		default:
			return apperrors.NewConfigError(key, "expected debug, info, warn or error")
		}
	case "log.format":
		switch strings.ToLower(value) {
		case "json", "text":
			cfg.Log.Format = strings.ToLower(value)
		default:
			return apperrors.NewConfigError(key, "expected json or text")
		}
	case "log.file":
		cfg.Log.File = value
	default:
		return apperrors.NewConfigError(key, "unknown key")
	}
	return nil
}

func setPositiveInt(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return apperrors.NewConfigError(key, "expected a positive integer")
	}
	*dst = n
	return nil
}
