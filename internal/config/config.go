// Package config handles configuration, credentials and prompt text for termchat.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/tailscale/hujson"

	"github.com/diogo/termchat/internal/models"
)

// ConfigDirEnv overrides the configuration directory
const ConfigDirEnv = "TERMCHAT_CONFIG_DIR"

const (
	DefaultRequestTimeout = 300 // seconds
	DefaultMaxTokens      = 4096
)

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	Style            string `json:"style"`              // glamour style name or path to a JSON style
	EnableEmoji      bool   `json:"enable_emoji"`       // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines"`  // Preserve original line breaks
	TableWrap        bool   `json:"table_wrap"`         // Enable word wrap in table cells
	InlineTableLinks bool   `json:"inline_table_links"` // Render links inline in tables
}

// Config represents the user configuration
type Config struct {
	Model string `json:"model"`
	// AllModels is the model list shown by the model picker, refreshed at startup
	AllModels  []string `json:"all_models,omitempty"`
	DevMessage string   `json:"dev_message"`
	// EnableStreaming streams replies from models that support it
	EnableStreaming bool `json:"enable_streaming"`
	// PreviewMarkdown renders buffered replies as markdown
	PreviewMarkdown  bool `json:"preview_md"`
	MessageBoxes     bool `json:"message_boxes"`
	OpenAIEnabled    bool `json:"openai_enabled"`
	AnthropicEnabled bool `json:"anthropic_enabled"`
	CopyToClipboard  bool `json:"copy_to_clipboard"`
	Verbose          bool `json:"verbose"`
	// RequestTimeout is in seconds and bounds every API request
	RequestTimeout int            `json:"request_timeout"`
	MaxTokens      int            `json:"max_tokens"`
	DocumentModel  string         `json:"document_model"`
	TitleModel     string         `json:"title_model"`
	ReadmeExclude  []string       `json:"readme_exclude,omitempty"`
	Markdown       MarkdownConfig `json:"markdown"`
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
		Model:            models.DefaultModel,
		DevMessage:       DeveloperPrompt,
		EnableStreaming:  false,
		PreviewMarkdown:  false,
		MessageBoxes:     false,
		OpenAIEnabled:    true,
		AnthropicEnabled: true,
		RequestTimeout:   DefaultRequestTimeout,
		MaxTokens:        DefaultMaxTokens,
		DocumentModel:    models.ModelO3Mini,
		TitleModel:       models.ModelGPT4o,
		ReadmeExclude:    []string{"target", "node_modules", "vendor", "**/*.lock"},
		Markdown:         DefaultMarkdownConfig(),
	}
}

// Timeout returns the request timeout as a duration
func (c Config) Timeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return DefaultRequestTimeout * time.Second
	}
	return time.Duration(c.RequestTimeout) * time.Second
}

// Normalize fills zero values with defaults and replaces a model that is not
// in known. It reports whether the model was replaced.
func (c *Config) Normalize(known []string) bool {
	def := DefaultConfig()
	if c.DevMessage == "" {
		c.DevMessage = def.DevMessage
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = def.RequestTimeout
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = def.MaxTokens
	}
	if c.DocumentModel == "" {
		c.DocumentModel = def.DocumentModel
	}
	if c.TitleModel == "" {
		c.TitleModel = def.TitleModel
	}
	if c.Markdown.Style == "" {
		c.Markdown.Style = def.Markdown.Style
	}

	if c.Model == "" || (len(known) > 0 && !slices.Contains(known, c.Model)) {
		replaced := c.Model != ""
		c.Model = models.DefaultModel
		return replaced
	}
	return false
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	return filepath.Join(base, "termchat"), nil
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

// GetHistoryPath returns the path to the line editor history file
func GetHistoryPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "history"), nil
}

// Exists reports whether a config file is present
func Exists() bool {
	configPath, err := GetConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(configPath)
	return err == nil
}

// LoadConfig loads the configuration from disk. A missing file yields the defaults.
// Comments and trailing commas are accepted.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := parseConfig(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return cfg, nil
}

func parseConfig(data []byte, cfg *Config) error {
	std, err := hujson.Standardize(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(std, cfg)
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) (string, error) {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}

// DeleteConfig removes the config file. It returns os.ErrNotExist when there is none.
func DeleteConfig() (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}

	if err := os.Remove(configPath); err != nil {
		if os.IsNotExist(err) {
			return configPath, fmt.Errorf("no config file at %s: %w", configPath, os.ErrNotExist)
		}
		return configPath, fmt.Errorf("failed to delete config file: %w", err)
	}

	return configPath, nil
}
