// Package config loads, validates, and persists the scribe
// configuration file.
//
// Configuration lives in YAML at ~/.scribe/config.yaml by default. A
// missing file is not an error: Load returns the defaults so a fresh
// install works without any setup.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by all validation failures.
var ErrInvalid = errors.New("invalid config")

// Config is the root configuration for the scribe server and clients.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Logging   LoggingConfig   `yaml:"logging"`
	Tools     ToolsConfig     `yaml:"tools"`
	Assistant AssistantConfig `yaml:"assistant"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host        string   `yaml:"host"`
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig controls where the note snapshot lives.
type StorageConfig struct {
	DataDir   string `yaml:"data_dir"`
	NotesFile string `yaml:"notes_file"`
}

// NotesPath returns the full path of the note snapshot file.
func (c StorageConfig) NotesPath() string {
	return filepath.Join(c.DataDir, c.NotesFile)
}

// LoggingConfig controls the file logger. Dir empty means the default
// log directory under ~/.scribe/logs.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	Level   string `yaml:"level"`
}

// ToolsConfig controls which tools the server exposes. Enabled holds
// glob patterns matched against tool names; the default single "*"
// exposes everything.
type ToolsConfig struct {
	Enabled []string `yaml:"enabled"`
}

// AssistantConfig controls the optional OpenAI-backed chat assistant.
type AssistantConfig struct {
	Model            string `yaml:"model"`
	MaxContextTokens int    `yaml:"max_context_tokens"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8000,
			CORSOrigins: []string{"*"},
		},
		Storage: StorageConfig{
			DataDir:   ".",
			NotesFile: "notes_storage.json",
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
		Tools: ToolsConfig{
			Enabled: []string{"*"},
		},
		Assistant: AssistantConfig{
			Model:            "gpt-4o",
			MaxContextTokens: 16000,
		},
	}
}

// DefaultPath returns ~/.scribe/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".scribe", "config.yaml"), nil
}

// Load reads the configuration at path, or the default path when path
// is empty. Absent files yield the defaults; keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed. The write is atomic: a temp file is renamed over the target.
func (c *Config) Save(path string) error {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("config: failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: failed to encode config: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("config: failed to write temp config file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("config: failed to rename temp config file: %w", err)
	}

	return nil
}

// Validate checks the configuration, naming the offending field in the
// returned error.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d out of range 1-65535", ErrInvalid, c.Server.Port)
	}
	if c.Storage.NotesFile == "" {
		return fmt.Errorf("%w: storage.notes_file must not be empty", ErrInvalid)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q (want debug, info, warn, or error)", ErrInvalid, c.Logging.Level)
	}
	if _, err := NewToolFilter(c.Tools.Enabled); err != nil {
		return fmt.Errorf("%w: tools.enabled: %v", ErrInvalid, err)
	}
	if c.Assistant.MaxContextTokens < 1 {
		return fmt.Errorf("%w: assistant.max_context_tokens must be positive", ErrInvalid)
	}
	return nil
}
