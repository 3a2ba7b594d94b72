package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/recera/codebuilder/internal/editor"
)

// FileName is the project configuration file looked up in the project directory
const FileName = "codebuilder.json"

// Config represents the codebuilder.json configuration
type Config struct {
	// Path to a YAML file replacing the embedded page content
	ContentPath string `json:"contentPath,omitempty"`

	// Verbose logging
	Debug bool `json:"debug,omitempty"`

	Build  *BuildConfig  `json:"build,omitempty"`
	Export *ExportConfig `json:"export,omitempty"`
	Dev    *DevConfig    `json:"dev,omitempty"`
}

// BuildConfig controls static page output
type BuildConfig struct {
	// Directory index.html is written to
	OutDir string `json:"outDir,omitempty"`

	// Optional stylesheet URL linked from the page head
	Stylesheet string `json:"stylesheet,omitempty"`
}

// ExportConfig controls where exported code files go
type ExportConfig struct {
	Dir string `json:"dir,omitempty"`

	// Language the editor opens with
	DefaultLanguage editor.Language `json:"defaultLanguage"`
}

// DevConfig contains preview server configuration
type DevConfig struct {
	Port int    `json:"port,omitempty"`
	Host string `json:"host,omitempty"`
}

// Load loads configuration from codebuilder.json in projectPath
func Load(projectPath string) (*Config, error) {
	configPath := filepath.Join(projectPath, FileName)

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	// Seed defaults so a missing defaultLanguage stays JavaScript
	config := Config{Export: &ExportConfig{DefaultLanguage: editor.JavaScript}}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", configPath, err)
	}
	return &config, nil
}

// Save saves configuration to codebuilder.json
func Save(config *Config, projectPath string) error {
	configPath := filepath.Join(projectPath, FileName)

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Build: &BuildConfig{
			OutDir: "dist",
		},
		Export: &ExportConfig{
			Dir:             ".",
			DefaultLanguage: editor.JavaScript,
		},
		Dev: &DevConfig{
			Port: 5173,
			Host: "localhost",
		},
	}
}

// applyDefaults fills in missing configuration values
func applyDefaults(config *Config) {
	defaults := DefaultConfig()

	if config.Build == nil {
		config.Build = defaults.Build
	} else if config.Build.OutDir == "" {
		config.Build.OutDir = defaults.Build.OutDir
	}

	if config.Export == nil {
		config.Export = defaults.Export
	} else if config.Export.Dir == "" {
		config.Export.Dir = defaults.Export.Dir
	}

	if config.Dev == nil {
		config.Dev = defaults.Dev
	} else {
		if config.Dev.Port == 0 {
			config.Dev.Port = defaults.Dev.Port
		}
		if config.Dev.Host == "" {
			config.Dev.Host = defaults.Dev.Host
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Export != nil && !c.Export.DefaultLanguage.Valid() {
		return fmt.Errorf("export.defaultLanguage: %w", editor.ErrUnknownLanguage)
	}
	if c.Dev != nil && (c.Dev.Port < 1 || c.Dev.Port > 65535) {
		return fmt.Errorf("dev.port %d out of range", c.Dev.Port)
	}
	return nil
}
