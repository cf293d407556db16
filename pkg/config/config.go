package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the operator's tool-wide defaults. Values here seed the
// interactive prompts; they never bypass them.
type Config struct {
	Defaults     DefaultsConfig `yaml:"defaults"`
	TemplatesDir string         `yaml:"templates_dir"`
}

type DefaultsConfig struct {
	Author   string `yaml:"author"`
	License  string `yaml:"license"`
	Version  string `yaml:"version"`
	Template string `yaml:"template"`
}

func DefaultConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".stencil"
	}
	return filepath.Join(homeDir, ".stencil")
}

func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Defaults.License == "" {
		cfg.Defaults.License = "ISC"
	}

	if cfg.Defaults.Version == "" {
		cfg.Defaults.Version = "1.0.0"
	}

	if cfg.Defaults.Template == "" {
		cfg.Defaults.Template = "web-backend"
	}

	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = filepath.Join(DefaultConfigDir(), "templates")
	}

	return &cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			License:  "ISC",
			Version:  "1.0.0",
			Template: "web-backend",
		},
		TemplatesDir: filepath.Join(DefaultConfigDir(), "templates"),
	}
}

func EnsureConfigDir() error {
	configDir := DefaultConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

func WriteDefaultConfig() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	configPath := DefaultConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}
