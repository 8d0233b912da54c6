package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the in-memory representation of ~/.partner/partner.yaml.
type Config struct {
	// Source is the profile data file searched by default.
	Source string `yaml:"source"`
	// MaxKeywords caps keywords per console or HTTP search. 0 means unlimited.
	MaxKeywords int `yaml:"max_keywords"`
	// BrowseMaxKeywords caps keywords in the terminal table.
	BrowseMaxKeywords int    `yaml:"browse_max_keywords"`
	ServeAddr         string `yaml:"serve_addr"`
	LogLevel          string `yaml:"log_level"`
	LogFormat         string `yaml:"log_format"`
}

// PartnerDir returns the absolute path to ~/.partner/.
func PartnerDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".partner"), nil
}

// ConfigPath returns the absolute path to ~/.partner/partner.yaml.
func ConfigPath() (string, error) {
	dir, err := PartnerDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "partner.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the Config used when no partner.yaml exists.
func DefaultConfig() *Config {
	return &Config{
		Source:            filepath.Join("~", ".partner", "Data.json"),
		MaxKeywords:       2,
		BrowseMaxKeywords: 2,
		ServeAddr:         "127.0.0.1:8080",
		LogLevel:          "warn",
		LogFormat:         "text",
	}
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.MaxKeywords < 0 {
		return fmt.Errorf("max_keywords must be >= 0, got %d", c.MaxKeywords)
	}
	if c.BrowseMaxKeywords < 0 {
		return fmt.Errorf("browse_max_keywords must be >= 0, got %d", c.BrowseMaxKeywords)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log_format: %s", c.LogFormat)
	}
	return nil
}

// Load reads path (or ~/.partner/partner.yaml when path is empty) on top of
// DefaultConfig, then applies PARTNER_* overrides from the environment and
// ~/.partner/.env. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	}

	if err := applyOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Source, err = ExpandPath(cfg.Source)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func applyOverrides(cfg *Config) error {
	overrides := []struct {
		key string
		dst *string
	}{
		{"PARTNER_SOURCE", &cfg.Source},
		{"PARTNER_LOG_LEVEL", &cfg.LogLevel},
		{"PARTNER_SERVE_ADDR", &cfg.ServeAddr},
	}
	for _, o := range overrides {
		v, err := GetConfigValue(o.key)
		if err != nil {
			return err
		}
		if v != "" {
			*o.dst = v
		}
	}
	return nil
}

// Save marshals cfg and writes it to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
