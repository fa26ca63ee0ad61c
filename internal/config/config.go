package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for its configuration.
const DefaultPath = "wallet.yaml"

// DefaultLedgerPath is the ledger file used when none is configured.
const DefaultLedgerPath = "wallet.csv"

// Config represents the top-level wallet.yaml configuration.
type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	Display DisplayConfig `yaml:"display"`
	Git     GitConfig     `yaml:"git"`
}

// LedgerConfig locates the ledger file.
type LedgerConfig struct {
	Path string `yaml:"path"`
}

// DisplayConfig controls how totals are printed.
type DisplayConfig struct {
	Currency string `yaml:"currency,omitempty"` // ISO 4217 code; empty prints plain integers
}

// GitConfig controls committing the ledger after changes.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a wallet.yaml file from disk. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no wallet.yaml exists.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			Path: DefaultLedgerPath,
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Wallet",
			AuthorEmail: "wallet@localhost",
		},
	}
}
