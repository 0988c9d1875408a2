package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/finchat-dev/finchat/internal/model"
)

// Config represents the top-level finchat.yaml configuration.
type Config struct {
	Profile ProfileConfig `yaml:"profile"`
	Parser  ParserConfig  `yaml:"parser"`
	Git     GitConfig     `yaml:"git"`
}

// ProfileConfig identifies the ledger owner.
type ProfileConfig struct {
	Name string `yaml:"name"`
}

// ParserConfig controls the chat parser's defaults.
type ParserConfig struct {
	DefaultBank    string `yaml:"default_bank"`
	StrictKeywords bool   `yaml:"strict_keywords"`
}

// GitConfig controls git versioning of the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// DefaultBank returns the configured default bank, falling back to "outros"
// on unknown values.
func (c *Config) DefaultBank() model.Bank {
	b := model.Bank(c.Parser.DefaultBank)
	if !b.Valid() {
		return model.BankOther
	}
	return b
}

// Load reads a finchat.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
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

// Default returns a Config with sensible defaults for a new data directory.
func Default(name string) *Config {
	return &Config{
		Profile: ProfileConfig{
			Name: name,
		},
		Parser: ParserConfig{
			DefaultBank:    string(model.BankItau),
			StrictKeywords: false,
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "FinChat",
			AuthorEmail: "bot@finchat.dev",
		},
	}
}
