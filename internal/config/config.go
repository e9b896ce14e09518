// Package config handles configuration loading and validation for the
// hashsearch command-line tool.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/tamirms/hashsearch"
	hserrors "github.com/tamirms/hashsearch/errors"
)

// AllAlgorithms selects every known algorithm.
const AllAlgorithms = "all"

// Config holds all tool configuration.
type Config struct {
	// Algorithm is an algorithm name or "all".
	Algorithm string `envconfig:"HASHSEARCH_ALGORITHM" yaml:"algorithm"`

	// Convention is "closed" or "half-open".
	Convention string `envconfig:"HASHSEARCH_CONVENTION" yaml:"convention"`

	// Corpus is the default sorted key file for search and verify.
	Corpus string `envconfig:"HASHSEARCH_CORPUS" yaml:"corpus"`

	Spread SpreadConfig `yaml:"spread"`

	Log LogConfig `yaml:"log"`
}

// SpreadConfig holds bucket analysis settings.
type SpreadConfig struct {
	Buckets   int  `envconfig:"HASHSEARCH_BUCKETS" yaml:"buckets"`
	Workers   int  `envconfig:"HASHSEARCH_WORKERS" yaml:"workers"`
	FastRange bool `envconfig:"HASHSEARCH_FASTRANGE" yaml:"fastrange"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `envconfig:"HASHSEARCH_LOG_LEVEL" yaml:"level"`
	Format string `envconfig:"HASHSEARCH_LOG_FORMAT" yaml:"format"`
}

// Load builds the configuration from defaults, then the YAML file at
// configPath (if non-empty), then environment variables.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}

	setDefaults(cfg)

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

func setDefaults(cfg *Config) {
	cfg.Algorithm = AllAlgorithms
	cfg.Convention = hashsearch.Closed.String()

	cfg.Spread = SpreadConfig{
		Buckets: 97,
		Workers: 1,
	}

	cfg.Log = LogConfig{
		Level:  "info",
		Format: "text",
	}
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.Algorithm != AllAlgorithms {
		if _, err := hashsearch.ParseAlgorithm(c.Algorithm); err != nil {
			return fmt.Errorf("%w: algorithm: %w", hserrors.ErrInvalidConfig, err)
		}
	}
	if _, err := hashsearch.ParseConvention(c.Convention); err != nil {
		return fmt.Errorf("%w: convention: %w", hserrors.ErrInvalidConfig, err)
	}
	if c.Spread.Buckets <= 0 {
		return fmt.Errorf("%w: spread.buckets must be positive, got %d", hserrors.ErrInvalidConfig, c.Spread.Buckets)
	}
	if c.Spread.Workers < 1 {
		return fmt.Errorf("%w: spread.workers must be at least 1, got %d", hserrors.ErrInvalidConfig, c.Spread.Workers)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", hserrors.ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", hserrors.ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// Algorithms resolves the Algorithm field.
func (c *Config) Algorithms() ([]hashsearch.Algorithm, error) {
	if c.Algorithm == AllAlgorithms {
		return hashsearch.Algorithms(), nil
	}
	a, err := hashsearch.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return nil, err
	}
	return []hashsearch.Algorithm{a}, nil
}

// SearchConvention resolves the Convention field.
func (c *Config) SearchConvention() (hashsearch.Convention, error) {
	return hashsearch.ParseConvention(c.Convention)
}
