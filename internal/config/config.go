// Package config loads settings for the airportfinder commands from an
// optional YAML file and AIRPORTFINDER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load. They override values from the file.
const (
	EnvConfigPath       = "AIRPORTFINDER_CONFIG"
	EnvDataDir          = "AIRPORTFINDER_DATA_DIR"
	EnvTopN             = "AIRPORTFINDER_TOP_N"
	EnvSuggestions      = "AIRPORTFINDER_SUGGESTIONS"
	EnvGeohashPrecision = "AIRPORTFINDER_GEOHASH_PRECISION"
)

type Config struct {
	DataDir          string `yaml:"data_dir"`
	TopN             int    `yaml:"top_n"`
	Suggestions      bool   `yaml:"suggestions"`
	GeohashPrecision int    `yaml:"geohash_precision"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		DataDir:          "./airportfinder-data",
		TopN:             2,
		Suggestions:      true,
		GeohashPrecision: 7,
	}
}

// Load reads configuration from path, if non-empty, then applies environment
// overrides. An empty path falls back to $AIRPORTFINDER_CONFIG; when that is
// unset too, only defaults and environment are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.DataDir = getEnv(EnvDataDir, cfg.DataDir)

	if v := strings.TrimSpace(os.Getenv(EnvTopN)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvTopN, err)
		}
		cfg.TopN = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvSuggestions)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvSuggestions, err)
		}
		cfg.Suggestions = b
	}
	if v := strings.TrimSpace(os.Getenv(EnvGeohashPrecision)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvGeohashPrecision, err)
		}
		cfg.GeohashPrecision = n
	}
	return nil
}

func (c *Config) validate() error {
	var errs []error
	if c.TopN < 0 {
		errs = append(errs, fmt.Errorf("top_n must be >= 0, got %d", c.TopN))
	}
	if c.GeohashPrecision < 0 || c.GeohashPrecision > 12 {
		errs = append(errs, fmt.Errorf("geohash_precision must be within 0..12, got %d", c.GeohashPrecision))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
