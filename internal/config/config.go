package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Scan contains configuration for image discovery.
type Scan struct {
	Extensions []string `toml:"extensions"`
}

// Cluster contains configuration for temporal grouping.
type Cluster struct {
	MaxGapSeconds float64 `toml:"max_gap_seconds"`
}

// Encoder contains configuration for the external video encoder.
type Encoder struct {
	Binary         string `toml:"binary"`
	FrameRate      int    `toml:"frame_rate"`
	Container      string `toml:"container"`
	OutputPrefix   string `toml:"output_prefix"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Journal contains configuration for the optional run history database.
type Journal struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for mkmovies.
type Config struct {
	Scan    Scan    `toml:"scan"`
	Cluster Cluster `toml:"cluster"`
	Encoder Encoder `toml:"encoder"`
	Journal Journal `toml:"journal"`
	Logging Logging `toml:"logging"`
}

// MaxGap returns the cluster gap threshold as a duration.
func (c *Config) MaxGap() time.Duration {
	return time.Duration(c.Cluster.MaxGapSeconds * float64(time.Second))
}

// EncoderTimeout returns the per-invocation encoder timeout. Zero disables it.
func (c *Config) EncoderTimeout() time.Duration {
	return time.Duration(c.Encoder.TimeoutSeconds) * time.Second
}

// SampleConfig returns the embedded sample configuration document.
func SampleConfig() string {
	return sampleConfig
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/mkmovies/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has path fields expanded and extensions canonicalized. A missing
// file is not an error; defaults apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	projectPath, err := filepath.Abs("mkmovies.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}
