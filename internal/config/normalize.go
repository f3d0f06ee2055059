package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if env := strings.TrimSpace(os.Getenv("MKMOVIES_FFMPEG")); env != "" {
		c.Encoder.Binary = env
	}
	c.Encoder.Binary = strings.TrimSpace(c.Encoder.Binary)
	c.Encoder.Container = strings.TrimSpace(strings.TrimPrefix(strings.ToLower(c.Encoder.Container), "."))
	c.Encoder.OutputPrefix = strings.TrimSpace(c.Encoder.OutputPrefix)

	exts := make([]string, 0, len(c.Scan.Extensions))
	for _, ext := range c.Scan.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	c.Scan.Extensions = exts

	if c.Journal.Path != "" {
		expanded, err := expandPath(c.Journal.Path)
		if err != nil {
			return fmt.Errorf("expand journal path: %w", err)
		}
		c.Journal.Path = expanded
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	return nil
}

// ExpandPath resolves tilde shortcuts and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
