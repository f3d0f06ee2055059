package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateCluster(); err != nil {
		return err
	}
	if err := c.validateEncoder(); err != nil {
		return err
	}
	if err := c.validateJournal(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	if len(c.Scan.Extensions) == 0 {
		return errors.New("scan.extensions must list at least one extension")
	}
	for _, ext := range c.Scan.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("scan.extensions entry %q is not a file extension", ext)
		}
	}
	return nil
}

func (c *Config) validateCluster() error {
	if c.Cluster.MaxGapSeconds < 0 {
		return errors.New("cluster.max_gap_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateEncoder() error {
	if c.Encoder.Binary == "" {
		return errors.New("encoder.binary must be set")
	}
	if c.Encoder.FrameRate <= 0 {
		return errors.New("encoder.frame_rate must be positive")
	}
	if c.Encoder.Container == "" || strings.ContainsAny(c.Encoder.Container, "./\\") {
		return fmt.Errorf("encoder.container %q is not a valid container extension", c.Encoder.Container)
	}
	if c.Encoder.OutputPrefix == "" || strings.ContainsAny(c.Encoder.OutputPrefix, "/\\") {
		return fmt.Errorf("encoder.output_prefix %q is not a valid file name prefix", c.Encoder.OutputPrefix)
	}
	if c.Encoder.TimeoutSeconds < 0 {
		return errors.New("encoder.timeout_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateJournal() error {
	if c.Journal.Enabled && c.Journal.Path == "" {
		return errors.New("journal.path must be set when journal.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not one of console, json", c.Logging.Format)
	}
	return nil
}
