package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.Dir == "" {
		return errors.New("paths.dir must be set")
	}
	if err := validateFileName("paths.primary", c.Paths.Primary); err != nil {
		return err
	}
	if err := validateFileName("paths.secondary", c.Paths.Secondary); err != nil {
		return err
	}
	if c.Paths.Primary == c.Paths.Secondary {
		return fmt.Errorf("paths.primary and paths.secondary must differ (both %q)", c.Paths.Primary)
	}
	return nil
}

func validateFileName(key, name string) error {
	if name == "" {
		return fmt.Errorf("%s must be set", key)
	}
	if name == "." || name == ".." || filepath.Base(name) != name {
		return fmt.Errorf("%s must be a file name inside paths.dir, got %q", key, name)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	for _, path := range c.Logging.OutputPaths {
		switch path {
		case "stdout":
			return errors.New("logging.output_paths: stdout is reserved for command output")
		case "stderr":
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("logging.output_paths: %w", err)
		}
		if abs == c.PrimaryPath() || abs == c.SecondaryPath() {
			return fmt.Errorf("logging.output_paths: %q would overwrite a fixture document", path)
		}
	}
	return nil
}
