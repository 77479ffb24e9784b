package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	c.Paths.Dir = strings.TrimSpace(c.Paths.Dir)
	if c.Paths.Dir == "" {
		if value, ok := os.LookupEnv("FIXCLEAN_DIR"); ok {
			c.Paths.Dir = strings.TrimSpace(value)
		}
	}
	if c.Paths.Dir == "" {
		c.Paths.Dir = defaultDir
	}
	var err error
	if c.Paths.Dir, err = expandPath(c.Paths.Dir); err != nil {
		return fmt.Errorf("paths.dir: %w", err)
	}
	c.Paths.Primary = strings.TrimSpace(c.Paths.Primary)
	if c.Paths.Primary == "" {
		c.Paths.Primary = defaultPrimary
	}
	c.Paths.Secondary = strings.TrimSpace(c.Paths.Secondary)
	if c.Paths.Secondary == "" {
		c.Paths.Secondary = defaultSecondary
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		if value, ok := os.LookupEnv("FIXCLEAN_LOG_LEVEL"); ok {
			c.Logging.Level = strings.ToLower(strings.TrimSpace(value))
		}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	outputs := make([]string, 0, len(c.Logging.OutputPaths))
	for _, path := range c.Logging.OutputPaths {
		path = strings.TrimSpace(path)
		switch path {
		case "":
			continue
		case "stderr", "stdout":
			outputs = append(outputs, path)
			continue
		}
		expanded, err := expandPath(path)
		if err != nil {
			return fmt.Errorf("logging.output_paths: %w", err)
		}
		outputs = append(outputs, expanded)
	}
	c.Logging.OutputPaths = outputs
	return nil
}
