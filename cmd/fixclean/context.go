package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"fixclean/internal/config"
	"fixclean/internal/fixture"
	"fixclean/internal/logging"
)

type commandContext struct {
	configFlag *string
	dirFlag    *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag, dirFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		dirFlag:    dirFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if cfg, err = cfg.WithDir(c.dirOverride()); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) dirOverride() string {
	if c.dirFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.dirFlag)
}

// newLogger builds the run logger on the command's stderr.
func (c *commandContext) newLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	return logging.NewFromConfig(cfg, cmd.ErrOrStderr())
}

// runContext tags the command context with a fresh run ID.
func (c *commandContext) runContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithRunID(ctx, uuid.NewString())
}

func (c *commandContext) newCleaner(cmd *cobra.Command) (*fixture.Cleaner, context.Context, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.newLogger(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	ctx := c.runContext(cmd)
	logging.WithContext(ctx, logger).Debug("configuration resolved",
		logging.String("config_path", c.configPath),
		logging.String("dir", cfg.Paths.Dir),
	)
	return fixture.New(fixture.PairFromConfig(cfg), fixture.OptionsFromConfig(cfg), logger), ctx, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
