package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"fixclean/internal/config"
	"fixclean/internal/fixture"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand(ctx))

	return configCmd
}

func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Long: "Write the annotated sample configuration and print the fixture pair it\n" +
			"resolves to. --dir still overrides paths.dir when printing.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)

			cfg, _, _, err := config.Load(target)
			if err != nil {
				return fmt.Errorf("load sample config: %w", err)
			}
			if cfg, err = cfg.WithDir(ctx.dirOverride()); err != nil {
				return err
			}
			writeResolvedConfig(out, cfg)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if !ctx.configExists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			writeResolvedConfig(out, cfg)
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

// writeResolvedConfig prints the settings a clean run would use.
func writeResolvedConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintf(out, "Primary: %s\n", cfg.PrimaryPath())
	fmt.Fprintf(out, "Secondary: %s\n", cfg.SecondaryPath())
	fmt.Fprintf(out, "Universal newlines: %s\n", onOff(cfg.Text.UniversalNewlines))
	lock := "off"
	if cfg.Lock.Enabled {
		lock = fixture.LockPath(cfg.Paths.Dir)
	}
	fmt.Fprintf(out, "Run lock: %s\n", lock)
	outputs := cfg.Logging.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}
	fmt.Fprintf(out, "Logging: %s %s to %s\n", cfg.Logging.Level, cfg.Logging.Format, strings.Join(outputs, ", "))
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
