package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fixclean/internal/config"
	"fixclean/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, primary, secondary string) *cliTestEnv {
	t.Helper()

	homeDir := filepath.Join(t.TempDir(), "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("FIXCLEAN_DIR", "")
	t.Setenv("FIXCLEAN_LOG_LEVEL", "")

	cfg := testsupport.NewConfig(t, testsupport.WithFixtures(primary, secondary))
	configPath := filepath.Join(homeDir, ".config", "fixclean", "config.toml")

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    testsupport.BaseDir(cfg),
	}
}

func (e *cliTestEnv) primaryText(t *testing.T) string {
	t.Helper()
	return testsupport.ReadText(t, e.cfg.PrimaryPath())
}

func (e *cliTestEnv) secondaryText(t *testing.T) string {
	t.Helper()
	return testsupport.ReadText(t, e.cfg.SecondaryPath())
}

// runCLI executes a fresh command tree against the env's fixture directory.
func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{"--dir", env.cfg.Paths.Dir, "--config", env.configPath}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path, content string) {
	t.Helper()
	testsupport.WriteText(t, path, content)
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
