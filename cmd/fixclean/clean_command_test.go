package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fixclean/internal/textutil"
)

func TestRootRunsClean(t *testing.T) {
	env := setupCLITestEnv(t, "He said \"hi\"\t\n", "He said 'hi'\n")

	out, stderr, err := runCLI(t, env)
	if err != nil {
		t.Fatalf("fixclean: %v (stderr %q)", err, stderr)
	}
	if out != "14 13\n" {
		t.Fatalf("unexpected stdout %q", out)
	}
	if got := env.primaryText(t); got != "He said \"hi\"\n" {
		t.Fatalf("primary = %q", got)
	}
	if got := env.secondaryText(t); got != "He said 'hi'\n" {
		t.Fatalf("secondary = %q", got)
	}
	requireContains(t, stderr, "fixture pair cleaned")
}

func TestCleanSummary(t *testing.T) {
	env := setupCLITestEnv(t, "\"a\"\x00", "'a'")

	out, _, err := runCLI(t, env, "clean", "--summary")
	if err != nil {
		t.Fatalf("clean --summary: %v", err)
	}
	lines := strings.SplitN(out, "\n", 2)
	if lines[0] != "4 3" {
		t.Fatalf("expected length line first, got %q", lines[0])
	}
	requireContains(t, strings.ToUpper(out), "DOCUMENT")
	requireContains(t, strings.ToUpper(out), "TOTAL")
	requireContains(t, out, env.cfg.PrimaryPath())
	requireContains(t, out, "Quotes reconciled: 2")
	requireContains(t, out, "Mismatches tolerated: 0")
}

func TestCleanLengthMismatchPrintsLengthsThenFails(t *testing.T) {
	env := setupCLITestEnv(t, "0123456789", "01234567\t")

	out, _, err := runCLI(t, env, "clean")
	if !errors.Is(err, textutil.ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	if out != "10 9\n" {
		t.Fatalf("unexpected stdout %q", out)
	}
	if got := env.secondaryText(t); got != "01234567" {
		t.Fatalf("secondary should keep filtered text, got %q", got)
	}
}

func TestCleanMissingFilePrintsNothing(t *testing.T) {
	env := setupCLITestEnv(t, "a", "b")

	out, _, err := runCLI(t, env, "clean", "--config", writeSecondaryOverride(t, env, "absent.md"))
	if err == nil {
		t.Fatal("expected missing file error")
	}
	if out != "" {
		t.Fatalf("expected no stdout, got %q", out)
	}
	if got := env.primaryText(t); got != "a" {
		t.Fatalf("primary modified: %q", got)
	}
}

func TestRootRejectsArguments(t *testing.T) {
	env := setupCLITestEnv(t, "a", "a")
	if _, _, err := runCLI(t, env, "extra"); err == nil {
		t.Fatal("expected positional arguments to be rejected")
	}
}

func writeSecondaryOverride(t *testing.T, env *cliTestEnv, name string) string {
	t.Helper()
	path := env.configPath + ".override.toml"
	writeTestConfig(t, path, "[paths]\nsecondary = \""+name+"\"\n")
	return path
}

func TestCleanWritesConfiguredLogFile(t *testing.T) {
	env := setupCLITestEnv(t, "abc\t", "abc")
	logPath := filepath.Join(env.baseDir, "logs", "fixclean.log")
	writeTestConfig(t, env.configPath, "[logging]\nformat = \"json\"\noutput_paths = [\""+logPath+"\"]\n")

	out, stderr, err := runCLI(t, env, "clean")
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if out != "4 3\n" {
		t.Fatalf("unexpected stdout %q", out)
	}
	if stderr != "" {
		t.Fatalf("expected logs only in the file, stderr %q", stderr)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	requireContains(t, string(data), "\"msg\":\"fixture pair cleaned\"")
	requireContains(t, string(data), "\"run_id\":")
}
