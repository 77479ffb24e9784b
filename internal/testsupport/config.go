package testsupport

import (
	"path/filepath"
	"testing"

	"fixclean/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a normalized config whose fixture directory is a unique
// temp directory per test. It applies any provided options afterwards.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.Dir = filepath.Join(base, "fixtures")
	cfgVal.Logging.Level = "debug"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithFixtures writes the primary and secondary documents into the config's
// fixture directory.
func WithFixtures(primary, secondary string) ConfigOption {
	return func(b *configBuilder) {
		WriteText(b.t, b.cfg.PrimaryPath(), primary)
		WriteText(b.t, b.cfg.SecondaryPath(), secondary)
	}
}

// WithoutLock disables the advisory run lock.
func WithoutLock() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Lock.Enabled = false
	}
}

// WithRawNewlines disables universal newline translation.
func WithRawNewlines() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Text.UniversalNewlines = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.Dir)
}
