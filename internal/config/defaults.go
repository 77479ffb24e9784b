package config

const (
	defaultDir               = "."
	defaultPrimary           = "alice.md"
	defaultSecondary         = "alice2.md"
	defaultUniversalNewlines = true
	defaultLockEnabled       = true
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults. Dir and the log
// level stay empty so normalize can consult their environment fallbacks.
func Default() Config {
	return Config{
		Paths: Paths{
			Primary:   defaultPrimary,
			Secondary: defaultSecondary,
		},
		Text: Text{
			UniversalNewlines: defaultUniversalNewlines,
		},
		Lock: Lock{
			Enabled: defaultLockEnabled,
		},
		Logging: Logging{
			Format: defaultLogFormat,
		},
	}
}
