// Package config loads, normalizes, and validates fixclean configuration data.
//
// It supplies defaults that reproduce the bare `fixclean` behaviour (clean
// alice.md and alice2.md in the working directory), expands user paths
// (including tilde shortcuts), reads TOML files, and honours environment
// fallbacks such as FIXCLEAN_DIR. The Config type centralizes every knob the
// CLI needs so the fixture pair and logging setup are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
