// Package config loads hop's configuration.
// Values are layered from the embedded defaults, the user config file,
// HOP_* environment variables and command-line overrides.
package config
