package config

import (
	"fmt"

	"github.com/arthur-debert/hop/pkg/types"
)

// Color modes for output.color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the fully merged hop configuration
type Config struct {
	Home    Home    `koanf:"home" toml:"home"`
	Logging Logging `koanf:"logging" toml:"logging"`
	Output  Output  `koanf:"output" toml:"output"`
}

// Home selects the bookmark directory
type Home struct {
	Name string `koanf:"name" toml:"name"`
	Path string `koanf:"path" toml:"path"`
}

// Logging controls the log file
type Logging struct {
	File bool `koanf:"file" toml:"file"`
}

// Output controls terminal rendering
type Output struct {
	Color string `koanf:"color" toml:"color"`
}

// HomeType returns an absolute home when home.path is set and a home
// relative to the user's directory otherwise.
func (c *Config) HomeType() types.HomeType {
	if c.Home.Path != "" {
		return types.AbsoluteHome(c.Home.Path)
	}
	if c.Home.Name == "" {
		return types.DefaultHome()
	}
	return types.RelativeHome(c.Home.Name)
}

// Validate checks values that cannot be expressed in the TOML types alone.
func (c *Config) Validate() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color must be one of %s, %s or %s, got %q",
			ColorAuto, ColorAlways, ColorNever, c.Output.Color)
	}

	if c.Home.Path == "" && c.Home.Name != "" {
		if err := types.NewLink(c.Home.Name).Validate(); err != nil {
			return fmt.Errorf("home.name: %w", err)
		}
	}
	return nil
}
