// Package styles defines the visual styling for hop's terminal output.
//
// Styles are declared in the embedded styles.yaml with semantic names and
// adaptive colors that follow light and dark terminal themes. A Registry
// binds them to a lipgloss renderer, so the renderer's color profile
// decides whether any escape codes are emitted at all.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var embeddedStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles
type Registry struct {
	styles map[string]lipgloss.Style
	plain  lipgloss.Style
}

// Default builds the embedded styles for renderer r.
func Default(r *lipgloss.Renderer) *Registry {
	reg, err := Load(embeddedStyles, r)
	if err != nil {
		// Use unstyled output instead of failing
		return &Registry{styles: map[string]lipgloss.Style{}, plain: r.NewStyle()}
	}
	return reg
}

// Load parses a YAML styles configuration and binds it to renderer r.
func Load(data []byte, r *lipgloss.Renderer) (*Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{
			Light: def.Light,
			Dark:  def.Dark,
		}
	}

	reg := &Registry{
		styles: make(map[string]lipgloss.Style, len(config.Styles)),
		plain:  r.NewStyle(),
	}
	for name, def := range config.Styles {
		reg.styles[name] = buildStyle(r.NewStyle(), def, colors)
	}
	return reg, nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(style lipgloss.Style, def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			style = style.Background(color)
		}
	}

	return style
}

// Get returns the named style, or an unstyled one when it is not defined.
func (r *Registry) Get(name string) lipgloss.Style {
	if style, ok := r.styles[name]; ok {
		return style
	}
	return r.plain
}

// Has reports whether name is defined.
func (r *Registry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// Render applies the named style to s.
func (r *Registry) Render(name, s string) string {
	return r.Get(name).Render(s)
}
