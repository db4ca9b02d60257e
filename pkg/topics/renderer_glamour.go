package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics for the terminal
type GlamourRenderer struct {
	Style string // "dark", "light", "notty", "auto", or path to a custom style
	Width int    // 0 keeps glamour's default
}

// NewGlamourRenderer creates a markdown renderer with style auto-detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{
		Style: "auto",
	}
}

// Render converts markdown to styled terminal output. Other formats and
// rendering failures fall back to the raw content.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
