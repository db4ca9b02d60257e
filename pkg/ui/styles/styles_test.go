package styles_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/hop/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	return r
}

func TestDefaultRegistry(t *testing.T) {
	reg := styles.Default(plainRenderer())

	for _, name := range []string{"Link", "Target", "Arrow", "Hint", "Context", "Error", "Muted", "Prompt", "TableHeader"} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, reg.Has(name), "style %s should be defined", name)
		})
	}
}

func TestRender_Ascii(t *testing.T) {
	reg := styles.Default(plainRenderer())

	assert.Equal(t, "Error: boom", reg.Render("Error", "Error: boom"))
	assert.Equal(t, "anything", reg.Render("NoSuchStyle", "anything"))
}

func TestRender_Color(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.ANSI256)
	r.SetHasDarkBackground(true)

	reg := styles.Default(r)
	out := reg.Render("Error", "boom")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "\x1b[")
}

func TestLoad(t *testing.T) {
	data := []byte(`
colors:
  accent:
    light: "#000000"
    dark: "#ffffff"
styles:
  Accent:
    bold: true
    foreground: accent
`)
	reg, err := styles.Load(data, plainRenderer())
	require.NoError(t, err)
	assert.True(t, reg.Has("Accent"))
	assert.False(t, reg.Has("Link"))

	_, err = styles.Load([]byte("styles: [unclosed"), plainRenderer())
	assert.Error(t, err)
}
