package ui

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/hop/pkg/errors"
	"github.com/arthur-debert/hop/pkg/types"
	"github.com/arthur-debert/hop/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Renderer writes command results to out and failures to errOut.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	styles *styles.Registry
}

// NewRenderer creates a Renderer. colorMode is one of auto, always or never.
func NewRenderer(out, errOut io.Writer, colorMode string) *Renderer {
	lr := lipgloss.NewRenderer(out)
	lr.SetColorProfile(DetectProfile(colorMode, out))

	return &Renderer{
		out:    out,
		errOut: errOut,
		styles: styles.Default(lr),
	}
}

// Names prints one link name per line.
func (r *Renderer) Names(pairs []types.LinkPair) {
	if len(pairs) == 0 {
		r.empty(false)
		return
	}
	for _, pair := range pairs {
		fmt.Fprintln(r.out, pair.Link)
	}
}

// Table prints links and their targets in aligned columns.
func (r *Renderer) Table(pairs []types.LinkPair) error {
	if len(pairs) == 0 {
		r.Empty()
		return nil
	}

	data := make(pterm.TableData, 0, len(pairs))
	for _, pair := range pairs {
		data = append(data, []string{
			r.styles.Render("Link", pair.Link.String()),
			r.styles.Render("Arrow", "->"),
			r.styles.Render("Target", pair.Target.String()),
		})
	}

	plain := pterm.NewStyle()
	table, err := pterm.DefaultTable.
		WithData(data).
		WithSeparator(" ").
		WithStyle(plain).
		WithHeaderStyle(plain).
		WithSeparatorStyle(plain).
		Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render table")
	}

	fmt.Fprintln(r.out, trimLines(table))
	return nil
}

// Target prints a jump target, unstyled.
func (r *Renderer) Target(target types.LinkTarget) {
	fmt.Fprintln(r.out, target)
}

// Marked reports a new bookmark.
func (r *Renderer) Marked(link types.Link, target types.LinkTarget) {
	fmt.Fprintf(r.out, "Created link from %s %s %s\n", link, r.styles.Render("Arrow", "->"), target)
}

// Deleted reports the outcome of a delete.
func (r *Renderer) Deleted(link types.Link, status types.DeleteStatus) {
	if status.IsAborted() {
		fmt.Fprintf(r.out, "Aborting delete of %s\n", link)
		return
	}
	fmt.Fprintf(r.out, "Removed link %s %s %s\n", link, r.styles.Render("Arrow", "->"), status.Pair.Target)
}

// Empty prints the hint shown when there are no bookmarks.
func (r *Renderer) Empty() {
	r.empty(true)
}

// empty prints the no-bookmarks hint. list output is read by scripts, so
// Names asks for it unstyled.
func (r *Renderer) empty(styled bool) {
	hint := func(s string) string {
		if !styled {
			return s
		}
		return r.styles.Render("Hint", s)
	}
	fmt.Fprintln(r.out, "No entries to list.")
	fmt.Fprintf(r.out, "Please create some entries with %s\n", hint("hop mark <link> <path>"))
	fmt.Fprintf(r.out, "Please use %s for more information\n", hint("hop help"))
}

// Error prints what was being attempted followed by the error itself.
func (r *Renderer) Error(context string, err error) {
	if context != "" {
		fmt.Fprintln(r.errOut, r.renderLines("Context", context))
	}
	fmt.Fprintln(r.errOut, r.renderLines("Error", "Error: "+ErrorText(err)))
}

// renderLines styles each line on its own. lipgloss pads a multi-line block
// to its widest line, which would leave trailing spaces on stderr.
func (r *Renderer) renderLines(style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = r.styles.Render(style, line)
	}
	return strings.Join(lines, "\n")
}

// ErrorText flattens an error for display. A HopError contributes its
// message, then its wrapped error and its cause, one per line.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}

	var hopErr *errors.HopError
	if !stderrors.As(err, &hopErr) {
		return err.Error()
	}

	lines := []string{hopErr.Message}
	if hopErr.Wrapped != nil {
		lines = append(lines, ErrorText(hopErr.Wrapped))
	}
	if hopErr.Cause != nil {
		lines = append(lines, ErrorText(hopErr.Cause))
	}
	return strings.Join(lines, "\n")
}

func trimLines(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
