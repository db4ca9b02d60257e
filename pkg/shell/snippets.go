// Package shell renders the shell function that lets hop change the
// current directory.
//
// A child process cannot change its parent's working directory, so
// `hop jump NAME` only prints the target. The function wraps the binary and
// turns a successful jump into a cd; every other command passes through.
package shell

import (
	"bytes"
	"sort"
	"text/template"

	"github.com/arthur-debert/hop/pkg/errors"
)

// DefaultShell is used when no shell is named.
const DefaultShell = "bash"

var snippets = map[string]string{
	"bash": posixSnippet,
	"zsh":  posixSnippet,
	"fish": fishSnippet,
}

const posixSnippet = `# hop shell integration: add to your ~/.{{.Shell}}rc
#   eval "$({{.Binary}} snippet --shell {{.Shell}})"
hop() {
  case "$1" in
    jump|j)
      local target
      target="$(command {{.Binary}} "$@")" && cd "$target"
      ;;
    *)
      command {{.Binary}} "$@"
      ;;
  esac
}
`

const fishSnippet = `# hop shell integration: add to ~/.config/fish/config.fish
#   {{.Binary}} snippet --shell fish | source
function hop
    if test (count $argv) -ge 1; and contains -- $argv[1] jump j
        set -l target (command {{.Binary}} $argv); and cd $target
    else
        command {{.Binary}} $argv
    end
end
`

// Options selects the shell and the binary the function wraps.
type Options struct {
	Shell  string
	Binary string
}

// Snippet renders the integration function for opts.Shell.
func Snippet(opts Options) (string, error) {
	if opts.Shell == "" {
		opts.Shell = DefaultShell
	}
	if opts.Binary == "" {
		opts.Binary = "hop"
	}

	text, ok := snippets[opts.Shell]
	if !ok {
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported shell %q", opts.Shell).
			WithDetail("supported", Supported())
	}

	tmpl, err := template.New(opts.Shell).Parse(text)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to parse shell snippet")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, opts); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render shell snippet")
	}
	return buf.String(), nil
}

// Supported lists the shells a snippet exists for.
func Supported() []string {
	names := make([]string, 0, len(snippets))
	for name := range snippets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
