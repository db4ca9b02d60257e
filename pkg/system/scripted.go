package system

import (
	"fmt"
	"io"

	"github.com/arthur-debert/hop/pkg/errors"
	"github.com/arthur-debert/hop/pkg/types"
)

// ScriptedIO is a StdIO whose input is a fixed list of lines. The CLI uses
// it to answer the delete confirmation up front for --yes.
type ScriptedIO struct {
	out   io.Writer
	lines []string
}

var _ types.StdIO = (*ScriptedIO)(nil)

// NewScriptedIO returns a StdIO printing to out and reading from lines.
func NewScriptedIO(out io.Writer, lines ...string) *ScriptedIO {
	return &ScriptedIO{out: out, lines: lines}
}

// Println writes message to the output.
func (s *ScriptedIO) Println(message string) {
	fmt.Fprintln(s.out, message)
}

// Readln returns the next scripted line.
func (s *ScriptedIO) Readln() (string, error) {
	if len(s.lines) == 0 {
		return "", errors.New(errors.ErrInput, "Could not read stdin line")
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}
