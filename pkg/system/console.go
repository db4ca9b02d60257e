package system

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/hop/pkg/errors"
)

// Println writes message and a newline to the console output.
func (p *Prod) Println(message string) {
	fmt.Fprintln(p.out, message)
}

// Readln reads one line from the console input. A last line without a
// trailing newline is still returned; EOF with no data is an error.
func (p *Prod) Readln() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", errors.Wrap(err, errors.ErrInput, "Could not read stdin line")
		}
		if line == "" {
			return "", errors.New(errors.ErrInput, "Could not read stdin line")
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
