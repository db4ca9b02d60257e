package system

import (
	"bufio"
	"io"
	"os"

	"github.com/arthur-debert/hop/pkg/filesystem"
	"github.com/arthur-debert/hop/pkg/logging"
	"github.com/arthur-debert/hop/pkg/paths"
	"github.com/arthur-debert/hop/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a Prod. Zero values fall back to the real OS.
type Options struct {
	// FS is the filesystem all capabilities operate on
	FS types.FS

	// UserHome looks up the user's home directory for relative homes
	UserHome paths.HomeFunc

	// In and Out are the console streams
	In  io.Reader
	Out io.Writer
}

// Prod implements every capability hop needs on top of a types.FS.
type Prod struct {
	fs       types.FS
	userHome paths.HomeFunc
	in       *bufio.Reader
	out      io.Writer
	logger   zerolog.Logger
}

var (
	_ types.UserDirs    = (*Prod)(nil)
	_ types.Directories = (*Prod)(nil)
	_ types.SymLinks    = (*Prod)(nil)
	_ types.StdIO       = (*Prod)(nil)
)

// New creates a Prod from opts.
func New(opts Options) *Prod {
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.UserHome == nil {
		opts.UserHome = paths.UserHome
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	return &Prod{
		fs:       opts.FS,
		userHome: opts.UserHome,
		in:       bufio.NewReader(opts.In),
		out:      opts.Out,
		logger:   logging.GetLogger("system"),
	}
}
