package hop

import (
	"os"

	"github.com/arthur-debert/hop/pkg/errors"
	"github.com/arthur-debert/hop/pkg/logging"
	"github.com/arthur-debert/hop/pkg/types"
	"github.com/rs/zerolog"
)

// Options wires a Program to its capabilities.
type Options struct {
	// Home selects the bookmark home
	Home types.HomeType

	UserDirs    types.UserDirs
	Directories types.Directories
	SymLinks    types.SymLinks
	StdIO       types.StdIO

	// Getwd returns the directory relative mark targets are resolved
	// against. Defaults to os.Getwd.
	Getwd func() (string, error)
}

// Program runs bookmark operations against a set of capabilities.
type Program struct {
	home        types.HomeType
	userDirs    types.UserDirs
	directories types.Directories
	symLinks    types.SymLinks
	stdIO       types.StdIO
	getwd       func() (string, error)
	logger      zerolog.Logger
}

// New creates a Program from opts.
func New(opts Options) *Program {
	getwd := opts.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}

	return &Program{
		home:        opts.Home,
		userDirs:    opts.UserDirs,
		directories: opts.Directories,
		symLinks:    opts.SymLinks,
		stdIO:       opts.StdIO,
		getwd:       getwd,
		logger:      logging.GetLogger("hop.program"),
	}
}

// Home returns the HomeType the program was configured with.
func (p *Program) Home() types.HomeType {
	return p.home
}

// ListLinks returns every bookmark. An empty home yields an empty slice.
func (p *Program) ListLinks() ([]types.LinkPair, error) {
	defer logging.LogOperationStart(p.logger, "list")()
	return p.readLinks()
}

// TabulateLinks returns every bookmark for display as name/target pairs.
func (p *Program) TabulateLinks() ([]types.LinkPair, error) {
	defer logging.LogOperationStart(p.logger, "tabulate")()
	return p.readLinks()
}

// JumpTarget returns the target of link.
func (p *Program) JumpTarget(link types.Link) (types.LinkTarget, error) {
	defer logging.LogOperationStart(p.logger, "jump")()

	pairs, err := p.readLinks()
	if err != nil {
		return "", err
	}

	pair, ok := findLink(pairs, link)
	if !ok {
		return "", errors.Newf(errors.ErrLinkNotFound, "Could not find link: %s", link).
			WithDetail("link", link.String())
	}

	p.logger.Debug().Str("link", link.String()).Str("target", pair.Target.String()).Msg("Resolved jump target")
	return pair.Target, nil
}

// readLinks resolves the home and enumerates its symlinks.
func (p *Program) readLinks() ([]types.LinkPair, error) {
	home, err := p.userDirs.HopHome(p.home)
	if err != nil {
		return nil, err
	}

	pairs, err := p.symLinks.ReadDirLinks(home)
	if err != nil {
		return nil, err
	}
	if pairs == nil {
		pairs = []types.LinkPair{}
	}

	p.logger.Debug().Str("home", home).Int("links", len(pairs)).Msg("Read bookmark links")
	return pairs, nil
}

func findLink(pairs []types.LinkPair, link types.Link) (types.LinkPair, bool) {
	for _, pair := range pairs {
		if pair.Link == link {
			return pair, true
		}
	}
	return types.LinkPair{}, false
}
