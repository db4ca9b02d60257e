package hop

import (
	"path/filepath"

	"github.com/arthur-debert/hop/pkg/errors"
	"github.com/arthur-debert/hop/pkg/logging"
	"github.com/arthur-debert/hop/pkg/types"
)

// MarkDir creates a bookmark named pair.Link pointing at pair.Target and
// returns the absolute target that was linked. The checks run in a fixed
// order: target directory, link name, existing link, then creation.
func (p *Program) MarkDir(pair types.LinkPair) (types.LinkTarget, error) {
	defer logging.LogOperationStart(p.logger, "mark")()

	home, err := p.userDirs.HopHome(p.home)
	if err != nil {
		return "", err
	}

	target, err := p.resolveTarget(pair.Target)
	if err != nil {
		return "", err
	}

	exists, err := p.directories.DirExists(target)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", errors.Newf(errors.ErrInvalidTarget,
			"A directory named `%s` does not exist or you do not have permission to it.", target).
			WithDetail("target", target)
	}

	symlink, err := types.NewSymLink(home, pair.Link)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidLink, "Invalid link name `%s`", pair.Link)
	}

	linkExists, err := p.symLinks.LinkExists(symlink)
	if err != nil {
		return "", err
	}
	if linkExists {
		return "", errors.Newf(errors.ErrLinkExists,
			"A link named `%s` already exists. Aborting mark creation.", pair.Link).
			WithDetail("link", pair.Link.String())
	}

	if err := p.symLinks.WriteLink(symlink, target); err != nil {
		return "", err
	}

	p.logger.Info().Str("link", pair.Link.String()).Str("target", target).Msg("Marked directory")
	return types.LinkTarget(target), nil
}

// resolveTarget makes a mark target absolute. Absolute targets are used as
// given; relative ones are joined onto the working directory, so "." is the
// working directory itself.
func (p *Program) resolveTarget(target types.LinkTarget) (string, error) {
	path := target.Path()
	if filepath.IsAbs(path) {
		return path, nil
	}

	cwd, err := p.getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "Could not determine the current directory")
	}
	return filepath.Join(cwd, path), nil
}
