package system

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/hop/pkg/errors"
	"github.com/arthur-debert/hop/pkg/types"
)

// ReadDirLinks lists the bookmark symlinks in dir, in directory order.
func (p *Prod) ReadDirLinks(dir string) ([]types.LinkPair, error) {
	entries, err := p.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "Could not read links from %s", dir)
	}

	pairs := make([]types.LinkPair, 0, len(entries))
	for _, entry := range entries {
		if entry.Type()&fs.ModeSymlink == 0 {
			p.logger.Trace().Str("entry", entry.Name()).Msg("Skipping non-symlink entry")
			continue
		}

		target, err := p.fs.Readlink(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSymlinkRead, "Could not read link: %s", entry.Name()).
				WithDetail("link", entry.Name())
		}
		pairs = append(pairs, types.NewLinkPair(entry.Name(), target))
	}

	return pairs, nil
}

// LinkExists reports whether anything, of any file type, exists at link.
func (p *Prod) LinkExists(link types.SymLink) (bool, error) {
	_, err := p.fs.Lstat(link.Path())
	if err == nil {
		return true, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrFileAccess, "Could not access %s", link)
}

// WriteLink creates the symlink link -> target.
func (p *Prod) WriteLink(link types.SymLink, target string) error {
	if err := p.fs.Symlink(target, link.Path()); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "Could not create link %s", link).
			WithDetail("target", target)
	}
	p.logger.Debug().Str("link", link.String()).Str("target", target).Msg("Created symlink")
	return nil
}

// DeleteLink removes the symlink for pair from dir. It refuses to remove
// anything that is not a symlink.
func (p *Prod) DeleteLink(dir string, pair types.LinkPair) error {
	link, err := types.NewSymLink(dir, pair.Link)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidLink, "Invalid link name")
	}

	info, err := p.fs.Lstat(link.Path())
	if err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkRemove, "Failed to delete: %s", pair)
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return errors.Newf(errors.ErrNotSymlink, "Failed to delete: %s is not a symlink", link)
	}

	if err := p.fs.Remove(link.Path()); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkRemove, "Failed to delete: %s", pair)
	}
	p.logger.Debug().Str("link", link.String()).Msg("Removed symlink")
	return nil
}
