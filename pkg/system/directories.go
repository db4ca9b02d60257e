package system

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/hop/pkg/errors"
)

// DirExists reports whether path is an existing directory.
func (p *Prod) DirExists(path string) (bool, error) {
	info, err := p.fs.Stat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileAccess, "Could not access %s", path)
	}
	return info.IsDir(), nil
}
