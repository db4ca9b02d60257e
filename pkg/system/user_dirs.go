package system

import (
	"github.com/arthur-debert/hop/pkg/errors"
	"github.com/arthur-debert/hop/pkg/paths"
	"github.com/arthur-debert/hop/pkg/types"
)

// HopHome resolves home to a directory, creating it when missing.
func (p *Prod) HopHome(home types.HomeType) (string, error) {
	hopHome, err := paths.ResolveHome(home, p.userHome)
	if err != nil {
		return "", err
	}

	info, statErr := p.fs.Stat(hopHome)
	if statErr == nil {
		if !info.IsDir() {
			return "", errors.Newf(errors.ErrHomeNotDir, "%s is not a directory", hopHome).
				WithDetail("home", hopHome)
		}
		return hopHome, nil
	}

	// The home is not usable as is, try and create it
	p.logger.Debug().Str("home", hopHome).Err(statErr).Msg("Creating bookmark home")
	if err := p.fs.MkdirAll(hopHome, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrHomeCreate, "Could not create dir: %s", hopHome).
			WithCause(statErr).
			WithDetail("home", hopHome)
	}

	p.logger.Info().Str("home", hopHome).Msg("Created bookmark home")
	return hopHome, nil
}
