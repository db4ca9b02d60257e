package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/hop/pkg/errors"
	"github.com/arthur-debert/hop/pkg/types"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvConfigFile overrides the location of the user config file
	EnvConfigFile = "HOP_CONFIG_FILE"
)

// Directory and file names under the XDG base directories
const (
	// AppDirName is the directory name for hop-specific files
	AppDirName = "hop"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "hop.log"
)

// HomeFunc looks up the user's home directory.
type HomeFunc func() (string, error)

// UserHome returns the user's home directory. xdg resolves it from the
// environment at startup; os.UserHomeDir is the fallback.
func UserHome() (string, error) {
	if xdg.Home != "" {
		return xdg.Home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrHomeDir, "Could not get home directory")
	}
	if home == "" {
		return "", errors.New(errors.ErrHomeDir, "Could not get home directory")
	}
	return home, nil
}

// ConfigFilePath returns the user config file, honouring HOP_CONFIG_FILE.
func ConfigFilePath() string {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return ExpandHome(p)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// LogFilePath returns the path to the log file under XDG_STATE_HOME.
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, AppDirName, LogFileName)
}

// ResolveHome turns a HomeType into an absolute directory path. Relative
// homes are joined under the user's home directory; absolute homes are used
// as given, with a leading ~ expanded and relative input made absolute
// against the working directory.
func ResolveHome(home types.HomeType, userHome HomeFunc) (string, error) {
	switch home.Kind {
	case types.HomeAbsolute:
		if home.Path == "" {
			return "", errors.New(errors.ErrHomeDir, "an absolute bookmark home needs a path")
		}
		path := ExpandHome(home.Path)
		if filepath.IsAbs(path) {
			return path, nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrHomeDir, "failed to get absolute path for %s", path)
		}
		return abs, nil
	default:
		if userHome == nil {
			userHome = UserHome
		}
		base, err := userHome()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, home.Path), nil
	}
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := UserHome()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			// Can't expand, return as-is
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
