package config

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/hop/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent returns the default configuration file content
func GenerateConfigContent() string {
	return DefaultConfigContent()
}

// EffectiveConfigContent renders the merged configuration as TOML
func EffectiveConfigContent(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return string(data), nil
}

// WriteDefaultConfig writes the default configuration to path. An existing
// file is never overwritten.
func WriteDefaultConfig(path string) error {
	if _, err := os.Lstat(path); err == nil {
		return errors.Newf(errors.ErrFileWrite, "%s already exists, not overwriting", path).
			WithDetail("path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", filepath.Dir(path))
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", path)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(GenerateConfigContent()); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return nil
}
