package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/hop/pkg/errors"
	"github.com/arthur-debert/hop/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "HOP_"

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFile is an explicit config file. Unlike the default location it
	// must exist.
	ConfigFile string

	// Overrides are applied last, keyed by dotted path ("home.path").
	Overrides map[string]interface{}
}

// Load merges the configuration layers and decodes the result.
func Load(opts LoadOptions) (*Config, error) {
	k, err := loadKoanf(opts)
	if err != nil {
		return nil, err
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	cfg.Home.Path = paths.ExpandHome(cfg.Home.Path)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "invalid configuration")
	}

	return &cfg, nil
}

func loadKoanf(opts LoadOptions) (*koanf.Koanf, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	path, explicit := configFile(opts)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
			WithDetail("path", path)
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	return k, nil
}

// configFile returns the config file to read and whether the caller asked
// for it explicitly.
func configFile(opts LoadOptions) (string, bool) {
	if opts.ConfigFile != "" {
		return paths.ExpandHome(opts.ConfigFile), true
	}
	if p := os.Getenv(paths.EnvConfigFile); p != "" {
		return paths.ExpandHome(p), true
	}
	path := paths.ConfigFilePath()
	if _, err := os.Stat(path); err != nil {
		// A YAML file next to the default TOML location is also accepted
		alt := strings.TrimSuffix(path, filepath.Ext(path)) + ".yaml"
		if _, err := os.Stat(alt); err == nil {
			return alt, false
		}
	}
	return path, false
}

// parserFor picks the koanf parser from the file extension. TOML is the
// default.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
