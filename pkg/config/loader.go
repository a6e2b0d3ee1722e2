package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pathkit/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "PATHKIT_"

	// EnvConfigFile names a user config file to load
	EnvConfigFile = "PATHKIT_CONFIG"

	// AppDirName is the directory name under XDG base directories
	AppDirName = "pathkit"
)

// userConfigNames are tried in order inside the config directory
var userConfigNames = []string{"config.toml", "config.yaml", "config.yml"}

// LoadOptions selects where the user layer comes from
type LoadOptions struct {
	// File is an explicit config file. It must exist.
	File string

	// Dir is searched for config.toml/config.yaml when no file is given.
	// Defaults to $XDG_CONFIG_HOME/pathkit.
	Dir string
}

// DefaultDir returns the directory searched for user configuration
func DefaultDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// Load builds the effective configuration from defaults, the user file and
// the environment
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	source, err := userConfigPath(opts)
	if err != nil {
		return nil, err
	}
	if source != "" {
		if err := k.Load(file.Provider(source), parserFor(source)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", source).
				WithDetail("path", source)
		}
	}

	// 3. Environment
	err = k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// userConfigPath resolves the user layer: explicit file, then the
// environment, then the first existing file in the config directory
func userConfigPath(opts LoadOptions) (string, error) {
	explicit := opts.File
	if explicit == "" {
		explicit = os.Getenv(EnvConfigFile)
	}
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s is not readable", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir()
	}
	for _, name := range userConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps PATHKIT_LINKS_MAX_HOPS to links.max_hops. Only the first
// underscore separates the section from the key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}
