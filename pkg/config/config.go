package config

import (
	"github.com/arthur-debert/pathkit/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Config is the effective pathkit configuration
type Config struct {
	Links LinksConfig `koanf:"links" toml:"links"`
	Log   LogConfig   `koanf:"log" toml:"log"`

	// Source is the user file that was loaded, if any
	Source string `koanf:"-" toml:"-"`
}

// LinksConfig controls symbolic link resolution
type LinksConfig struct {
	MaxHops      int  `koanf:"max_hops" toml:"max_hops"`
	DetectCycles bool `koanf:"detect_cycles" toml:"detect_cycles"`
	CacheSize    int  `koanf:"cache_size" toml:"cache_size"`
}

// LogConfig controls logging outputs
type LogConfig struct {
	File bool `koanf:"file" toml:"file"`
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Links.MaxHops < 1 {
		return errors.Newf(errors.ErrConfigValid, "links.max_hops must be at least 1, got %d", c.Links.MaxHops).
			WithDetail("key", "links.max_hops")
	}
	if c.Links.CacheSize < 0 {
		return errors.Newf(errors.ErrConfigValid, "links.cache_size must not be negative, got %d", c.Links.CacheSize).
			WithDetail("key", "links.cache_size")
	}
	return nil
}

// TOML renders the configuration as a TOML document
func (c *Config) TOML() ([]byte, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return out, nil
}
