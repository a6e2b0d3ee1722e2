// Package config handles configuration management for pathkit.
//
// Configuration is layered with koanf, lowest priority first:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. a user file: an explicit path, $PATHKIT_CONFIG, or
//     config.toml / config.yaml under $XDG_CONFIG_HOME/pathkit
//  3. PATHKIT_<SECTION>_<KEY> environment variables, for example
//     PATHKIT_LINKS_MAX_HOPS=10
package config
