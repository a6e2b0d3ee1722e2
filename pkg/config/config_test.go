package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pathkit/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate clears overrides so the host environment cannot leak in
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv(EnvConfigFile, "")
	t.Setenv("PATHKIT_LINKS_MAX_HOPS", "")
	os.Unsetenv("PATHKIT_LINKS_MAX_HOPS")
	return t.TempDir()
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(LoadOptions{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Links.MaxHops)
	assert.True(t, cfg.Links.DetectCycles)
	assert.Equal(t, 256, cfg.Links.CacheSize)
	assert.True(t, cfg.Log.File)
	assert.Empty(t, cfg.Source)
}

func TestLoad_UserFiles(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "toml",
			file: "config.toml",
			content: `
[links]
max_hops = 12
detect_cycles = false
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 12, cfg.Links.MaxHops)
				assert.False(t, cfg.Links.DetectCycles)
				assert.Equal(t, 256, cfg.Links.CacheSize, "untouched keys keep defaults")
			},
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: `
links:
  cache_size: 0
log:
  file: false
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 0, cfg.Links.CacheSize)
				assert.False(t, cfg.Log.File)
				assert.Equal(t, 40, cfg.Links.MaxHops)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			cfg, err := Load(LoadOptions{Dir: dir})
			require.NoError(t, err)
			assert.Equal(t, path, cfg.Source)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_ExplicitFileWins(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[links]\nmax_hops = 3\n"), 0644))

	explicit := filepath.Join(t.TempDir(), "other.toml")
	require.NoError(t, os.WriteFile(explicit, []byte("[links]\nmax_hops = 9\n"), 0644))

	cfg, err := Load(LoadOptions{File: explicit, Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Links.MaxHops)
	assert.Equal(t, explicit, cfg.Source)

	t.Setenv(EnvConfigFile, explicit)
	cfg, err = Load(LoadOptions{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, explicit, cfg.Source)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[links]\nmax_hops = 3\n"), 0644))
	t.Setenv("PATHKIT_LINKS_MAX_HOPS", "7")
	t.Setenv("PATHKIT_LINKS_DETECT_CYCLES", "false")

	cfg, err := Load(LoadOptions{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Links.MaxHops)
	assert.False(t, cfg.Links.DetectCycles)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		dir := isolate(t)
		_, err := Load(LoadOptions{File: filepath.Join(dir, "nope.toml")})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed toml", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[links\nmax_hops = "), 0644))
		_, err := Load(LoadOptions{Dir: dir})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid value", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[links]\nmax_hops = 0\n"), 0644))
		_, err := Load(LoadOptions{Dir: dir})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		assert.Equal(t, "links.max_hops", errors.GetErrorDetails(err)["key"])
	})
}

func TestValidate(t *testing.T) {
	cfg := &Config{Links: LinksConfig{MaxHops: 1, CacheSize: -1}}
	err := cfg.Validate()
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))

	cfg.Links.CacheSize = 0
	assert.NoError(t, cfg.Validate())
}

func TestConfig_TOML(t *testing.T) {
	cfg := &Config{
		Links:  LinksConfig{MaxHops: 5, DetectCycles: true, CacheSize: 8},
		Log:    LogConfig{File: false},
		Source: "/ignored",
	}

	out, err := cfg.TOML()
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "[links]")
	assert.Contains(t, text, "max_hops = 5")
	assert.Contains(t, text, "detect_cycles = true")
	assert.Contains(t, text, "cache_size = 8")
	assert.Contains(t, text, "[log]")
	assert.NotContains(t, text, "/ignored")
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "links.max_hops", envKey("PATHKIT_LINKS_MAX_HOPS"))
	assert.Equal(t, "log.file", envKey("PATHKIT_LOG_FILE"))
}

func TestDefaultsContent(t *testing.T) {
	assert.Contains(t, DefaultsContent(), "max_hops = 40")
}
