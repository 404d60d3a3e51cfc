package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/sheen/internal/model"
)

func TestLoad_MissingFile_YieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	require.NoError(t, err, "a missing config file is not an error")

	assert.NotEmpty(t, cfg.OutputDir)
	assert.NotEmpty(t, cfg.UpstreamConfigDir)
	assert.NotEmpty(t, cfg.StateDir)
	assert.Equal(t, model.AllDialects(), cfg.Dialects)
	assert.Contains(t, cfg.SharePaths, "/usr/local/share/opencode/themes")
}

func TestLoad_PartialFile_KeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: /tmp/out\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// The named field is overridden; defaults survive for the rest.
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.NotEmpty(t, cfg.UpstreamConfigDir)
	assert.Equal(t, model.AllDialects(), cfg.Dialects)
}

func TestLoad_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
output_dir: /tmp/out
upstream_config_dir: /tmp/opencode
state_dir: /tmp/state
share_paths:
  - /opt/themes
dialects:
  - zsh
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, "/tmp/opencode", cfg.UpstreamConfigDir)
	assert.Equal(t, "/tmp/state", cfg.StateDir)
	assert.Equal(t, []string{"/opt/themes"}, cfg.SharePaths)
	assert.Equal(t, []model.Dialect{model.DialectZsh}, cfg.Dialects)
}

func TestLoad_MalformedYAML_IsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: [\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err, "a present-and-broken config must fail loudly")
}

func TestLoad_UnsupportedDialect_IsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dialects: [fish]\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fish")
}

func TestLoad_EmptyOutputDir_IsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`output_dir: ""`+"\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
