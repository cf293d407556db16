package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "ISC", cfg.Defaults.License)
	assert.Equal(t, "1.0.0", cfg.Defaults.Version)
	assert.Equal(t, "web-backend", cfg.Defaults.Template)
	assert.NotEmpty(t, cfg.TemplatesDir)
}

func TestLoadConfig_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `defaults:
  author: Sam <sam@example.com>
  license: MIT
templates_dir: /opt/templates
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Sam <sam@example.com>", cfg.Defaults.Author)
	assert.Equal(t, "MIT", cfg.Defaults.License)
	assert.Equal(t, "/opt/templates", cfg.TemplatesDir)
	// Unset values fall back to defaults.
	assert.Equal(t, "1.0.0", cfg.Defaults.Version)
	assert.Equal(t, "web-backend", cfg.Defaults.Template)
}

func TestWriteDefaultConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, WriteDefaultConfig())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "ISC", cfg.Defaults.License)
	assert.Equal(t, "web-backend", cfg.Defaults.Template)
}

func TestWriteDefaultConfig_DoesNotOverwrite(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	custom := "defaults:\n  license: MIT\n"
	require.NoError(t, EnsureConfigDir())
	require.NoError(t, os.WriteFile(DefaultConfigPath(), []byte(custom), 0644))

	require.NoError(t, WriteDefaultConfig())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "MIT", cfg.Defaults.License, "existing config must be left untouched")
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - not yaml"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
