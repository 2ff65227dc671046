package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir stands in for t.Chdir, which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "git2gantt output", cfg.Title)
	assert.Equal(t, "Development", cfg.Description)
	assert.Equal(t, 0, cfg.Fuzz)
	assert.Equal(t, 1, cfg.Jobs)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.yaml")
	data := "title: side projects\ndescription: Hacking\nfuzz: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "side projects", cfg.Title)
	assert.Equal(t, "Hacking", cfg.Description)
	assert.Equal(t, 2, cfg.Fuzz)
	assert.Equal(t, 1, cfg.Jobs, "unset keys keep their defaults")
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GIT2GANTT_TITLE", "from env")
	t.Setenv("GIT2GANTT_FUZZ", "3")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from env", cfg.Title)
	assert.Equal(t, 3, cfg.Fuzz)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fuzz: -1\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "fuzz must be non-negative")

	require.NoError(t, os.WriteFile(path, []byte("jobs: 0\n"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "jobs must be at least 1")
}
