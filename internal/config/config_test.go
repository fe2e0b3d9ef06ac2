package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"projects_dir": "/data/projects",
		"relevance_threshold": 0.5,
		"port": 9000
	}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/projects", cfg.ProjectsDir)
	assert.Equal(t, 0.5, cfg.RelevanceThreshold)
	assert.Equal(t, 9000, cfg.Port)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())

	cfg.RelevanceThreshold = 1.5
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.Port = 99999
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.MaxPerSection = -1
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{ProjectsDir: "/custom", Port: 9000}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "/custom", merged.ProjectsDir)
	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "exports", merged.ExportsDir)
	assert.Equal(t, 0.3, merged.RelevanceThreshold)
	assert.Equal(t, 3, merged.MaxPerSection)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("PORT", "7777")
	t.Setenv("RESUME_PILOT_THRESHOLD", "0.6")

	cfg := Defaults()
	cfg.ApplyEnv()

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 7777, cfg.Port)
	assert.Equal(t, 0.6, cfg.RelevanceThreshold)
}
