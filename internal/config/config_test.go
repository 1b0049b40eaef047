package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{EnvOutputDir, EnvDefaultFont, EnvWorkers, EnvLogLevel, EnvDPI, EnvSpecDir, EnvMetricsFile} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, -1, cfg.Frame)
}

func TestFromEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that already exist, even empty ones
	for _, k := range []string{EnvWorkers, EnvDefaultFont, EnvDPI} {
		require.NoError(t, os.Unsetenv(k))
	}
	t.Cleanup(func() {
		for _, k := range []string{EnvWorkers, EnvDefaultFont, EnvDPI} {
			os.Unsetenv(k)
		}
	})

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"VIDEOFORGE_WORKERS=3\nVIDEOFORGE_DEFAULT_FONT=\"Noto Sans JP\"\nVIDEOFORGE_DPI=72\n"), 0644))
	t.Setenv(EnvOutputDir, "renders")

	cfg, err := FromEnv(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "Noto Sans JP", cfg.DefaultFont)
	assert.Equal(t, 72, cfg.DPI)
	assert.Equal(t, "renders", cfg.OutputDir)
	assert.Equal(t, DefaultSpecDir, cfg.SpecDir)
}

func TestFromEnvRejectsBadNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvWorkers, "many")
	_, err := FromEnv("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvWorkers)

	t.Setenv(EnvWorkers, "")
	t.Setenv(EnvDPI, "-5")
	_, err = FromEnv("")
	require.Error(t, err)
}
