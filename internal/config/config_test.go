package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "auto", cfg.Normalizer.SectionMode)
	assert.Equal(t, int64(26214400), cfg.Normalizer.MaxUploadBytes)
	assert.Equal(t, 4, cfg.Normalizer.Concurrency)
	assert.True(t, cfg.Security.RateLimit.Enabled)
}

func TestLoadFromMissingFileIsNotAnError(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadFromFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
normalizer:
  section_mode: letters
  concurrency: 8
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "letters", cfg.Normalizer.SectionMode)
	assert.Equal(t, 8, cfg.Normalizer.Concurrency)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format, "untouched keys keep their defaults")
}

func TestLoadFromEnvOverridesDefaults(t *testing.T) {
	t.Setenv("ROSTER_NORMALIZER_SECTION_MODE", "numbers")
	t.Setenv("ROSTER_SERVER_PORT", "7070")

	cfg, err := LoadFrom("")
	require.NoError(t, err)
	assert.Equal(t, "numbers", cfg.Normalizer.SectionMode)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadFromEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
normalizer:
  section_mode: letters
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("ROSTER_SERVER_PORT", "7070")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port, "an explicit env var wins over the file")
	assert.Equal(t, "letters", cfg.Normalizer.SectionMode, "file keys without env overrides still apply")
}

func TestLoadFromRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad section mode", "normalizer:\n  section_mode: roman\n"},
		{"bad log level", "logging:\n  level: loud\n"},
		{"bad port", "server:\n  port: 99999\n"},
		{"negative upload limit", "normalizer:\n  max_upload_bytes: -5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadFrom(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadFromRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}
