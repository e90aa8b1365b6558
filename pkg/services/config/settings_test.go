package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/timelog-reporter/pkg/services/aggregate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	cfg, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, aggregate.DefaultDateLayouts, cfg.DateLayouts)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.KeepNotes)
}

func TestLoadSettings_ValidYAML_PopulatesAllFields(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	content := `log_level: debug
output: "/tmp/report.xlsx"
keep_notes: true
date_layouts:
  - "02/01/2006"
server:
  host: "0.0.0.0"
  port: "9090"`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When
	cfg, err := LoadSettings(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/report.xlsx", cfg.Output)
	assert.True(t, cfg.KeepNotes)
	assert.Equal(t, []string{"02/01/2006"}, cfg.DateLayouts)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadSettings_EnvOverride(t *testing.T) {
	t.Setenv("TIMELOG_LOG_LEVEL", "warn")

	cfg, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadSettings_EnvDateLayouts_SplitOnSemicolon(t *testing.T) {
	t.Setenv("TIMELOG_DATE_LAYOUTS", "2006-01-02 15:04:05;02/01/2006")

	cfg, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, []string{"2006-01-02 15:04:05", "02/01/2006"}, cfg.DateLayouts)
}

func TestLoadSettings_InvalidYAML_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: a: b"), 0o644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}
