package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFile), []byte(content), 0644))
	return dir
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Defaults(), *cfg)
	assert.True(t, cfg.Settings.AutoPlay)
	assert.False(t, cfg.Settings.DarkMode)
	assert.False(t, cfg.Settings.RandomOrder)
	assert.Equal(t, 500*time.Millisecond, cfg.AutoAdvanceDelay)
}

func TestLoad_File(t *testing.T) {
	dir := writeSettings(t, `
settings:
  dark_mode: true
  autoplay: false
  font_size: 80
deck: /tmp/words.yaml
auto_advance_delay: 750ms
language: en-GB
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.True(t, cfg.Settings.DarkMode)
	assert.False(t, cfg.Settings.AutoPlay)
	assert.Equal(t, 80, cfg.Settings.FontSize)
	assert.Equal(t, "/tmp/words.yaml", cfg.Deck)
	assert.Equal(t, 750*time.Millisecond, cfg.AutoAdvanceDelay)
	assert.Equal(t, "en-GB", cfg.Language)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := writeSettings(t, "settings:\n  dark_mode: false\n")
	t.Setenv("VOCAB_SETTINGS_DARK_MODE", "true")
	t.Setenv("VOCAB_LANGUAGE", "en-AU")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.True(t, cfg.Settings.DarkMode)
	assert.Equal(t, "en-AU", cfg.Language)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "font size above range", content: "settings:\n  font_size: 101\n"},
		{name: "font size below range", content: "settings:\n  font_size: -1\n"},
		{name: "negative delay", content: "auto_advance_delay: -1s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeSettings(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(writeSettings(t, "settings: [oops"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidSettings)
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "vocab"), dir)
}
