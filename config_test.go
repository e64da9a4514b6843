package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	cases := []struct {
		name string
		path string
	}{
		{"empty_path", ""},
		{"missing_file", filepath.Join(t.TempDir(), "settings.yaml")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := LoadSettings(c.path)
			require.NoError(t, err)
			assert.Equal(t, DefaultSettings(), s)
		})
	}
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
window:
  width: 1024
  height: 768
  title: demo
tile_size: 16
watch: true
`), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, 1024, s.Window.Width)
	assert.Equal(t, 768, s.Window.Height)
	assert.Equal(t, "demo", s.Window.Title)
	assert.Equal(t, 16, s.TileSize)
	assert.True(t, s.Watch)

	// fields the file does not name keep their defaults
	def := DefaultSettings()
	assert.Equal(t, def.Map, s.Map)
	assert.Equal(t, def.Tileset, s.Tileset)
	assert.Equal(t, def.Camera, s.Camera)
}

func TestLoadSettingsRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not_yaml", "{{{"},
		{"zero_tile_size", "tile_size: 0"},
		{"negative_window", "window: {width: -1, height: 600}"},
		{"zero_columns", "tileset: {columns: 0}"},
		{"zero_zoom_step", "camera: {zoom_step: 0}"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")
			require.NoError(t, os.WriteFile(path, []byte(c.body), 0o644))
			_, err := LoadSettings(path)
			assert.Error(t, err)
		})
	}
}
