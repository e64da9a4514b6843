package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the demo's startup configuration. Every field has a default,
// so the settings file is optional and may override only what it names.
type Settings struct {
	Window   WindowSettings  `yaml:"window"`
	TileSize int             `yaml:"tile_size"`
	Tileset  TilesetSettings `yaml:"tileset"`
	Map      MapSettings     `yaml:"map"`
	Camera   CameraSettings  `yaml:"camera"`
	// Watch reloads the map CSV files when they change on disk.
	Watch bool `yaml:"watch"`
}

type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type TilesetSettings struct {
	Path    string `yaml:"path"`
	Columns int    `yaml:"columns"`
}

type MapSettings struct {
	Tiles     string `yaml:"tiles"`
	Collision string `yaml:"collision"`
}

type CameraSettings struct {
	// PanSpeed is world pixels per frame per held axis.
	PanSpeed float64 `yaml:"pan_speed"`
	// ZoomStep is applied once per zoom key press.
	ZoomStep float64 `yaml:"zoom_step"`
	MinZoom  float64 `yaml:"min_zoom"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Window:   WindowSettings{Width: 800, Height: 600, Title: "tilecam"},
		TileSize: 32,
		Tileset:  TilesetSettings{Path: "assets/tileset.png", Columns: 8},
		Map: MapSettings{
			Tiles:     "assets/tilemap.csv",
			Collision: "assets/collisionmap.csv",
		},
		Camera: CameraSettings{PanSpeed: 0.5, ZoomStep: 0.1, MinZoom: 0.1},
	}
}

// LoadSettings reads a YAML settings file over the defaults. A missing file
// is not an error: the defaults stand.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("settings: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("settings: unmarshal %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("settings: %s: %w", path, err)
	}
	return s, nil
}

func (s *Settings) validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive, got %d", s.TileSize)
	}
	if s.Tileset.Columns < 1 {
		return fmt.Errorf("tileset columns must be >= 1, got %d", s.Tileset.Columns)
	}
	if s.Camera.PanSpeed <= 0 || s.Camera.ZoomStep <= 0 || s.Camera.MinZoom <= 0 {
		return errors.New("camera pan_speed, zoom_step and min_zoom must be positive")
	}
	return nil
}
